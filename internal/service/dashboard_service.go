package service

import (
	"context"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"

	"github.com/jmoiron/sqlx"
)

// DashboardService : панель автора, канал всегда совпадает с вызывающим пользователем
type DashboardService struct {
	db                  sqlx.ExtContext
	dashboardRepository ports.DashboardRepository
	videoRepository     ports.VideoRepository
}

func NewDashboardService(db sqlx.ExtContext, dashboardRepository ports.DashboardRepository, videoRepository ports.VideoRepository) *DashboardService {
	return &DashboardService{
		db:                  db,
		dashboardRepository: dashboardRepository,
		videoRepository:     videoRepository,
	}
}

func (s *DashboardService) GetChannelStats(ctx context.Context, channelUUID string) (*model.ChannelStats, error) {
	if err := requireUUID(channelUUID, "channel id"); err != nil {
		return nil, err
	}
	return s.dashboardRepository.GetChannelStats(ctx, s.db, channelUUID)
}

func (s *DashboardService) GetChannelVideos(ctx context.Context, channelUUID string) ([]model.Video, error) {
	if err := requireUUID(channelUUID, "channel id"); err != nil {
		return nil, err
	}
	return s.videoRepository.ListByOwner(ctx, s.db, channelUUID)
}
