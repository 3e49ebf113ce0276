package repository

import (
	"context"
	"video-hosting-server/config"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type DashboardRepository struct {
	*config.Database
}

func NewDashboardRepository(database *config.Database) *DashboardRepository {
	return &DashboardRepository{database}
}

// GetChannelStats : все счётчики одним запросом. У канала без видео просмотры и лайки равны нулю
func (r *DashboardRepository) GetChannelStats(ctx context.Context, exec sqlx.ExtContext, channelUUID string) (*model.ChannelStats, error) {
	query := `
	SELECT
		(SELECT count(*) FROM videos WHERE owner_uuid = $1) AS total_videos,
		(SELECT COALESCE(SUM(views), 0)::bigint FROM videos WHERE owner_uuid = $1) AS total_video_views,
		(SELECT count(*) FROM subscriptions WHERE channel_uuid = $1) AS total_subscribers,
		(SELECT count(*) FROM likes l JOIN videos v ON v.uuid = l.video_uuid WHERE v.owner_uuid = $1) AS total_likes`

	var stats model.ChannelStats
	if err := sqlx.GetContext(ctx, exec, &stats, query, channelUUID); err != nil {
		return nil, internal("[DashboardRepo] не удалось посчитать статистику канала", err)
	}
	return &stats, nil
}
