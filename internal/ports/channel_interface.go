package ports

import (
	"context"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type PlaylistRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, playlist *model.Playlist) (*model.Playlist, error)
}

type PlaylistService interface {
	Create(ctx context.Context, ownerUUID, name, description string) (*model.Playlist, error)
}

type DashboardRepository interface {
	GetChannelStats(ctx context.Context, exec sqlx.ExtContext, channelUUID string) (*model.ChannelStats, error)
}

type DashboardService interface {
	GetChannelStats(ctx context.Context, channelUUID string) (*model.ChannelStats, error)
	GetChannelVideos(ctx context.Context, channelUUID string) ([]model.Video, error)
}
