package ports

import (
	"context"
	"time"
	"video-hosting-server/internal/model"
)

// ObjectStorage : S3 совместимое хранилище
type ObjectStorage interface {
	GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error)
	DeleteObject(ctx context.Context, key string) error
	PublicURL(key string) string
}

// MediaHost : принимает путь к локальному файлу и возвращает постоянный URL
type MediaHost interface {
	Upload(ctx context.Context, localPath string) (*model.MediaAsset, error)
	UploadMany(ctx context.Context, localPaths ...string) ([]*model.MediaAsset, error)
	Delete(ctx context.Context, key string) error
}

// CacheRepository : Redis слой
type CacheRepository interface {
	SetChannelProfile(ctx context.Context, profile *model.ChannelProfile) error
	GetChannelProfile(ctx context.Context, username string) (*model.ChannelProfile, error)
	DeleteChannelProfile(ctx context.Context, username string) error
}
