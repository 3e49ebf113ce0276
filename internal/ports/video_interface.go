package ports

import (
	"context"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type VideoRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, video *model.Video) (*model.Video, error)
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Video, error)
	ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Video, error)
	IncrementViews(ctx context.Context, exec sqlx.ExtContext, uuid string) error
	AddToWatchHistory(ctx context.Context, exec sqlx.ExtContext, userUUID, videoUUID string) error
	Exists(ctx context.Context, exec sqlx.ExtContext, uuid string) (bool, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type VideoService interface {
	UploadVideo(ctx context.Context, ownerUUID, title, description, videoPath, thumbnailPath string) (*model.Video, error)
	GetVideo(ctx context.Context, videoUUID, viewerUUID string) (*model.Video, error)
	ListUserVideos(ctx context.Context, ownerUUID string) ([]model.Video, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, subscription *model.Subscription) (*model.Subscription, error)
	Exists(ctx context.Context, exec sqlx.ExtContext, subscriberUUID, channelUUID string) (bool, error)
	ListByChannel(ctx context.Context, exec sqlx.ExtContext, channelUUID string) ([]model.Subscription, error)
	ListBySubscriber(ctx context.Context, exec sqlx.ExtContext, subscriberUUID string) ([]model.Subscription, error)
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, subscriberUUID, channelUUID string) (*model.Subscription, error)
	ListSubscribers(ctx context.Context, channelUUID string) ([]model.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberUUID string) ([]model.Subscription, error)
}

type CommentRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, comment *model.Comment) (*model.Comment, error)
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Comment, error)
	ListByVideo(ctx context.Context, exec sqlx.ExtContext, videoUUID string, limit, offset int) ([]model.Comment, error)
	CountByVideo(ctx context.Context, exec sqlx.ExtContext, videoUUID string) (int64, error)
	UpdateContent(ctx context.Context, exec sqlx.ExtContext, uuid, ownerUUID, content string) (*model.Comment, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, uuid, ownerUUID string) (bool, error)
}

type CommentService interface {
	AddComment(ctx context.Context, videoUUID, ownerUUID, content string) (*model.Comment, error)
	ListComments(ctx context.Context, videoUUID string, page, limit int) (*model.CommentPage, error)
	UpdateComment(ctx context.Context, commentUUID, ownerUUID, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentUUID, ownerUUID string) error
}

type LikeRepository interface {
	Find(ctx context.Context, exec sqlx.ExtContext, userUUID string, target model.LikeTarget, targetUUID string) (*model.Like, error)
	Create(ctx context.Context, exec sqlx.ExtContext, like *model.Like) error
	Delete(ctx context.Context, exec sqlx.ExtContext, uuid string) error
	ListByUser(ctx context.Context, exec sqlx.ExtContext, userUUID string, target model.LikeTarget) ([]model.Like, error)
}

type LikeService interface {
	Toggle(ctx context.Context, userUUID string, target model.LikeTarget, targetUUID string) (bool, error)
	ListLiked(ctx context.Context, userUUID string, target model.LikeTarget) ([]model.Like, error)
}
