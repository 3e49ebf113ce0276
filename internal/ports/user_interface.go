package ports

import (
	"context"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error)
	FindPublicByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error)
	UpdateRefreshToken(ctx context.Context, exec sqlx.ExtContext, uuid string, refreshToken *string) error
	SwapRefreshToken(ctx context.Context, exec sqlx.ExtContext, uuid, presented, replacement string) (bool, error)
	UpdatePassword(ctx context.Context, exec sqlx.ExtContext, uuid, newPasswordHash string) error
	UpdateAccount(ctx context.Context, exec sqlx.ExtContext, uuid, fullName, email string) (*model.User, error)
	UpdateImage(ctx context.Context, exec sqlx.ExtContext, uuid string, field model.UserImage, url string) (*model.User, error)
	GetChannelProfile(ctx context.Context, exec sqlx.ExtContext, username string) (*model.ChannelProfile, error)
	ListWatchHistory(ctx context.Context, exec sqlx.ExtContext, userUUID string, limit int) ([]model.WatchedVideo, error)
}

type UserService interface {
	Register(ctx context.Context, user *model.User, password, avatarPath, coverImagePath string) (*model.User, error)
	ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error
	UpdateAccount(ctx context.Context, userUUID, fullName, email string) (*model.User, error)
	UpdateImage(ctx context.Context, userUUID string, field model.UserImage, localPath string) (*model.User, error)
	GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userUUID string) ([]model.WatchedVideo, error)
}
