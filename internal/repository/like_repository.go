package repository

import (
	"context"
	"video-hosting-server/config"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

const likeColumns = `uuid, liked_by, video_uuid, comment_uuid, created_at`

type LikeRepository struct {
	*config.Database
}

func NewLikeRepository(database *config.Database) *LikeRepository {
	return &LikeRepository{database}
}

func targetColumn(target model.LikeTarget) (string, error) {
	switch target {
	case model.LikeTargetVideo:
		return "video_uuid", nil
	case model.LikeTargetComment:
		return "comment_uuid", nil
	}
	return "", apperror.Validation("unsupported like target")
}

// Find : лайк пользователя на видео или комментарий; nil, если его нет
func (r *LikeRepository) Find(ctx context.Context, exec sqlx.ExtContext, userUUID string, target model.LikeTarget, targetUUID string) (*model.Like, error) {
	column, err := targetColumn(target)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + likeColumns + ` FROM likes WHERE liked_by = $1 AND ` + column + ` = $2`
	likes := []model.Like{}
	if err := sqlx.SelectContext(ctx, exec, &likes, query, userUUID, targetUUID); err != nil {
		return nil, internal("[LikeRepo] не удалось найти лайк", err)
	}
	if len(likes) == 0 {
		return nil, nil
	}
	return &likes[0], nil
}

func (r *LikeRepository) Create(ctx context.Context, exec sqlx.ExtContext, like *model.Like) error {
	query := `INSERT INTO likes (uuid, liked_by, video_uuid, comment_uuid) VALUES ($1, $2, $3, $4)`
	if _, err := exec.ExecContext(ctx, query, like.UUID, like.LikedBy, like.VideoUUID, like.CommentUUID); err != nil {
		if isUniqueViolation(err) {
			return apperror.ConflictError("already liked")
		}
		return internal("[LikeRepo] ошибка вставки лайка", err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, exec sqlx.ExtContext, uuid string) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM likes WHERE uuid = $1`, uuid); err != nil {
		return internal("[LikeRepo] не удалось удалить лайк", err)
	}
	return nil
}

// ListByUser : все лайки пользователя заданного вида
func (r *LikeRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userUUID string, target model.LikeTarget) ([]model.Like, error) {
	column, err := targetColumn(target)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + likeColumns + ` FROM likes WHERE liked_by = $1 AND ` + column + ` IS NOT NULL ORDER BY created_at DESC`
	likes := []model.Like{}
	if err := sqlx.SelectContext(ctx, exec, &likes, query, userUUID); err != nil {
		return nil, internal("[LikeRepo] не удалось получить лайки", err)
	}
	return likes, nil
}
