package repository

import (
	"context"
	"video-hosting-server/config"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

const videoColumns = `uuid, owner_uuid, video_file, thumbnail, title, description, duration, views, is_published, created_at, updated_at`

type VideoRepository struct {
	*config.Database
}

func NewVideoRepository(database *config.Database) *VideoRepository {
	return &VideoRepository{database}
}

// Create : сохраняет видео после загрузки файлов в хранилище
func (r *VideoRepository) Create(ctx context.Context, exec sqlx.ExtContext, video *model.Video) (*model.Video, error) {
	query := `
	INSERT INTO videos (uuid, owner_uuid, video_file, thumbnail, title, description, duration, is_published)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + videoColumns

	var created model.Video
	err := sqlx.GetContext(ctx, exec, &created, query,
		video.UUID, video.OwnerUUID, video.VideoFile, video.Thumbnail,
		video.Title, video.Description, video.Duration, video.IsPublished)
	if err != nil {
		return nil, internal("[VideoRepo] ошибка вставки видео", err)
	}
	return &created, nil
}

func (r *VideoRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE uuid = $1`
	var video model.Video
	if err := sqlx.GetContext(ctx, exec, &video, query, uuid); err != nil {
		return nil, mapNotFound(err, "video not found", "[VideoRepo] не удалось получить видео")
	}
	return &video, nil
}

// ListByOwner : видео пользователя, новые первыми
func (r *VideoRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE owner_uuid = $1 ORDER BY created_at DESC`
	videos := []model.Video{}
	if err := sqlx.SelectContext(ctx, exec, &videos, query, ownerUUID); err != nil {
		return nil, internal("[VideoRepo] не удалось получить список видео", err)
	}
	return videos, nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, exec sqlx.ExtContext, uuid string) error {
	query := `UPDATE videos SET views = views + 1 WHERE uuid = $1`
	if _, err := exec.ExecContext(ctx, query, uuid); err != nil {
		return internal("[VideoRepo] не удалось увеличить счётчик просмотров", err)
	}
	return nil
}

// AddToWatchHistory : повторный просмотр поднимает видео наверх истории
func (r *VideoRepository) AddToWatchHistory(ctx context.Context, exec sqlx.ExtContext, userUUID, videoUUID string) error {
	query := `
	INSERT INTO watch_history (user_uuid, video_uuid, watched_at)
	VALUES ($1, $2, now())
	ON CONFLICT (user_uuid, video_uuid) DO UPDATE SET watched_at = EXCLUDED.watched_at`
	if _, err := exec.ExecContext(ctx, query, userUUID, videoUUID); err != nil {
		return internal("[VideoRepo] не удалось записать историю просмотров", err)
	}
	return nil
}

func (r *VideoRepository) Exists(ctx context.Context, exec sqlx.ExtContext, uuid string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM videos WHERE uuid = $1)`
	if err := sqlx.GetContext(ctx, exec, &exists, query, uuid); err != nil {
		return false, internal("[VideoRepo] ошибка проверки существования видео", err)
	}
	return exists, nil
}

// BeginTX : открывает транзакцию; rollback после commit безопасен
func (r *VideoRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, internal("[VideoRepo] не удалось начать транзакцию", err)
	}
	return tx, tx.Rollback, tx.Commit, nil
}
