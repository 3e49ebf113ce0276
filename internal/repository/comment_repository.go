package repository

import (
	"context"
	"video-hosting-server/config"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

const commentColumns = `uuid, video_uuid, owner_uuid, content, created_at, updated_at`

type CommentRepository struct {
	*config.Database
}

func NewCommentRepository(database *config.Database) *CommentRepository {
	return &CommentRepository{database}
}

func (r *CommentRepository) Create(ctx context.Context, exec sqlx.ExtContext, comment *model.Comment) (*model.Comment, error) {
	query := `
	INSERT INTO comments (uuid, video_uuid, owner_uuid, content)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + commentColumns

	var created model.Comment
	err := sqlx.GetContext(ctx, exec, &created, query, comment.UUID, comment.VideoUUID, comment.OwnerUUID, comment.Content)
	if err != nil {
		return nil, internal("[CommentRepo] ошибка вставки комментария", err)
	}
	return &created, nil
}

func (r *CommentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE uuid = $1`
	var comment model.Comment
	if err := sqlx.GetContext(ctx, exec, &comment, query, uuid); err != nil {
		return nil, mapNotFound(err, "comment not found", "[CommentRepo] не удалось получить комментарий")
	}
	return &comment, nil
}

// ListByVideo : страница комментариев, новые первыми
func (r *CommentRepository) ListByVideo(ctx context.Context, exec sqlx.ExtContext, videoUUID string, limit, offset int) ([]model.Comment, error) {
	query := `
	SELECT ` + commentColumns + `
	FROM comments
	WHERE video_uuid = $1
	ORDER BY created_at DESC, uuid
	LIMIT $2 OFFSET $3`

	comments := []model.Comment{}
	if err := sqlx.SelectContext(ctx, exec, &comments, query, videoUUID, limit, offset); err != nil {
		return nil, internal("[CommentRepo] не удалось получить комментарии", err)
	}
	return comments, nil
}

func (r *CommentRepository) CountByVideo(ctx context.Context, exec sqlx.ExtContext, videoUUID string) (int64, error) {
	var total int64
	query := `SELECT count(*) FROM comments WHERE video_uuid = $1`
	if err := sqlx.GetContext(ctx, exec, &total, query, videoUUID); err != nil {
		return 0, internal("[CommentRepo] не удалось посчитать комментарии", err)
	}
	return total, nil
}

// UpdateContent : меняет текст только у комментария владельца; чужой комментарий выглядит как отсутствующий
func (r *CommentRepository) UpdateContent(ctx context.Context, exec sqlx.ExtContext, uuid, ownerUUID, content string) (*model.Comment, error) {
	query := `
	UPDATE comments SET content = $3, updated_at = now()
	WHERE uuid = $1 AND owner_uuid = $2
	RETURNING ` + commentColumns

	var comment model.Comment
	if err := sqlx.GetContext(ctx, exec, &comment, query, uuid, ownerUUID, content); err != nil {
		return nil, mapNotFound(err, "comment not found", "[CommentRepo] не удалось обновить комментарий")
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, uuid, ownerUUID string) (bool, error) {
	query := `DELETE FROM comments WHERE uuid = $1 AND owner_uuid = $2`
	result, err := exec.ExecContext(ctx, query, uuid, ownerUUID)
	if err != nil {
		return false, internal("[CommentRepo] не удалось удалить комментарий", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, internal("[CommentRepo] не удалось получить число удалённых строк", err)
	}
	return affected > 0, nil
}
