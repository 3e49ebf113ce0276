package service

import (
	"context"
	"strings"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	defaultCommentsPage  = 1
	defaultCommentsLimit = 10
	maxCommentsLimit     = 100
)

type CommentService struct {
	db                sqlx.ExtContext
	commentRepository ports.CommentRepository
	videoRepository   ports.VideoRepository
}

func NewCommentService(db sqlx.ExtContext, commentRepository ports.CommentRepository, videoRepository ports.VideoRepository) *CommentService {
	return &CommentService{
		db:                db,
		commentRepository: commentRepository,
		videoRepository:   videoRepository,
	}
}

func (s *CommentService) AddComment(ctx context.Context, videoUUID, ownerUUID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.Validation("content is required")
	}
	if err := s.requireVideo(ctx, videoUUID); err != nil {
		return nil, err
	}

	return s.commentRepository.Create(ctx, s.db, &model.Comment{
		UUID:      uuid.NewString(),
		VideoUUID: videoUUID,
		OwnerUUID: ownerUUID,
		Content:   content,
	})
}

// ListComments : page и limit приводятся к допустимым значениям
func (s *CommentService) ListComments(ctx context.Context, videoUUID string, page, limit int) (*model.CommentPage, error) {
	if err := s.requireVideo(ctx, videoUUID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = defaultCommentsPage
	}
	if limit < 1 {
		limit = defaultCommentsLimit
	}
	if limit > maxCommentsLimit {
		limit = maxCommentsLimit
	}

	total, err := s.commentRepository.CountByVideo(ctx, s.db, videoUUID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepository.ListByVideo(ctx, s.db, videoUUID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &model.CommentPage{
		Comments:      comments,
		Page:          page,
		Limit:         limit,
		TotalComments: total,
	}, nil
}

// UpdateComment : чужой комментарий неотличим от несуществующего
func (s *CommentService) UpdateComment(ctx context.Context, commentUUID, ownerUUID, content string) (*model.Comment, error) {
	if err := requireUUID(commentUUID, "comment id"); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.Validation("content is required")
	}
	return s.commentRepository.UpdateContent(ctx, s.db, commentUUID, ownerUUID, content)
}

func (s *CommentService) DeleteComment(ctx context.Context, commentUUID, ownerUUID string) error {
	if err := requireUUID(commentUUID, "comment id"); err != nil {
		return err
	}

	deleted, err := s.commentRepository.Delete(ctx, s.db, commentUUID, ownerUUID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFoundError("comment not found")
	}
	return nil
}

func (s *CommentService) requireVideo(ctx context.Context, videoUUID string) error {
	if err := requireUUID(videoUUID, "video id"); err != nil {
		return err
	}
	exists, err := s.videoRepository.Exists(ctx, s.db, videoUUID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFoundError("video not found")
	}
	return nil
}
