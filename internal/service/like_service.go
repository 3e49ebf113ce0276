package service

import (
	"context"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LikeService struct {
	db                sqlx.ExtContext
	likeRepository    ports.LikeRepository
	videoRepository   ports.VideoRepository
	commentRepository ports.CommentRepository
}

func NewLikeService(
	db sqlx.ExtContext,
	likeRepository ports.LikeRepository,
	videoRepository ports.VideoRepository,
	commentRepository ports.CommentRepository,
) *LikeService {
	return &LikeService{
		db:                db,
		likeRepository:    likeRepository,
		videoRepository:   videoRepository,
		commentRepository: commentRepository,
	}
}

// Toggle : ставит лайк, если его не было, иначе снимает. Возвращает новое состояние
func (s *LikeService) Toggle(ctx context.Context, userUUID string, target model.LikeTarget, targetUUID string) (bool, error) {
	if err := s.requireTarget(ctx, target, targetUUID); err != nil {
		return false, err
	}

	existing, err := s.likeRepository.Find(ctx, s.db, userUUID, target, targetUUID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.likeRepository.Delete(ctx, s.db, existing.UUID); err != nil {
			return false, err
		}
		return false, nil
	}

	like := &model.Like{UUID: uuid.NewString(), LikedBy: userUUID}
	if target == model.LikeTargetVideo {
		like.VideoUUID = &targetUUID
	} else {
		like.CommentUUID = &targetUUID
	}

	if err := s.likeRepository.Create(ctx, s.db, like); err != nil {
		return false, err
	}
	return true, nil
}

func (s *LikeService) ListLiked(ctx context.Context, userUUID string, target model.LikeTarget) ([]model.Like, error) {
	return s.likeRepository.ListByUser(ctx, s.db, userUUID, target)
}

func (s *LikeService) requireTarget(ctx context.Context, target model.LikeTarget, targetUUID string) error {
	switch target {
	case model.LikeTargetVideo:
		if err := requireUUID(targetUUID, "video id"); err != nil {
			return err
		}
		exists, err := s.videoRepository.Exists(ctx, s.db, targetUUID)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.NotFoundError("video not found")
		}
		return nil
	case model.LikeTargetComment:
		if err := requireUUID(targetUUID, "comment id"); err != nil {
			return err
		}
		_, err := s.commentRepository.GetByUUID(ctx, s.db, targetUUID)
		return err
	default:
		return apperror.Validation("unsupported like target")
	}
}
