package service

import (
	"context"
	"strings"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type VideoService struct {
	db              sqlx.ExtContext
	videoRepository ports.VideoRepository
	media           ports.MediaHost
}

func NewVideoService(db sqlx.ExtContext, videoRepository ports.VideoRepository, media ports.MediaHost) *VideoService {
	return &VideoService{
		db:              db,
		videoRepository: videoRepository,
		media:           media,
	}
}

// UploadVideo : загружает видео и обложку в медиахранилище и сохраняет запись
func (s *VideoService) UploadVideo(ctx context.Context, ownerUUID, title, description, videoPath, thumbnailPath string) (*model.Video, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		util.RemoveFiles(videoPath, thumbnailPath)
		return nil, apperror.Validation("title and description are required")
	}
	if videoPath == "" {
		util.RemoveFiles(thumbnailPath)
		return nil, apperror.Validation("video file is required")
	}

	video := &model.Video{
		UUID:        uuid.NewString(),
		OwnerUUID:   ownerUUID,
		Title:       title,
		Description: description,
		IsPublished: true,
	}

	paths := []string{videoPath}
	if thumbnailPath != "" {
		paths = append(paths, thumbnailPath)
	}
	assets, err := uploadAssets(ctx, s.media, paths...)
	if err != nil {
		return nil, err
	}
	video.VideoFile = assets[0].URL
	if len(assets) > 1 {
		video.Thumbnail = assets[1].URL
	}

	created, err := s.videoRepository.Create(ctx, s.db, video)
	if err != nil {
		discardAssets(ctx, s.media, assets)
		return nil, err
	}
	return created, nil
}

// GetVideo : просмотр видео. Счётчик просмотров и история зрителя обновляются в одной транзакции
func (s *VideoService) GetVideo(ctx context.Context, videoUUID, viewerUUID string) (*model.Video, error) {
	if err := requireUUID(videoUUID, "video id"); err != nil {
		return nil, err
	}

	exec, rollback, commit, err := s.videoRepository.BeginTX(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback()

	video, err := s.videoRepository.GetByUUID(ctx, exec, videoUUID)
	if err != nil {
		return nil, err
	}

	if err := s.videoRepository.IncrementViews(ctx, exec, videoUUID); err != nil {
		return nil, err
	}
	if viewerUUID != "" {
		if err := s.videoRepository.AddToWatchHistory(ctx, exec, viewerUUID, videoUUID); err != nil {
			return nil, err
		}
	}

	if err := commit(); err != nil {
		return nil, apperror.InternalError("failed to commit transaction", util.LogError("[VideoService] не удалось закоммитить транзакцию", err))
	}

	video.Views++
	return video, nil
}

func (s *VideoService) ListUserVideos(ctx context.Context, ownerUUID string) ([]model.Video, error) {
	if err := requireUUID(ownerUUID, "user id"); err != nil {
		return nil, err
	}
	return s.videoRepository.ListByOwner(ctx, s.db, ownerUUID)
}
