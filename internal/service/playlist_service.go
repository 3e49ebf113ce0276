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

type PlaylistService struct {
	db                 sqlx.ExtContext
	playlistRepository ports.PlaylistRepository
}

func NewPlaylistService(db sqlx.ExtContext, playlistRepository ports.PlaylistRepository) *PlaylistService {
	return &PlaylistService{db: db, playlistRepository: playlistRepository}
}

// Create : новый пустой плейлист
func (s *PlaylistService) Create(ctx context.Context, ownerUUID, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("playlist name is required")
	}

	return s.playlistRepository.Create(ctx, s.db, &model.Playlist{
		UUID:        uuid.NewString(),
		OwnerUUID:   ownerUUID,
		Name:        name,
		Description: strings.TrimSpace(description),
	})
}
