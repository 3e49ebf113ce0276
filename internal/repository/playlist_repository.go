package repository

import (
	"context"
	"video-hosting-server/config"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type PlaylistRepository struct {
	*config.Database
}

func NewPlaylistRepository(database *config.Database) *PlaylistRepository {
	return &PlaylistRepository{database}
}

// Create : повтор имени у того же владельца упирается в уникальный индекс (owner_uuid, name)
func (r *PlaylistRepository) Create(ctx context.Context, exec sqlx.ExtContext, playlist *model.Playlist) (*model.Playlist, error) {
	query := `
	INSERT INTO playlists (uuid, owner_uuid, name, description)
	VALUES ($1, $2, $3, $4)
	RETURNING uuid, owner_uuid, name, description, created_at, updated_at`

	var created model.Playlist
	err := sqlx.GetContext(ctx, exec, &created, query,
		playlist.UUID, playlist.OwnerUUID, playlist.Name, playlist.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ConflictError("a playlist with the same name already exists")
		}
		return nil, internal("[PlaylistRepo] ошибка вставки плейлиста", err)
	}
	created.Videos = []string{}
	return &created, nil
}
