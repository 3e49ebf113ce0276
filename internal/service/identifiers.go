package service

import (
	"video-hosting-server/internal/apperror"

	"github.com/google/uuid"
)

// requireUUID : идентификаторы из URL должны быть корректными UUID
func requireUUID(id, name string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.Validation("invalid " + name)
	}
	return nil
}
