package repository

import (
	"database/sql"
	"errors"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/util"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// isUniqueViolation : нарушено ограничение уникальности в Postgres
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// mapNotFound : sql.ErrNoRows превращается в NotFound с понятным клиенту сообщением,
// остальные ошибки логируются как внутренние
func mapNotFound(err error, notFoundMessage, logMessage string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFoundError(notFoundMessage)
	}
	return apperror.InternalError(logMessage, util.LogError(logMessage, err))
}

func internal(logMessage string, err error) error {
	return apperror.InternalError(logMessage, util.LogError(logMessage, err))
}
