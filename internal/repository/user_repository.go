package repository

import (
	"context"
	"time"
	"video-hosting-server/config"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

const userColumns = `uuid, username, email, full_name, avatar, cover_image, password_hash, refresh_token, created_at, updated_at`

// publicUserColumns : без password_hash и refresh_token
const publicUserColumns = `uuid, username, email, full_name, avatar, cover_image, created_at, updated_at`

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, username, email, full_name, avatar, cover_image, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + publicUserColumns

	var created model.User
	err := sqlx.GetContext(ctx, exec, &created, query,
		user.UUID, user.Username, user.Email, user.FullName, user.Avatar, user.CoverImage, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ConflictError("user with email or username already exists")
		}
		return nil, internal("[UserRepo] ошибка вставки данных в БД", err)
	}

	return &created, nil
}

// FindByUUID : полная запись пользователя, включая хэш пароля и refresh токен
func (r *UserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = $1`
	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, uuid); err != nil {
		return nil, mapNotFound(err, "user not found", "[UserRepo] не удалось найти пользователя в БД")
	}
	return &user, nil
}

// FindPublicByUUID : запись пользователя без секретов, для Token Guard
func (r *UserRepository) FindPublicByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	query := `SELECT ` + publicUserColumns + ` FROM users WHERE uuid = $1`
	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, uuid); err != nil {
		return nil, mapNotFound(err, "user not found", "[UserRepo] не удалось найти пользователя в БД")
	}
	return &user, nil
}

// FindByUsernameOrEmail : ищет пользователя по username или email; пустой аргумент не участвует в поиске.
// Если username и email указывают на разных пользователей, побеждает совпадение по username
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error) {
	query := `
	SELECT ` + userColumns + `
	FROM users
	WHERE ($1 <> '' AND username = lower($1)) OR ($2 <> '' AND email = lower($2))
	ORDER BY (username = lower($1)) DESC
	LIMIT 1`

	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, username, email); err != nil {
		return nil, mapNotFound(err, "user does not exist", "[UserRepo] не удалось найти пользователя по username/email")
	}
	return &user, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = lower($1) OR email = lower($2))`
	if err := sqlx.GetContext(ctx, exec, &exists, query, username, email); err != nil {
		return false, internal("[UserRepo] ошибка проверки существования пользователя", err)
	}
	return exists, nil
}

// UpdateRefreshToken : безусловно записывает (или стирает при nil) refresh токен
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, exec sqlx.ExtContext, uuid string, refreshToken *string) error {
	query := `UPDATE users SET refresh_token = $2, updated_at = now() WHERE uuid = $1`
	if _, err := exec.ExecContext(ctx, query, uuid, refreshToken); err != nil {
		return internal("[UserRepo] не удалось сохранить refresh токен", err)
	}
	return nil
}

// SwapRefreshToken : заменяет refresh токен, только если сохранён именно presented.
// false означает, что токен уже сменили или отозвали
func (r *UserRepository) SwapRefreshToken(ctx context.Context, exec sqlx.ExtContext, uuid, presented, replacement string) (bool, error) {
	query := `UPDATE users SET refresh_token = $3, updated_at = now() WHERE uuid = $1 AND refresh_token = $2`
	result, err := exec.ExecContext(ctx, query, uuid, presented, replacement)
	if err != nil {
		return false, internal("[UserRepo] не удалось заменить refresh токен", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, internal("[UserRepo] не удалось получить число изменённых строк", err)
	}
	return affected == 1, nil
}

// UpdatePassword : меняет пароль и заодно отзывает refresh токен
func (r *UserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, uuid, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2, refresh_token = NULL, updated_at = now() WHERE uuid = $1`
	if _, err := exec.ExecContext(ctx, query, uuid, newPasswordHash); err != nil {
		return internal("[UserRepo] не удалось обновить пароль", err)
	}
	return nil
}

func (r *UserRepository) UpdateAccount(ctx context.Context, exec sqlx.ExtContext, uuid, fullName, email string) (*model.User, error) {
	query := `
	UPDATE users SET full_name = $2, email = lower($3), updated_at = now()
	WHERE uuid = $1
	RETURNING ` + publicUserColumns

	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, uuid, fullName, email); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ConflictError("email is already taken")
		}
		return nil, mapNotFound(err, "user not found", "[UserRepo] не удалось обновить пользователя")
	}
	return &user, nil
}

// UpdateImage : обновляет avatar или cover_image
func (r *UserRepository) UpdateImage(ctx context.Context, exec sqlx.ExtContext, uuid string, field model.UserImage, url string) (*model.User, error) {
	var query string
	switch field {
	case model.UserImageAvatar:
		query = `UPDATE users SET avatar = $2, updated_at = now() WHERE uuid = $1 RETURNING ` + publicUserColumns
	case model.UserImageCoverImage:
		query = `UPDATE users SET cover_image = $2, updated_at = now() WHERE uuid = $1 RETURNING ` + publicUserColumns
	default:
		return nil, apperror.Validation("unsupported image field")
	}

	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, uuid, url); err != nil {
		return nil, mapNotFound(err, "user not found", "[UserRepo] не удалось обновить изображение")
	}
	return &user, nil
}

// GetChannelProfile : профиль канала и счётчики подписок одним запросом
func (r *UserRepository) GetChannelProfile(ctx context.Context, exec sqlx.ExtContext, username string) (*model.ChannelProfile, error) {
	query := `
	SELECT u.uuid, u.username, u.email, u.full_name, u.avatar, u.cover_image,
		(SELECT count(*) FROM subscriptions s WHERE s.channel_uuid = u.uuid) AS subscribers_count,
		(SELECT count(*) FROM subscriptions s WHERE s.subscriber_uuid = u.uuid) AS channels_subscribed_to_count
	FROM users u
	WHERE u.username = lower($1)`

	var profile model.ChannelProfile
	if err := sqlx.GetContext(ctx, exec, &profile, query, username); err != nil {
		return nil, mapNotFound(err, "channel does not exist", "[UserRepo] не удалось получить профиль канала")
	}
	return &profile, nil
}

type watchHistoryRow struct {
	UUID          string    `db:"uuid"`
	VideoFile     string    `db:"video_file"`
	Thumbnail     string    `db:"thumbnail"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Duration      float64   `db:"duration"`
	Views         int64     `db:"views"`
	WatchedAt     time.Time `db:"watched_at"`
	OwnerUUID     string    `db:"owner_uuid"`
	OwnerFullName string    `db:"owner_full_name"`
	OwnerUsername string    `db:"owner_username"`
	OwnerAvatar   string    `db:"owner_avatar"`
}

// ListWatchHistory : последние просмотренные видео вместе с владельцами
func (r *UserRepository) ListWatchHistory(ctx context.Context, exec sqlx.ExtContext, userUUID string, limit int) ([]model.WatchedVideo, error) {
	query := `
	SELECT v.uuid, v.video_file, v.thumbnail, v.title, v.description, v.duration, v.views,
		h.watched_at,
		o.uuid AS owner_uuid, o.full_name AS owner_full_name, o.username AS owner_username, o.avatar AS owner_avatar
	FROM watch_history h
	JOIN videos v ON v.uuid = h.video_uuid
	JOIN users o ON o.uuid = v.owner_uuid
	WHERE h.user_uuid = $1
	ORDER BY h.watched_at DESC
	LIMIT $2`

	var rows []watchHistoryRow
	if err := sqlx.SelectContext(ctx, exec, &rows, query, userUUID, limit); err != nil {
		return nil, internal("[UserRepo] не удалось получить историю просмотров", err)
	}

	history := make([]model.WatchedVideo, 0, len(rows))
	for _, row := range rows {
		history = append(history, model.WatchedVideo{
			UUID:        row.UUID,
			VideoFile:   row.VideoFile,
			Thumbnail:   row.Thumbnail,
			Title:       row.Title,
			Description: row.Description,
			Duration:    row.Duration,
			Views:       row.Views,
			WatchedAt:   row.WatchedAt,
			Owner: model.VideoOwner{
				UUID:     row.OwnerUUID,
				FullName: row.OwnerFullName,
				Username: row.OwnerUsername,
				Avatar:   row.OwnerAvatar,
			},
		})
	}
	return history, nil
}
