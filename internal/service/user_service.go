package service

import (
	"context"
	"log"
	"strings"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const watchHistoryLimit = 100

type UserService struct {
	db                     sqlx.ExtContext
	userRepository         ports.UserRepository
	subscriptionRepository ports.SubscriptionRepository
	cache                  ports.CacheRepository
	media                  ports.MediaHost
}

func NewUserService(
	db sqlx.ExtContext,
	userRepository ports.UserRepository,
	subscriptionRepository ports.SubscriptionRepository,
	cache ports.CacheRepository,
	media ports.MediaHost,
) *UserService {
	return &UserService{
		db:                     db,
		userRepository:         userRepository,
		subscriptionRepository: subscriptionRepository,
		cache:                  cache,
		media:                  media,
	}
}

// Register : создаёт пользователя. Аватар обязателен, обложка нет.
// Временные файлы удаляются при любом исходе, загруженные объекты удаляются, если запись не создана
func (s *UserService) Register(ctx context.Context, user *model.User, password, avatarPath, coverImagePath string) (*model.User, error) {
	user.FullName = strings.TrimSpace(user.FullName)
	user.Username = strings.ToLower(strings.TrimSpace(user.Username))
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if user.FullName == "" || user.Username == "" || user.Email == "" || password == "" {
		util.RemoveFiles(avatarPath, coverImagePath)
		return nil, apperror.Validation("all fields are required")
	}

	exists, err := s.userRepository.ExistsByUsernameOrEmail(ctx, s.db, user.Username, user.Email)
	if err != nil {
		util.RemoveFiles(avatarPath, coverImagePath)
		return nil, err
	}
	if exists {
		util.RemoveFiles(avatarPath, coverImagePath)
		return nil, apperror.ConflictError("user with email or username already exists")
	}

	if avatarPath == "" {
		util.RemoveFiles(coverImagePath)
		return nil, apperror.Validation("avatar file is required")
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		util.RemoveFiles(avatarPath, coverImagePath)
		return nil, apperror.InternalError("failed to hash password", util.LogError("[UserService] не удалось создать хэш пароля", err))
	}

	paths := []string{avatarPath}
	if coverImagePath != "" {
		paths = append(paths, coverImagePath)
	}
	assets, err := uploadAssets(ctx, s.media, paths...)
	if err != nil {
		return nil, err
	}
	user.Avatar = assets[0].URL
	if len(assets) > 1 {
		user.CoverImage = assets[1].URL
	}

	user.UUID = uuid.NewString()
	user.PasswordHash = hash

	created, err := s.userRepository.CreateUser(ctx, s.db, user)
	if err != nil {
		discardAssets(ctx, s.media, assets)
		return nil, err
	}
	return created, nil
}

// ChangePassword : после смены пароля действующая сессия отзывается
func (s *UserService) ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error {
	user, err := s.userRepository.FindByUUID(ctx, s.db, userUUID)
	if err != nil {
		return err
	}

	if !security.CheckPassword(oldPassword, user.PasswordHash) {
		return apperror.Validation("invalid old password")
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return apperror.InternalError("failed to hash password", util.LogError("[UserService] не удалось создать хэш пароля", err))
	}

	return s.userRepository.UpdatePassword(ctx, s.db, userUUID, hash)
}

func (s *UserService) UpdateAccount(ctx context.Context, userUUID, fullName, email string) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" {
		return nil, apperror.Validation("all fields are required")
	}

	user, err := s.userRepository.UpdateAccount(ctx, s.db, userUUID, fullName, email)
	if err != nil {
		return nil, err
	}
	s.invalidateChannel(ctx, user.Username)
	return user, nil
}

// UpdateImage : заменяет аватар или обложку
func (s *UserService) UpdateImage(ctx context.Context, userUUID string, field model.UserImage, localPath string) (*model.User, error) {
	if localPath == "" {
		return nil, apperror.Validation(string(field) + " file is missing")
	}

	asset, err := s.media.Upload(ctx, localPath)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.UpdateImage(ctx, s.db, userUUID, field, asset.URL)
	if err != nil {
		discardAssets(ctx, s.media, []*model.MediaAsset{asset})
		return nil, err
	}
	s.invalidateChannel(ctx, user.Username)
	return user, nil
}

// GetChannelProfile : счётчики берутся из кэша, признак подписки зрителя всегда считается заново
func (s *UserService) GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperror.Validation("username is missing")
	}

	profile, err := s.cache.GetChannelProfile(ctx, username)
	if err != nil {
		log.Printf("[UserService] кэш недоступен, читаем из БД: %v", err)
		profile = nil
	}

	if profile == nil {
		profile, err = s.userRepository.GetChannelProfile(ctx, s.db, username)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetChannelProfile(ctx, profile); err != nil {
			log.Printf("[UserService] не удалось закэшировать профиль %s: %v", username, err)
		}
	}

	result := *profile
	result.IsSubscribed = false
	if viewerUUID != "" && viewerUUID != profile.UUID {
		result.IsSubscribed, err = s.subscriptionRepository.Exists(ctx, s.db, viewerUUID, profile.UUID)
		if err != nil {
			return nil, err
		}
	}

	return &result, nil
}

func (s *UserService) GetWatchHistory(ctx context.Context, userUUID string) ([]model.WatchedVideo, error) {
	return s.userRepository.ListWatchHistory(ctx, s.db, userUUID, watchHistoryLimit)
}

func (s *UserService) invalidateChannel(ctx context.Context, username string) {
	if err := s.cache.DeleteChannelProfile(ctx, username); err != nil {
		log.Printf("[UserService] не удалось сбросить кэш канала %s: %v", username, err)
	}
}
