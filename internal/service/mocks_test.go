package service_test

import (
	"context"
	"sync"
	"time"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

type MockUserRepository struct {
	mock.Mock
}

func userOrNil(args mock.Arguments) (*model.User, error) {
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	return userOrNil(m.Called(ctx, exec, user))
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	return userOrNil(m.Called(ctx, exec, uuid))
}

func (m *MockUserRepository) FindPublicByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	return userOrNil(m.Called(ctx, exec, uuid))
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error) {
	return userOrNil(m.Called(ctx, exec, username, email))
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error) {
	args := m.Called(ctx, exec, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, exec sqlx.ExtContext, uuid string, refreshToken *string) error {
	return m.Called(ctx, exec, uuid, refreshToken).Error(0)
}

func (m *MockUserRepository) SwapRefreshToken(ctx context.Context, exec sqlx.ExtContext, uuid, presented, replacement string) (bool, error) {
	args := m.Called(ctx, exec, uuid, presented, replacement)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, uuid, newPasswordHash string) error {
	return m.Called(ctx, exec, uuid, newPasswordHash).Error(0)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, exec sqlx.ExtContext, uuid, fullName, email string) (*model.User, error) {
	return userOrNil(m.Called(ctx, exec, uuid, fullName, email))
}

func (m *MockUserRepository) UpdateImage(ctx context.Context, exec sqlx.ExtContext, uuid string, field model.UserImage, url string) (*model.User, error) {
	return userOrNil(m.Called(ctx, exec, uuid, field, url))
}

func (m *MockUserRepository) GetChannelProfile(ctx context.Context, exec sqlx.ExtContext, username string) (*model.ChannelProfile, error) {
	args := m.Called(ctx, exec, username)
	if p, ok := args.Get(0).(*model.ChannelProfile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ListWatchHistory(ctx context.Context, exec sqlx.ExtContext, userUUID string, limit int) ([]model.WatchedVideo, error) {
	args := m.Called(ctx, exec, userUUID, limit)
	history, _ := args.Get(0).([]model.WatchedVideo)
	return history, args.Error(1)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, exec sqlx.ExtContext, video *model.Video) (*model.Video, error) {
	args := m.Called(ctx, exec, video)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Video, error) {
	args := m.Called(ctx, exec, uuid)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Video, error) {
	args := m.Called(ctx, exec, ownerUUID)
	videos, _ := args.Get(0).([]model.Video)
	return videos, args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, exec sqlx.ExtContext, uuid string) error {
	return m.Called(ctx, exec, uuid).Error(0)
}

func (m *MockVideoRepository) AddToWatchHistory(ctx context.Context, exec sqlx.ExtContext, userUUID, videoUUID string) error {
	return m.Called(ctx, exec, userUUID, videoUUID).Error(0)
}

func (m *MockVideoRepository) Exists(ctx context.Context, exec sqlx.ExtContext, uuid string) (bool, error) {
	args := m.Called(ctx, exec, uuid)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	exec, _ := args.Get(0).(sqlx.ExtContext)
	rollback, _ := args.Get(1).(func() error)
	commit, _ := args.Get(2).(func() error)
	return exec, rollback, commit, args.Error(3)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, exec sqlx.ExtContext, subscription *model.Subscription) (*model.Subscription, error) {
	args := m.Called(ctx, exec, subscription)
	if s, ok := args.Get(0).(*model.Subscription); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubscriptionRepository) Exists(ctx context.Context, exec sqlx.ExtContext, subscriberUUID, channelUUID string) (bool, error) {
	args := m.Called(ctx, exec, subscriberUUID, channelUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListByChannel(ctx context.Context, exec sqlx.ExtContext, channelUUID string) ([]model.Subscription, error) {
	args := m.Called(ctx, exec, channelUUID)
	subs, _ := args.Get(0).([]model.Subscription)
	return subs, args.Error(1)
}

func (m *MockSubscriptionRepository) ListBySubscriber(ctx context.Context, exec sqlx.ExtContext, subscriberUUID string) ([]model.Subscription, error) {
	args := m.Called(ctx, exec, subscriberUUID)
	subs, _ := args.Get(0).([]model.Subscription)
	return subs, args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, exec sqlx.ExtContext, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, exec, comment)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Comment, error) {
	args := m.Called(ctx, exec, uuid)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, exec sqlx.ExtContext, videoUUID string, limit, offset int) ([]model.Comment, error) {
	args := m.Called(ctx, exec, videoUUID, limit, offset)
	comments, _ := args.Get(0).([]model.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentRepository) CountByVideo(ctx context.Context, exec sqlx.ExtContext, videoUUID string) (int64, error) {
	args := m.Called(ctx, exec, videoUUID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, exec sqlx.ExtContext, uuid, ownerUUID, content string) (*model.Comment, error) {
	args := m.Called(ctx, exec, uuid, ownerUUID, content)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, uuid, ownerUUID string) (bool, error) {
	args := m.Called(ctx, exec, uuid, ownerUUID)
	return args.Bool(0), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Find(ctx context.Context, exec sqlx.ExtContext, userUUID string, target model.LikeTarget, targetUUID string) (*model.Like, error) {
	args := m.Called(ctx, exec, userUUID, target, targetUUID)
	if l, ok := args.Get(0).(*model.Like); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLikeRepository) Create(ctx context.Context, exec sqlx.ExtContext, like *model.Like) error {
	return m.Called(ctx, exec, like).Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, exec sqlx.ExtContext, uuid string) error {
	return m.Called(ctx, exec, uuid).Error(0)
}

func (m *MockLikeRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userUUID string, target model.LikeTarget) ([]model.Like, error) {
	args := m.Called(ctx, exec, userUUID, target)
	likes, _ := args.Get(0).([]model.Like)
	return likes, args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) SetChannelProfile(ctx context.Context, profile *model.ChannelProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCacheRepository) GetChannelProfile(ctx context.Context, username string) (*model.ChannelProfile, error) {
	args := m.Called(ctx, username)
	if p, ok := args.Get(0).(*model.ChannelProfile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) DeleteChannelProfile(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

type MockMediaHost struct {
	mock.Mock
}

func (m *MockMediaHost) Upload(ctx context.Context, localPath string) (*model.MediaAsset, error) {
	args := m.Called(ctx, localPath)
	if a, ok := args.Get(0).(*model.MediaAsset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMediaHost) UploadMany(ctx context.Context, localPaths ...string) ([]*model.MediaAsset, error) {
	args := m.Called(ctx, localPaths)
	assets, _ := args.Get(0).([]*model.MediaAsset)
	return assets, args.Error(1)
}

func (m *MockMediaHost) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, exec sqlx.ExtContext, playlist *model.Playlist) (*model.Playlist, error) {
	args := m.Called(ctx, exec, playlist)
	p, _ := args.Get(0).(*model.Playlist)
	return p, args.Error(1)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetChannelStats(ctx context.Context, exec sqlx.ExtContext, channelUUID string) (*model.ChannelStats, error) {
	args := m.Called(ctx, exec, channelUUID)
	stats, _ := args.Get(0).(*model.ChannelStats)
	return stats, args.Error(1)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	if fn, ok := args.Get(0).(func(context.Context, string, time.Duration) string); ok {
		return fn(ctx, key, expire), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockObjectStorage) PublicURL(key string) string {
	args := m.Called(key)
	if fn, ok := args.Get(0).(func(string) string); ok {
		return fn(key)
	}
	return args.String(0)
}

// memoryUserStore : хранилище пользователей в памяти для сценариев с настоящими токенами
type memoryUserStore struct {
	MockUserRepository
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemoryUserStore(users ...*model.User) *memoryUserStore {
	store := &memoryUserStore{users: map[string]*model.User{}}
	for _, u := range users {
		clone := *u
		store.users[u.UUID] = &clone
	}
	return store
}

func (s *memoryUserStore) get(uuid string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uuid]
	if !ok {
		return nil, apperror.NotFoundError("user not found")
	}
	clone := *u
	if u.RefreshToken != nil {
		token := *u.RefreshToken
		clone.RefreshToken = &token
	}
	return &clone, nil
}

func (s *memoryUserStore) FindByUUID(_ context.Context, _ sqlx.ExtContext, uuid string) (*model.User, error) {
	return s.get(uuid)
}

func (s *memoryUserStore) FindPublicByUUID(_ context.Context, _ sqlx.ExtContext, uuid string) (*model.User, error) {
	u, err := s.get(uuid)
	if err != nil {
		return nil, err
	}
	return u.Sanitized(), nil
}

func (s *memoryUserStore) FindByUsernameOrEmail(_ context.Context, _ sqlx.ExtContext, username, email string) (*model.User, error) {
	s.mu.Lock()
	var found string
	for id, u := range s.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			found = id
			break
		}
	}
	s.mu.Unlock()
	if found == "" {
		return nil, apperror.NotFoundError("user does not exist")
	}
	return s.get(found)
}

func (s *memoryUserStore) UpdateRefreshToken(_ context.Context, _ sqlx.ExtContext, uuid string, refreshToken *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[uuid]; ok {
		u.RefreshToken = refreshToken
	}
	return nil
}

func (s *memoryUserStore) SwapRefreshToken(_ context.Context, _ sqlx.ExtContext, uuid, presented, replacement string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uuid]
	if !ok || u.RefreshToken == nil || *u.RefreshToken != presented {
		return false, nil
	}
	u.RefreshToken = &replacement
	return true, nil
}

func (s *memoryUserStore) storedRefreshToken(uuid string) *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[uuid].RefreshToken
}
