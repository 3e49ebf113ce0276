package service_test

import (
	"context"
	"errors"
	"testing"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/security"
	srv "video-hosting-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	users         *MockUserRepository
	subscriptions *MockSubscriptionRepository
	cache         *MockCacheRepository
	media         *MockMediaHost
}

func newUserService() (*srv.UserService, *userServiceMocks) {
	m := &userServiceMocks{
		users:         &MockUserRepository{},
		subscriptions: &MockSubscriptionRepository{},
		cache:         &MockCacheRepository{},
		media:         &MockMediaHost{},
	}
	return srv.NewUserService(testDB, m.users, m.subscriptions, m.cache, m.media), m
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		user        model.User
		password    string
		avatar      string
		cover       string
		setupMocks  func(m *userServiceMocks)
		expectKind  apperror.Kind
		expectError bool
		storeCalled bool
		check       func(t *testing.T, created *model.User)
	}{
		{
			name:        "empty fields",
			user:        model.User{FullName: " ", Username: "alice", Email: "a@x.io"},
			password:    "P@ssw0rd123",
			avatar:      "/tmp/a.png",
			expectError: true,
			expectKind:  apperror.ValidationFailed,
		},
		{
			name:     "duplicate user",
			user:     model.User{FullName: "Alice", Username: "Alice", Email: "A@X.io"},
			password: "P@ssw0rd123",
			avatar:   "/tmp/a.png",
			setupMocks: func(m *userServiceMocks) {
				m.users.On("ExistsByUsernameOrEmail", ctx, testDB, "alice", "a@x.io").Return(true, nil)
			},
			expectError: true,
			expectKind:  apperror.Conflict,
		},
		{
			name:     "avatar missing",
			user:     model.User{FullName: "Alice", Username: "alice", Email: "a@x.io"},
			password: "P@ssw0rd123",
			setupMocks: func(m *userServiceMocks) {
				m.users.On("ExistsByUsernameOrEmail", ctx, testDB, "alice", "a@x.io").Return(false, nil)
			},
			expectError: true,
			expectKind:  apperror.ValidationFailed,
		},
		{
			name:     "media host down",
			user:     model.User{FullName: "Alice", Username: "alice", Email: "a@x.io"},
			password: "P@ssw0rd123",
			avatar:   "/tmp/a.png",
			setupMocks: func(m *userServiceMocks) {
				m.users.On("ExistsByUsernameOrEmail", ctx, testDB, "alice", "a@x.io").Return(false, nil)
				m.media.On("Upload", ctx, "/tmp/a.png").Return(nil, apperror.Upstream("failed to upload file to media host", errors.New("503")))
			},
			expectError: true,
			expectKind:  apperror.UpstreamFailure,
		},
		{
			name:     "insert fails after upload",
			user:     model.User{FullName: "Alice", Username: "alice", Email: "alice@example.com"},
			password: "P@ssw0rd123",
			avatar:   "/tmp/a.png",
			cover:    "/tmp/c.jpg",
			setupMocks: func(m *userServiceMocks) {
				m.users.On("ExistsByUsernameOrEmail", ctx, testDB, "alice", "alice@example.com").Return(false, nil)
				m.media.On("UploadMany", ctx, []string{"/tmp/a.png", "/tmp/c.jpg"}).Return([]*model.MediaAsset{
					{Key: "media/a.png", URL: "http://cdn/media/a.png"},
					{Key: "media/c.jpg", URL: "http://cdn/media/c.jpg"},
				}, nil)
				m.users.On("CreateUser", ctx, testDB, mock.Anything).
					Return(nil, apperror.ConflictError("user with email or username already exists"))
				m.media.On("Delete", mock.Anything, "media/a.png").Return(nil).Once()
				m.media.On("Delete", mock.Anything, "media/c.jpg").Return(nil).Once()
			},
			expectError: true,
			expectKind:  apperror.Conflict,
			storeCalled: true,
		},
		{
			name:     "success with cover image",
			user:     model.User{FullName: "Alice", Username: "Alice", Email: "alice@example.com"},
			password: "P@ssw0rd123",
			avatar:   "/tmp/a.png",
			cover:    "/tmp/c.jpg",
			setupMocks: func(m *userServiceMocks) {
				m.users.On("ExistsByUsernameOrEmail", ctx, testDB, "alice", "alice@example.com").Return(false, nil)
				m.media.On("UploadMany", ctx, []string{"/tmp/a.png", "/tmp/c.jpg"}).Return([]*model.MediaAsset{
					{Key: "media/a.png", URL: "http://cdn/media/a.png"},
					{Key: "media/c.jpg", URL: "http://cdn/media/c.jpg"},
				}, nil)
				m.users.On("CreateUser", ctx, testDB, mock.MatchedBy(func(u *model.User) bool {
					return u.UUID != "" && u.Username == "alice" &&
						u.Avatar == "http://cdn/media/a.png" && u.CoverImage == "http://cdn/media/c.jpg" &&
						security.CheckPassword("P@ssw0rd123", u.PasswordHash)
				})).Return(&model.User{UUID: "u-1", Username: "alice", Avatar: "http://cdn/media/a.png"}, nil)
			},
			check: func(t *testing.T, created *model.User) {
				assert.Equal(t, "u-1", created.UUID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService()
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			user := tt.user
			created, err := svc.Register(ctx, &user, tt.password, tt.avatar, tt.cover)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, apperror.IsKind(err, tt.expectKind), "got %v", err)
				if !tt.storeCalled {
					m.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
				}
			} else {
				require.NoError(t, err)
				tt.check(t, created)
			}
			m.users.AssertExpectations(t)
			m.media.AssertExpectations(t)
			if !tt.storeCalled {
				m.media.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	hash, err := security.HashPassword("old-password")
	require.NoError(t, err)
	stored := &model.User{UUID: "u-1", PasswordHash: hash}

	t.Run("wrong old password", func(t *testing.T) {
		svc, m := newUserService()
		m.users.On("FindByUUID", ctx, testDB, "u-1").Return(stored, nil)

		err := svc.ChangePassword(ctx, "u-1", "guess", "new-password")
		assert.True(t, apperror.IsKind(err, apperror.ValidationFailed))
		assert.Equal(t, "invalid old password", apperror.PublicMessage(err))
		m.users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		svc, m := newUserService()
		m.users.On("FindByUUID", ctx, testDB, "u-1").Return(stored, nil)
		m.users.On("UpdatePassword", ctx, testDB, "u-1", mock.MatchedBy(func(h string) bool {
			return security.CheckPassword("new-password", h)
		})).Return(nil)

		require.NoError(t, svc.ChangePassword(ctx, "u-1", "old-password", "new-password"))
		m.users.AssertExpectations(t)
	})
}

func TestUserService_GetChannelProfile(t *testing.T) {
	ctx := context.Background()
	profile := &model.ChannelProfile{UUID: "u-2", Username: "bob", SubscribersCount: 3}

	t.Run("cache miss fills cache", func(t *testing.T) {
		svc, m := newUserService()
		m.cache.On("GetChannelProfile", ctx, "bob").Return(nil, nil)
		m.users.On("GetChannelProfile", ctx, testDB, "bob").Return(profile, nil)
		m.cache.On("SetChannelProfile", ctx, profile).Return(nil)
		m.subscriptions.On("Exists", ctx, testDB, "u-1", "u-2").Return(true, nil)

		got, err := svc.GetChannelProfile(ctx, "Bob", "u-1")
		require.NoError(t, err)
		assert.True(t, got.IsSubscribed)
		assert.Equal(t, int64(3), got.SubscribersCount)
		assert.False(t, profile.IsSubscribed, "признак подписки не попадает в кэшируемый объект")
		m.cache.AssertExpectations(t)
	})

	t.Run("cache hit skips database", func(t *testing.T) {
		svc, m := newUserService()
		m.cache.On("GetChannelProfile", ctx, "bob").Return(profile, nil)
		m.subscriptions.On("Exists", ctx, testDB, "u-1", "u-2").Return(false, nil)

		got, err := svc.GetChannelProfile(ctx, "bob", "u-1")
		require.NoError(t, err)
		assert.False(t, got.IsSubscribed)
		m.users.AssertNotCalled(t, "GetChannelProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		svc, m := newUserService()
		m.cache.On("GetChannelProfile", ctx, "bob").Return(nil, errors.New("redis: connection refused"))
		m.users.On("GetChannelProfile", ctx, testDB, "bob").Return(profile, nil)
		m.cache.On("SetChannelProfile", ctx, profile).Return(errors.New("redis: connection refused"))

		got, err := svc.GetChannelProfile(ctx, "bob", "u-2")
		require.NoError(t, err)
		assert.False(t, got.IsSubscribed, "владелец канала не подписан сам на себя")
		m.subscriptions.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown channel", func(t *testing.T) {
		svc, m := newUserService()
		m.cache.On("GetChannelProfile", ctx, "ghost").Return(nil, nil)
		m.users.On("GetChannelProfile", ctx, testDB, "ghost").Return(nil, apperror.NotFoundError("channel does not exist"))

		_, err := svc.GetChannelProfile(ctx, "ghost", "u-1")
		assert.True(t, apperror.IsKind(err, apperror.NotFound))
	})

	t.Run("empty username", func(t *testing.T) {
		svc, _ := newUserService()
		_, err := svc.GetChannelProfile(ctx, "  ", "u-1")
		assert.True(t, apperror.IsKind(err, apperror.ValidationFailed))
	})
}

func TestUserService_UpdateImage(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService()

	m.media.On("Upload", ctx, "/tmp/new.png").Return(&model.MediaAsset{URL: "http://cdn/media/new.png"}, nil)
	m.users.On("UpdateImage", ctx, testDB, "u-1", model.UserImageAvatar, "http://cdn/media/new.png").
		Return(&model.User{UUID: "u-1", Username: "alice", Avatar: "http://cdn/media/new.png"}, nil)
	m.cache.On("DeleteChannelProfile", ctx, "alice").Return(nil)

	user, err := svc.UpdateImage(ctx, "u-1", model.UserImageAvatar, "/tmp/new.png")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/media/new.png", user.Avatar)
	m.cache.AssertExpectations(t)

	_, err = svc.UpdateImage(ctx, "u-1", model.UserImageCoverImage, "")
	assert.True(t, apperror.IsKind(err, apperror.ValidationFailed))
}

func TestUserService_UpdateImage_DiscardsUploadOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService()

	m.media.On("Upload", ctx, "/tmp/cover.jpg").Return(&model.MediaAsset{Key: "media/cover.jpg", URL: "http://cdn/media/cover.jpg"}, nil)
	m.users.On("UpdateImage", ctx, testDB, "u-1", model.UserImageCoverImage, "http://cdn/media/cover.jpg").
		Return(nil, apperror.NotFoundError("user not found"))
	m.media.On("Delete", mock.Anything, "media/cover.jpg").Return(errors.New("s3 unavailable"))

	_, err := svc.UpdateImage(ctx, "u-1", model.UserImageCoverImage, "/tmp/cover.jpg")
	assert.True(t, apperror.IsKind(err, apperror.NotFound), "ошибка удаления не должна подменять исходную")
	m.media.AssertExpectations(t)
	m.cache.AssertNotCalled(t, "DeleteChannelProfile", mock.Anything, mock.Anything)
}

func TestUserService_UpdateAccount(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService()

	m.users.On("UpdateAccount", ctx, testDB, "u-1", "Alice L.", "alice@new.io").
		Return(&model.User{UUID: "u-1", Username: "alice", Email: "alice@new.io"}, nil)
	m.cache.On("DeleteChannelProfile", ctx, "alice").Return(nil)

	user, err := svc.UpdateAccount(ctx, "u-1", " Alice L. ", "Alice@New.io")
	require.NoError(t, err)
	assert.Equal(t, "alice@new.io", user.Email)

	_, err = svc.UpdateAccount(ctx, "u-1", "", "alice@new.io")
	assert.True(t, apperror.IsKind(err, apperror.ValidationFailed))
}
