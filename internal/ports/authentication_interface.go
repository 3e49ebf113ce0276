package ports

import (
	"context"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/security"
)

// TokenCodec : подпись и проверка токенов одного вида (access или refresh)
type TokenCodec interface {
	Issue(claims security.Claims) (string, error)
	Verify(token string) (*security.Claims, error)
}

type AuthenticationService interface {
	Login(ctx context.Context, username, email, password string) (*model.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.Session, error)
	Logout(ctx context.Context, userUUID string) error
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}
