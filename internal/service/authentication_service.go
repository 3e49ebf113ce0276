package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"strings"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"

	"github.com/jmoiron/sqlx"
)

var (
	errInvalidPassword        = errors.New("неверный пароль")
	errRefreshTokenMismatch   = errors.New("refresh токен не совпадает с сохранённым")
	errRefreshTokenSuperseded = errors.New("refresh токен сменился во время ротации")
)

// AuthenticationService : выдаёт, проверяет, ротирует и отзывает пару access/refresh токенов.
// У пользователя ровно один действующий refresh токен, он хранится в записи пользователя
type AuthenticationService struct {
	db             sqlx.ExtContext
	userRepository ports.UserRepository
	accessCodec    ports.TokenCodec
	refreshCodec   ports.TokenCodec
}

func NewAuthenticationService(
	db sqlx.ExtContext,
	userRepository ports.UserRepository,
	accessCodec ports.TokenCodec,
	refreshCodec ports.TokenCodec,
) *AuthenticationService {
	return &AuthenticationService{
		db:             db,
		userRepository: userRepository,
		accessCodec:    accessCodec,
		refreshCodec:   refreshCodec,
	}
}

// Login : вход по username или email. Отсутствующий пользователь и неверный пароль
// дают одну и ту же ошибку
func (s *AuthenticationService) Login(ctx context.Context, username, email, password string) (*model.Session, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" && email == "" {
		return nil, apperror.Validation("username or email is required")
	}
	if password == "" {
		return nil, apperror.Validation("password is required")
	}

	user, err := s.userRepository.FindByUsernameOrEmail(ctx, s.db, username, email)
	if err != nil {
		if apperror.IsKind(err, apperror.NotFound) {
			return nil, apperror.Unauthorized(err)
		}
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperror.Unauthorized(errInvalidPassword)
	}

	return s.Issue(ctx, user)
}

// Issue : выпускает новую пару и безусловно сохраняет refresh токен, вытесняя прежний
func (s *AuthenticationService) Issue(ctx context.Context, user *model.User) (*model.Session, error) {
	tokens, err := s.mint(user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepository.UpdateRefreshToken(ctx, s.db, user.UUID, &tokens.RefreshToken); err != nil {
		return nil, err
	}

	return &model.Session{User: user.Sanitized(), Tokens: tokens}, nil
}

// RefreshToken : ротация. Принимается только тот refresh токен, который сейчас сохранён у пользователя;
// замена выполняется условным UPDATE, поэтому из двух параллельных ротаций одним токеном проходит одна
func (s *AuthenticationService) RefreshToken(ctx context.Context, refreshToken string) (*model.Session, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized(nil)
	}

	claims, err := s.refreshCodec.Verify(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized(err)
	}

	user, err := s.userRepository.FindByUUID(ctx, s.db, claims.UserUUID)
	if err != nil {
		if apperror.IsKind(err, apperror.NotFound) {
			return nil, apperror.Unauthorized(err)
		}
		return nil, err
	}

	if !user.HasActiveSession() || subtle.ConstantTimeCompare([]byte(*user.RefreshToken), []byte(refreshToken)) != 1 {
		log.Printf("[AuthService] отклонён устаревший refresh токен пользователя %s", user.UUID)
		return nil, apperror.Unauthorized(errRefreshTokenMismatch)
	}

	tokens, err := s.mint(user)
	if err != nil {
		return nil, err
	}

	swapped, err := s.userRepository.SwapRefreshToken(ctx, s.db, user.UUID, refreshToken, tokens.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !swapped {
		log.Printf("[AuthService] параллельная ротация refresh токена пользователя %s", user.UUID)
		return nil, apperror.Unauthorized(errRefreshTokenSuperseded)
	}

	return &model.Session{User: user.Sanitized(), Tokens: tokens}, nil
}

// Logout : стирает refresh токен. Повторный вызов ничего не меняет
func (s *AuthenticationService) Logout(ctx context.Context, userUUID string) error {
	return s.userRepository.UpdateRefreshToken(ctx, s.db, userUUID, nil)
}

// Authenticate : проверка access токена для JWTMiddleware
func (s *AuthenticationService) Authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := s.accessCodec.Verify(accessToken)
	if err != nil {
		return nil, apperror.Unauthorized(err)
	}

	user, err := s.userRepository.FindPublicByUUID(ctx, s.db, claims.UserUUID)
	if err != nil {
		if apperror.IsKind(err, apperror.NotFound) {
			return nil, apperror.Unauthorized(err)
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthenticationService) mint(user *model.User) (*model.TokensPair, error) {
	accessToken, err := s.accessCodec.Issue(security.Claims{
		UserUUID: user.UUID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	})
	if err != nil {
		return nil, apperror.InternalError("failed to sign access token", util.LogError("[AuthService] ошибка генерации access токена", err))
	}

	refreshToken, err := s.refreshCodec.Issue(security.Claims{UserUUID: user.UUID})
	if err != nil {
		return nil, apperror.InternalError("failed to sign refresh token", util.LogError("[AuthService] ошибка генерации refresh токена", err))
	}

	return &model.TokensPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
