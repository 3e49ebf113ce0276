package security

import (
	"context"
	"net/http"
	"strings"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Authenticator : проверяет access токен и возвращает пользователя без пароля и refresh токена
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}

// JWTMiddleware : пропускает запрос дальше только с действующим access токеном.
// Токен берётся из cookie accessToken или из заголовка Authorization: Bearer
func JWTMiddleware(authenticator Authenticator) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := ExtractAccessToken(request)
			if token == "" {
				util.HandleError(writer, apperror.Unauthorized(nil))
				return
			}

			user, err := authenticator.Authenticate(request.Context(), token)
			if err != nil {
				util.HandleError(writer, err)
				return
			}

			next.ServeHTTP(writer, request.WithContext(WithUser(request.Context(), user)))
		})
	}
}

func ExtractAccessToken(request *http.Request) string {
	if cookie, err := request.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authorizationHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authorizationHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer "))
	}

	return ""
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// GetUserFromContext : пользователь, которого положил JWTMiddleware
func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, apperror.Unauthorized(nil)
	}
	return user, nil
}
