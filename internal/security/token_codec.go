package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid : подпись не сошлась, токен повреждён или подписан другим алгоритмом
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenExpired : подпись верна, но срок действия истёк. Только такой токен имеет смысл обновлять
	ErrTokenExpired = errors.New("token expired")
)

const issuer = "video-hosting-server"

// Claims : утверждения токена. Access токен несёт все поля, refresh токен только UserUUID
type Claims struct {
	UserUUID string `json:"_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec : подписывает и проверяет токены одного вида.
// Для access и refresh токенов создаются два независимых экземпляра со своими ключами
type TokenCodec struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, expiry time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// NewTokenCodecFromTTL : то же, что NewTokenCodec, но время жизни задаётся строкой из конфига ("15m", "240h")
func NewTokenCodecFromTTL(secret, ttl string) (*TokenCodec, error) {
	expiry, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга времени жизни токена: %w", err)
	}
	if secret == "" {
		return nil, errors.New("ключ подписи токена не задан")
	}
	return NewTokenCodec(secret, expiry), nil
}

// WithClock : подменяет источник времени, используется в тестах
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	clone := *c
	clone.now = now
	return &clone
}

func (c *TokenCodec) Expiry() time.Duration {
	return c.expiry
}

// Issue : подписывает утверждения, добавляя iat, exp и уникальный jti.
// jti нужен, чтобы два токена, выпущенные в одну секунду, не совпали побайтно
func (c *TokenCodec) Issue(claims Claims) (string, error) {
	now := c.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   claims.UserUUID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return token, nil
}

// Verify : проверяет подпись и срок действия.
// Возвращает ErrTokenExpired для просроченного, но корректно подписанного токена,
// ErrTokenInvalid во всех остальных случаях
func (c *TokenCodec) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if !token.Valid || claims.UserUUID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
