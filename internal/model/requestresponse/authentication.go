package requestresponse

import "video-hosting-server/internal/model"

// LoginRequest : тело запроса на аутентификацию. Достаточно username или email
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"P@ssw0rd123"`
}

// LoginData : пользователь и выданная пара токенов
type LoginData struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string      `json:"refreshToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// RefreshTokenRequest : запрос на обновление пары токенов, если refresh токена нет в cookie
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokensData : новая пара токенов после ротации
type TokensData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
