package model

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT), подписан ключом access
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (JWT), подписан отдельным ключом, хранится в записи пользователя
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refreshToken"`
}

// Session : результат успешного входа или ротации
type Session struct {
	User   *User
	Tokens *TokensPair
}
