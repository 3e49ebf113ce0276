package requestresponse

// RegisterRequest : текстовые поля multipart формы регистрации
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required" example:"Alice Liddell"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Username string `json:"username" validate:"required,alphanum" example:"alice"`
	Password string `json:"password" validate:"required,min=8" example:"P@ssw0rd123"`
}

// ChangePasswordRequest : тело запроса смены пароля
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required" example:"P@ssw0rd123"`
	NewPassword string `json:"newPassword" validate:"required,min=8" example:"N3wP@ssw0rd"`
}

// UpdateAccountRequest : тело запроса на обновление данных аккаунта
type UpdateAccountRequest struct {
	FullName string `json:"fullName" validate:"required" example:"Alice Liddell"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
}
