package requestresponse

import "video-hosting-server/internal/apperror"

// ApiResponse : стандартный ответ успешного выполнения операции
type ApiResponse struct {
	StatusCode int         `json:"statusCode" example:"200"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message" example:"Success"`
	Success    bool        `json:"success" example:"true"`
}

func NewApiResponse(statusCode int, data interface{}, message string) ApiResponse {
	return ApiResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Success bool                  `json:"success" example:"false"`
	Message string                `json:"message" example:"unauthorized request"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
}
