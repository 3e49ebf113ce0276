package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model/requestresponse"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError : переводит ошибку приложения в HTTP статус и пишет {success:false, message, errors?}.
// Внутренние ошибки логируются, клиенту уходит обезличенное сообщение
func HandleError(w http.ResponseWriter, err error) {
	kind := apperror.KindOf(err)
	statusCode := apperror.HTTPStatus(kind)

	if kind == apperror.Internal || kind == apperror.UpstreamFailure {
		log.Printf("[HTTP] %d: %v", statusCode, err)
	}

	WriteJSON(w, statusCode, requestresponse.ErrorResponse{
		Success: false,
		Message: apperror.PublicMessage(err),
		Errors:  apperror.FieldsOf(err),
	})
}

func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("ошибка кодирования ответа:", err)
	}
}

// WriteResponse : оборачивает данные в стандартный конверт ApiResponse
func WriteResponse(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	WriteJSON(w, statusCode, requestresponse.NewApiResponse(statusCode, data, message))
}
