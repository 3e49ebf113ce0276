package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/security"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator : в ошибках поля называются так же, как в JSON
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON : разбирает тело запроса и проверяет validate теги
func decodeJSON(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.Validation("request body is required")
		}
		return apperror.Validation("invalid request body")
	}
	return validateStruct(target)
}

func validateStruct(target interface{}) error {
	err := validate.Struct(target)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.Validation("invalid request")
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, apperror.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return apperror.Validation("validation failed", fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "alphanum":
		return "must contain only letters and digits"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	default:
		return "is invalid"
	}
}

// parseMultipart : формы с файлами сохраняются во временный каталог, пока их не заберёт медиахранилище
func parseMultipart(r *http.Request, maxMemory int64) error {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return apperror.Validation("invalid multipart form")
	}
	return nil
}

func currentUser(r *http.Request) (*model.User, error) {
	return security.GetUserFromContext(r.Context())
}

// CookieSettings : параметры cookie с токенами
type CookieSettings struct {
	Secure     bool
	Domain     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c CookieSettings) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(maxAge.Seconds()),
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	return cookie
}

func (c CookieSettings) setTokens(w http.ResponseWriter, tokens *model.TokensPair) {
	http.SetCookie(w, c.cookie(security.AccessTokenCookie, tokens.AccessToken, c.AccessTTL))
	http.SetCookie(w, c.cookie(security.RefreshTokenCookie, tokens.RefreshToken, c.RefreshTTL))
}

func (c CookieSettings) clearTokens(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie(security.AccessTokenCookie, "", 0))
	http.SetCookie(w, c.cookie(security.RefreshTokenCookie, "", 0))
}
