// Package apperror : типизированные ошибки приложения и их отображение в HTTP статусы
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Internal Kind = iota
	ValidationFailed
	AuthenticationFailed
	NotFound
	Conflict
	UpstreamFailure
)

func (k Kind) String() string {
	switch k {
	case ValidationFailed:
		return "VALIDATION_FAILED"
	case AuthenticationFailed:
		return "AUTHENTICATION_FAILED"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	case UpstreamFailure:
		return "UPSTREAM_FAILURE"
	default:
		return "INTERNAL"
	}
}

// FieldError : ошибка валидации конкретного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is : две ошибки приложения равны, если совпадает вид
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: ValidationFailed, Message: message, Fields: fields}
}

func NotFoundError(message string) *Error {
	return New(NotFound, message)
}

func ConflictError(message string) *Error {
	return New(Conflict, message)
}

func Upstream(message string, err error) *Error {
	return Wrap(UpstreamFailure, message, err)
}

func InternalError(message string, err error) *Error {
	return Wrap(Internal, message, err)
}

// Unauthorized : единая ошибка аутентификации. Причина (просрочен токен, подделан,
// пользователь удалён, неверный пароль) наружу не передаётся
func Unauthorized(cause error) *Error {
	return Wrap(AuthenticationFailed, ErrAuthenticationFailed.Message, cause)
}

// ErrAuthenticationFailed : эталон для errors.Is
var ErrAuthenticationFailed = &Error{Kind: AuthenticationFailed, Message: "unauthorized request"}

// KindOf : вид ошибки; всё, что не является *Error, считается внутренней ошибкой
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case ValidationFailed:
		return http.StatusBadRequest
	case AuthenticationFailed:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case UpstreamFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage : текст для клиента. Для внутренних ошибок детали скрываются
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != Internal {
		return appErr.Message
	}
	return "internal server error"
}

func FieldsOf(err error) []FieldError {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
