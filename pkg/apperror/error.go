package apperror

import (
	"errors"
	"net/http"
)

// Kind is a stable, machine-readable error classification returned to clients
// alongside the HTTP status.
type Kind string

const (
	KindValidation           Kind = "VALIDATION_ERROR"
	KindUnauthenticated      Kind = "UNAUTHENTICATED"
	KindInvalidToken         Kind = "INVALID_TOKEN"
	KindInvalidCredentials   Kind = "INVALID_CREDENTIALS"
	KindForbidden            Kind = "FORBIDDEN"
	KindNotFound             Kind = "NOT_FOUND"
	KindConflict             Kind = "CONFLICT"
	KindAlreadyApplied       Kind = "ALREADY_APPLIED"
	KindDeadlinePassed       Kind = "DEADLINE_PASSED"
	KindUnsupportedMediaType Kind = "UNSUPPORTED_MEDIA_TYPE"
	KindPayloadTooLarge      Kind = "PAYLOAD_TOO_LARGE"
	KindRateLimited          Kind = "RATE_LIMITED"
	KindInternal             Kind = "INTERNAL"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf reports the Kind of err, or KindInternal when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthenticated, message, nil)
}

func InvalidToken(message string, err error) *AppError {
	return New(http.StatusUnauthorized, KindInvalidToken, message, err)
}

func InvalidCredentials(message string) *AppError {
	return New(http.StatusUnauthorized, KindInvalidCredentials, message, nil)
}

// AccountNotFound is the role-scoped login miss. It keeps the NOT_FOUND kind
// but answers 401 like every other login failure.
func AccountNotFound(message string) *AppError {
	return New(http.StatusUnauthorized, KindNotFound, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, KindConflict, message, nil)
}

func AlreadyApplied(message string) *AppError {
	return New(http.StatusBadRequest, KindAlreadyApplied, message, nil)
}

func DeadlinePassed(message string) *AppError {
	return New(http.StatusBadRequest, KindDeadlinePassed, message, nil)
}

func UnsupportedMediaType(message string) *AppError {
	return New(http.StatusUnsupportedMediaType, KindUnsupportedMediaType, message, nil)
}

func PayloadTooLarge(message string) *AppError {
	return New(http.StatusRequestEntityTooLarge, KindPayloadTooLarge, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, KindRateLimited, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}
