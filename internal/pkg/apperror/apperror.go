package apperror

import (
	"os"
	"strings"
)

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInternalError = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithDetails returns a copy carrying extra context, typically a
// field -> message map from form validation.
func (e *AppError) WithDetails(details any) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		HTTPStatus: e.HTTPStatus,
		Details:    details,
	}
}

var exposeInternal bool

// Init reads APP_ENV; outside production the HTTP mapper passes raw
// internal error text through as details.
func Init() {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	exposeInternal = env != "production"
}
