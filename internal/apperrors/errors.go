package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Price fetching failures. These are the only errors a caller of the fetch
// operation ever sees; each maps to a user-facing message.
var (
	ErrInvalidURL    = errors.New("invalid URL format")
	ErrNetwork       = errors.New("could not reach the page")
	ErrEmptyBody     = errors.New("no content received from URL")
	ErrPriceNotFound = errors.New("no price found on the page")
)

// ErrRemoteUnavailable is produced by the rate service client. It never leaves
// the rate resolver, which degrades to the next fallback tier instead.
var ErrRemoteUnavailable = errors.New("remote rate service unavailable")

// ErrMalformedConfiguration marks persisted settings that cannot be
// interpreted, e.g. a custom rate table that is not valid JSON.
var ErrMalformedConfiguration = errors.New("malformed configuration")

// AppError carries an HTTP status alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// UserMessage renders a fetch failure the way the admin screen shows it.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidURL):
		return "Invalid URL format"
	case errors.Is(err, ErrEmptyBody):
		return "No content received from URL"
	case errors.Is(err, ErrPriceNotFound):
		return "No price found on the page"
	case errors.Is(err, ErrNetwork):
		return "Could not fetch the page"
	default:
		return "Failed to fetch price"
	}
}
