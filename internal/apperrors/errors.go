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

// ErrForbidden indicates that the caller lacks the role required for the action.
var ErrForbidden = errors.New("forbidden")

// ErrDivisionByZero is returned when a conversion is attempted with a non-positive exchange rate.
var ErrDivisionByZero = errors.New("division by zero: exchange rate must be positive")

// ErrEmptyInput is returned when an import document has no non-blank lines.
var ErrEmptyInput = errors.New("El archivo está vacío")

// ErrUnreadableFile is returned when an uploaded import file cannot be read.
var ErrUnreadableFile = errors.New("Error al leer el archivo")

// ErrUnsupportedFileType is returned for uploads that are not CSV documents.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ErrUpstream wraps failures reported by the external REST backend.
var ErrUpstream = errors.New("backend request failed")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
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

// NewAppError builds an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError builds an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError builds an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}
