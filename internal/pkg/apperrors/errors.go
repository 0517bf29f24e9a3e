package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrDuplicate is returned when a unique field is already registered
	ErrDuplicate = errors.New("already registered")

	// ErrStorage wraps any failure of a backing store or blob upload.
	// Its text is never sent to clients.
	ErrStorage = errors.New("storage failure")
)

// Admin gate errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Student errors
var (
	ErrStudentNotFound         = errors.New("student not found")
	ErrInterestsAlreadyUpdated = errors.New("this email has already updated interests")
)

// OTP errors
var (
	ErrInvalidOTP = errors.New("invalid or expired OTP")
)

// Notice and question errors
var (
	ErrNoticeNotFound   = errors.New("notice not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// CustomError carries a client-safe message and the offending field
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithField records which input field caused the error
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a field-specific validation error
func NewValidationError(field, message string) error {
	return NewCustomError(ErrValidationFailed, message).WithField(field)
}

// NewDuplicateError creates a field-specific duplicate conflict
func NewDuplicateError(field, message string) error {
	return NewCustomError(ErrDuplicate, message).WithField(field)
}

// NewNotFoundError creates a not found error with a message
func NewNotFoundError(err error, message string) error {
	if err == nil {
		err = ErrResourceNotFound
	}
	return &CustomError{
		Err:     fmt.Errorf("%w: %w", err, ErrResourceNotFound),
		Message: message,
	}
}

// NewStorageError hides cause behind ErrStorage while keeping it reachable
// through errors.Is / errors.As for logging.
func NewStorageError(cause error) error {
	return &CustomError{
		Err:     fmt.Errorf("%w: %w", ErrStorage, cause),
		Message: "internal storage error",
	}
}

// FieldOf returns the offending field name carried by err, if any
func FieldOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}

// MessageOf returns the client-safe message carried by err, or fallback
func MessageOf(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
