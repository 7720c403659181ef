package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error. The JSON API surfaces every
// failure as HTTP 200 with success=false, so unlike a status-mapped
// taxonomy the code is only used for classification in logs and tests.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrUnauthorized       = New("UNAUTHORIZED", "Unauthorized")
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", "Invalid credentials. Please try again.")
	ErrDuplicateUsername  = New("DUPLICATE_USERNAME", "Username already exists")
	ErrWrongPassword      = New("WRONG_PASSWORD", "Current password is incorrect")
	ErrPasswordMismatch   = New("PASSWORD_MISMATCH", "New passwords do not match")
	ErrMissingColumn      = New("MISSING_COLUMN", "Missing required column")
	ErrInvalidFileType    = New("INVALID_FILE_TYPE", "Invalid file type")
	ErrNoFileUploaded     = New("NO_FILE_UPLOADED", "No file uploaded")
	ErrNoFaculty          = New("NO_FACULTY", "No faculty found")
	ErrNotFound           = New("NOT_FOUND", "resource not found")
	ErrValidation         = New("VALIDATION_ERROR", "validation failed")
	ErrStore              = New("STORE_ERROR", "store operation failed")
	ErrCacheMiss          = New("CACHE_MISS", "cache miss")
)

// FromError normalises any error into an *Error. Unknown errors become
// store errors whose message echoes the underlying failure back to the
// caller.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrStore.Code, fmt.Sprintf("Error: %v", err))
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
