package chromemarks

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EFILEREAD  = "file_read"
	EMALFORMED = "malformed"
	EINVALID   = "invalid"
	EINTERNAL  = "internal"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Underlying cause, if any.
	err error
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("chromemarks error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause so errors.Is and errors.As can see
// through application errors.
func (e *Error) Unwrap() error {
	return e.err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message. A %w verb in format is honored: the wrapped error
// becomes the cause returned by Unwrap.
func Errorf(code string, format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{
		Code:    code,
		Message: err.Error(),
		err:     errors.Unwrap(err),
	}
}
