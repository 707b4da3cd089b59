package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors: bad metadata, template wiring or config files.
	// Never retryable.
	ErrConfiguration ErrorCode = "CONFIGURATION"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrTemplate      ErrorCode = "TEMPLATE"

	// Data errors: malformed component declarations, identifiers, versions,
	// identity files or images.
	ErrData ErrorCode = "DATA"

	// I/O errors: filesystem and image I/O. Retryable by the caller.
	ErrIO        ErrorCode = "IO"
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// WoahError represents a structured error with code and details
type WoahError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WoahError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WoahError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WoahError) Is(target error) bool {
	var targetErr *WoahError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WoahError with the given code and message
func New(code ErrorCode, message string) *WoahError {
	return &WoahError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WoahError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WoahError {
	return &WoahError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WoahError
func Wrap(err error, code ErrorCode, message string) *WoahError {
	if err == nil {
		return nil
	}
	return &WoahError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WoahError {
	if err == nil {
		return nil
	}
	return &WoahError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WoahError) WithDetail(key string, value interface{}) *WoahError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var woahErr *WoahError
	if errors.As(err, &woahErr) {
		return woahErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WoahError
func GetErrorCode(err error) ErrorCode {
	var woahErr *WoahError
	if errors.As(err, &woahErr) {
		return woahErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WoahError
func GetErrorDetails(err error) map[string]interface{} {
	var woahErr *WoahError
	if errors.As(err, &woahErr) {
		return woahErr.Details
	}
	return nil
}

// Kind is the coarse category a code belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindIO
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindIO:
		return "io"
	case KindData:
		return "data"
	default:
		return "unknown"
	}
}

// KindOf classifies err into one of the build failure categories.
func KindOf(err error) Kind {
	switch GetErrorCode(err) {
	case ErrConfiguration, ErrConfigLoad, ErrTemplate, ErrAlreadyExists:
		return KindConfiguration
	case ErrIO, ErrFileRead, ErrFileWrite, ErrDirCreate:
		return KindIO
	case ErrData, ErrInvalidInput:
		return KindData
	default:
		return KindUnknown
	}
}

// IsRetryable reports whether re-running the failed operation may succeed.
// Only I/O failures qualify.
func IsRetryable(err error) bool {
	return KindOf(err) == KindIO
}
