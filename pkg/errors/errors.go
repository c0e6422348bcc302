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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Document errors. These abort a run.
	ErrDiscovery     ErrorCode = "DISCOVERY"
	ErrDocumentRead  ErrorCode = "DOCUMENT_READ"
	ErrDocumentParse ErrorCode = "DOCUMENT_PARSE"

	// Entry errors. These only skip the entry.
	ErrPathExpand ErrorCode = "PATH_EXPAND"
)

// DotauditError represents a structured error with code and details
type DotauditError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotauditError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotauditError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotauditError) Is(target error) bool {
	var targetErr *DotauditError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotauditError with the given code and message
func New(code ErrorCode, message string) *DotauditError {
	return &DotauditError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotauditError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotauditError {
	return &DotauditError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotauditError
func Wrap(err error, code ErrorCode, message string) *DotauditError {
	if err == nil {
		return nil
	}
	return &DotauditError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotauditError {
	if err == nil {
		return nil
	}
	return &DotauditError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotauditError) WithDetail(key string, value interface{}) *DotauditError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var auditErr *DotauditError
	if errors.As(err, &auditErr) {
		return auditErr.Code == code
	}
	var coded interface{ ErrorCode() ErrorCode }
	if errors.As(err, &coded) {
		return coded.ErrorCode() == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it carries none
func GetErrorCode(err error) ErrorCode {
	var auditErr *DotauditError
	if errors.As(err, &auditErr) {
		return auditErr.Code
	}
	var coded interface{ ErrorCode() ErrorCode }
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotauditError
func GetErrorDetails(err error) map[string]interface{} {
	var auditErr *DotauditError
	if errors.As(err, &auditErr) {
		return auditErr.Details
	}
	return nil
}
