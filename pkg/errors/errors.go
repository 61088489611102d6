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

	// Version errors
	ErrInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrCopyFailed   ErrorCode = "COPY_FAILED"
	ErrDeleteFailed ErrorCode = "DELETE_FAILED"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Network errors
	ErrDownloadFailed ErrorCode = "DOWNLOAD_FAILED"
)

// Detail keys shared by the packages that attach details to errors
const (
	DetailPath   = "path"
	DetailPhase  = "phase"
	DetailPreset = "preset"
)

// KeeperError represents a structured error with code and details
type KeeperError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *KeeperError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *KeeperError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *KeeperError) Is(target error) bool {
	var targetErr *KeeperError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Path returns the filesystem path attached to the error, if any
func (e *KeeperError) Path() string {
	if p, ok := e.Details[DetailPath].(string); ok {
		return p
	}
	return ""
}

// New creates a new KeeperError with the given code and message
func New(code ErrorCode, message string) *KeeperError {
	return &KeeperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new KeeperError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *KeeperError {
	return &KeeperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a KeeperError
func Wrap(err error, code ErrorCode, message string) *KeeperError {
	if err == nil {
		return nil
	}
	return &KeeperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *KeeperError {
	if err == nil {
		return nil
	}
	return &KeeperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// CopyFailed reports a failed copy of a single path
func CopyFailed(err error, path string) *KeeperError {
	if err == nil {
		return Newf(ErrCopyFailed, "failed to copy %s", path).WithDetail(DetailPath, path)
	}
	return Wrapf(err, ErrCopyFailed, "failed to copy %s", path).WithDetail(DetailPath, path)
}

// DeleteFailed reports a failed removal of a single path
func DeleteFailed(err error, path string) *KeeperError {
	if err == nil {
		return Newf(ErrDeleteFailed, "failed to delete %s", path).WithDetail(DetailPath, path)
	}
	return Wrapf(err, ErrDeleteFailed, "failed to delete %s", path).WithDetail(DetailPath, path)
}

// WithDetail adds a detail to the error
func (e *KeeperError) WithDetail(key string, value interface{}) *KeeperError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *KeeperError) WithDetails(details map[string]interface{}) *KeeperError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var keeperErr *KeeperError
	if errors.As(err, &keeperErr) {
		return keeperErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a KeeperError
func GetErrorCode(err error) ErrorCode {
	var keeperErr *KeeperError
	if errors.As(err, &keeperErr) {
		return keeperErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a KeeperError
func GetErrorDetails(err error) map[string]interface{} {
	var keeperErr *KeeperError
	if errors.As(err, &keeperErr) {
		return keeperErr.Details
	}
	return nil
}

// GetErrorPath returns the path detail of an error, or "" when there is none
func GetErrorPath(err error) string {
	var keeperErr *KeeperError
	if errors.As(err, &keeperErr) {
		return keeperErr.Path()
	}
	return ""
}
