package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrExtract       = errors.New("text extraction failed")
	ErrCompletion    = errors.New("completion request failed")
	ErrCopy          = errors.New("file copy failed")
	ErrManifest      = errors.New("manifest write failed")
	ErrLedger        = errors.New("ledger error")
)

// NewAppError builds an AppError
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapError prefixes err with message, keeping it matchable with errors.Is.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf tags err with a sentinel so callers can classify it with errors.Is
// against both the sentinel and the underlying cause.
func Wrapf(sentinel, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", sentinel, fmt.Sprintf(format, args...), err)
}
