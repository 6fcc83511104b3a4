package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// InputNotFound indicates the structure file does not exist
	InputNotFound ErrorCode = "INPUT_NOT_FOUND"
	// MalformedStructure indicates the structure file could not be parsed
	MalformedStructure ErrorCode = "MALFORMED_STRUCTURE"
	// OriginNotFound indicates the origin block type is absent from a region
	OriginNotFound ErrorCode = "ORIGIN_NOT_FOUND"
	// OutOfBounds indicates a position outside the padded bounding box.
	// This is a bounds-computation bug, not a recoverable condition.
	OutOfBounds ErrorCode = "OUT_OF_BOUNDS"
	// IOError indicates the output structure could not be written
	IOError ErrorCode = "IO_ERROR"
)

// Error represents a lito error with a stable code and optional hint
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"`
	cause   error     // Underlying error (not exported to JSON)
}

// New creates a new coded error
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithHint attaches a user-facing suggestion to the error
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// As is a re-export of the standard library errors.As, so callers do
// not need a second import
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Is is a re-export of the standard library errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// CodeOf extracts the error code from err, or empty if err is not a
// coded error
func CodeOf(err error) ErrorCode {
	var le *Error
	if As(err, &le) {
		return le.Code
	}
	return ""
}
