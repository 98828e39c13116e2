// Package errors provides structured error types for treecanvas.
//
// Every failure the program can report carries a machine-readable [Code] so
// callers can tell recoverable input problems (a malformed line, a tree that
// would leave the canvas) from fatal ones (bad flags, internal invariant
// violations).
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_TOKEN_COUNT, INVALID_FORMAT, INVALID_COORDINATES: bad input
//     lines, reported and skipped
//   - INVALID_GLYPH, INVALID_OUTPUT_FORMAT, INVALID_LIMIT: bad options, fatal
//   - CANVAS_*: Canvas sizing limits
//   - INTERNAL_*: Defects in validation or sizing logic
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTokenCount, "got %d tokens", n)
//	if errors.Is(err, errors.ErrCodeInvalidTokenCount) {
//	    // report and skip the line
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, parseErr, "token %q", tok)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input line errors
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidTokenCount  Code = "INVALID_TOKEN_COUNT"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidCoordinates Code = "INVALID_COORDINATES"

	// Canvas errors
	ErrCodeCanvasTooLarge Code = "CANVAS_TOO_LARGE"

	// Option errors
	ErrCodeInvalidGlyph        Code = "INVALID_GLYPH"
	ErrCodeInvalidOutputFormat Code = "INVALID_OUTPUT_FORMAT"
	ErrCodeInvalidLimit        Code = "INVALID_LIMIT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
