// Package errors provides structured error types for pumlrender.
//
// Every failure the tool can report carries a machine-readable Code so the
// pipeline can decide whether it aborts the run or is recovered locally:
//   - CONFIGURATION_ERROR, RENDERER_UNAVAILABLE, NO_THEMES_FOUND: fatal
//   - EMPTY_EXAMPLE_SET, RENDER_FAILURE: recovered per theme or per render
//   - INVALID_*: flag validation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeRendererUnavailable, "PlantUML not found")
//	if errors.Is(err, errors.ErrCodeRendererUnavailable) {
//	    // ...
//	}
//
//	err := errors.Wrap(errors.ErrCodeRenderFailure, origErr, "error running %s", cmd)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Fatal setup errors
	ErrCodeConfiguration       Code = "CONFIGURATION_ERROR"
	ErrCodeRendererUnavailable Code = "RENDERER_UNAVAILABLE"
	ErrCodeNoThemesFound       Code = "NO_THEMES_FOUND"

	// Recovered errors
	ErrCodeEmptyExampleSet Code = "EMPTY_EXAMPLE_SET"
	ErrCodeRenderFailure   Code = "RENDER_FAILURE"

	// Input validation errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
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

// IsFatal reports whether err aborts a whole run rather than a single
// theme or render.
func IsFatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeConfiguration, ErrCodeRendererUnavailable, ErrCodeNoThemesFound:
		return true
	}
	return false
}
