// Package errors provides structured error types for the kata workbench.
//
// Katas fail in exactly two ways: the caller handed them an input of the
// wrong shape, or an input that was empty where at least one element is
// required. The CLI adds a handful of codes for file reading and catalog
// lookups. Every failure aborts the operation; nothing is retried and no
// partial result is returned.
//
// # Error Codes
//
//   - INVALID_ARGUMENT: wrong argument count, out-of-range parameter, bad digit
//   - EMPTY_INPUT: minimum of an empty list, first letter of an empty name
//   - UNRECOGNIZED: a label that does not name any known variant
//   - FILE_NOT_FOUND, READ_FAILED, INVALID_ENCODING: grep file reading
//   - NOT_FOUND: unknown kata name
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "width must be positive, got %d", k)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // Handle usage error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeReadFailed, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input shape errors
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeEmptyInput      Code = "EMPTY_INPUT"
	ErrCodeUnrecognized    Code = "UNRECOGNIZED"

	// File errors
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeReadFailed      Code = "READ_FAILED"
	ErrCodeInvalidEncoding Code = "INVALID_ENCODING"

	// Lookup errors
	ErrCodeNotFound Code = "NOT_FOUND"

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

// Empty reports that what was empty where at least one element is required.
func Empty(what string) *Error {
	return New(ErrCodeEmptyInput, "%s must not be empty", what)
}

// Invalid reports an argument of the wrong shape.
func Invalid(format string, args ...any) *Error {
	return New(ErrCodeInvalidArgument, format, args...)
}

// coded is implemented by error types that carry their code as a method
// rather than a field.
type coded interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a coded error type
// with a matching code.
func Is(err error, code Code) bool {
	if err == nil {
		return false
	}
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coded
	if errors.As(err, &c) {
		return c.Code()
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

// UnrecognizedError is returned by the label parsers when the input does not
// name any known variant. It carries the offending input and the accepted
// values so callers can print a useful message.
type UnrecognizedError struct {
	Kind     string   // What was being parsed, e.g. "platform"
	Input    string   // The rejected input
	Accepted []string // Every value the parser accepts
}

// Error implements the error interface.
func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("unknown %s: %q (valid values: %s)", e.Kind, e.Input, strings.Join(e.Accepted, ", "))
}

// Code returns the error code for this error type.
func (e *UnrecognizedError) Code() Code {
	return ErrCodeUnrecognized
}
