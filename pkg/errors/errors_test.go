package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "test message: %s", "value")

	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidArgument)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_ARGUMENT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeReadFailed, cause, "read poem.txt")

	if err.Code != ErrCodeReadFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeReadFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "READ_FAILED: read poem.txt: permission denied"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestEmpty(t *testing.T) {
	err := Empty("name")
	if err.Code != ErrCodeEmptyInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEmptyInput)
	}
	if err.Message != "name must not be empty" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeEmptyInput, "test"),
			code:     ErrCodeEmptyInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeEmptyInput, "test"),
			code:     ErrCodeInvalidArgument,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeReadFailed, New(ErrCodeInvalidEncoding, "inner"), "outer"),
			code:     ErrCodeReadFailed,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("run: %w", Invalid("bad")),
			code:     ErrCodeInvalidArgument,
			expected: true,
		},
		{
			name:     "unrecognized error",
			err:      &UnrecognizedError{Kind: "platform", Input: "beos"},
			code:     ErrCodeUnrecognized,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidArgument,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidArgument,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeNotFound, "test"), ErrCodeNotFound},
		{"unrecognized", fmt.Errorf("parse: %w", &UnrecognizedError{}), ErrCodeUnrecognized},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", Invalid("not enough arguments"), "not enough arguments"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUnrecognizedError(t *testing.T) {
	err := &UnrecognizedError{
		Kind:     "platform",
		Input:    "beos",
		Accepted: []string{"windows", "linux", "macos"},
	}

	msg := err.Error()
	for _, want := range []string{"platform", `"beos"`, "windows, linux, macos"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}

	if err.Code() != ErrCodeUnrecognized {
		t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeUnrecognized)
	}

	var target *UnrecognizedError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &target) || target.Input != "beos" {
		t.Error("errors.As should recover the offending input")
	}
}
