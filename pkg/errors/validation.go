package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateWidth checks a fixed-width grouping size.
func ValidateWidth(k int) error {
	if k < 1 {
		return Invalid("group width must be at least 1, got %d", k)
	}
	return nil
}

// ValidateCap checks an occurrence cap for the bounded filter.
// Zero is allowed and drops everything.
func ValidateCap(n int) error {
	if n < 0 {
		return Invalid("occurrence cap cannot be negative, got %d", n)
	}
	return nil
}

// ValidatePad checks that a padding string is exactly one printable rune.
func ValidatePad(pad string) error {
	if utf8.RuneCountInString(pad) != 1 {
		return Invalid("pad must be a single character, got %q", pad)
	}
	r, _ := utf8.DecodeRuneInString(pad)
	if r == utf8.RuneError || unicode.IsControl(r) {
		return Invalid("pad must be a printable character, got %q", pad)
	}
	return nil
}

// ValidateFilename validates a path handed to the grep command.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - No null bytes
func ValidateFilename(path string) error {
	if strings.TrimSpace(path) == "" {
		return Invalid("filename cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return Invalid("filename contains a null byte")
	}
	return nil
}
