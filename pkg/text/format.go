package text

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/kata/pkg/errors"
)

// BoolToString returns "true" or "false".
func BoolToString(b bool) string {
	return strconv.FormatBool(b)
}

// StarJoin picks the lexicographically smallest word and joins its
// characters with "***": ["bitcoin", "take"] gives "b***i***t***c***o***i***n".
func StarJoin(words []string) (string, error) {
	if len(words) == 0 {
		return "", errors.Empty("word list")
	}
	first := slices.Min(words)
	return strings.Join(strings.Split(first, ""), "***"), nil
}

// Square draws an n by n block of '+' characters, one row per line.
func Square(n int) (string, error) {
	if n < 0 {
		return "", errors.Invalid("square size cannot be negative, got %d", n)
	}
	row := strings.Repeat("+", n)
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n"), nil
}

// PhoneNumber formats exactly ten digits as "(123) 456-7890".
func PhoneNumber(digits []int) (string, error) {
	if len(digits) != 10 {
		return "", errors.Invalid("phone number needs 10 digits, got %d", len(digits))
	}
	var b strings.Builder
	for i, d := range digits {
		if d < 0 || d > 9 {
			return "", errors.Invalid("position %d is not a digit: %d", i, d)
		}
		b.WriteByte(byte('0' + d))
	}
	s := b.String()
	return fmt.Sprintf("(%s) %s-%s", s[:3], s[3:6], s[6:]), nil
}

// ValidatePIN reports whether pin is exactly 4 or exactly 6 ASCII digits.
func ValidatePIN(pin string) bool {
	if len(pin) != 4 && len(pin) != 6 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
