package text

import "strings"

const vowels = "aeiouAEIOU"

// Disemvowel removes every vowel (upper or lower case) from s.
func Disemvowel(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(vowels, r) {
			return -1
		}
		return r
	}, s)
}

// RemoveSpaces drops every ASCII space from s. Other whitespace is kept.
func RemoveSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
