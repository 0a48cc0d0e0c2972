package domain

import (
	"unicode"
	"unicode/utf8"
)

// FirstLetterUppercase reports whether s is empty or starts with a character
// that is equal to its own uppercase form. Digits and punctuation therefore pass.
func FirstLetterUppercase(s string) bool {
	if s == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r == unicode.ToUpper(r)
}
