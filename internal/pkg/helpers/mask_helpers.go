package helpers

import "strings"

// MaskPhone hides all but the last two characters of a phone number.
// Values of two characters or fewer are returned unchanged.
func MaskPhone(phone string) string {
	r := []rune(phone)
	if len(r) <= 2 {
		return phone
	}
	return strings.Repeat("*", len(r)-2) + string(r[len(r)-2:])
}

// LastN returns the last n runes of s after trimming spaces
func LastN(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[len(r)-n:])
}
