package helpers

import "strings"

// NullIfEmpty returns nil for blank strings so optional columns store NULL
func NullIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences a nullable column value
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
