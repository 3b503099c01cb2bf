package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// TrimmedOr treats nil and whitespace-only input alike.
func TrimmedOr(s *string, fallback string) string {
	if v := strings.TrimSpace(Coalesce(s, "")); v != "" {
		return v
	}
	return fallback
}
