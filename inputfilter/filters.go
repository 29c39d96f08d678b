package inputfilter

import "strings"

// TrimSpace returns a filter that strips leading and trailing whitespace.
func TrimSpace() Filter[string] {
	return func(value string) string { return strings.TrimSpace(value) }
}

// ToLower returns a filter that lowercases a string.
func ToLower() Filter[string] {
	return func(value string) string { return strings.ToLower(value) }
}

// ToUpper returns a filter that uppercases a string.
func ToUpper() Filter[string] {
	return func(value string) string { return strings.ToUpper(value) }
}

// Truncate returns a filter that shortens a string to at most n bytes,
// leaving shorter strings untouched.
func Truncate(n int) Filter[string] {
	return func(value string) string {
		if len(value) <= n {
			return value
		}
		return value[:n]
	}
}
