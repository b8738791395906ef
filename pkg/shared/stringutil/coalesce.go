package stringutil

import "strings"

// EnvOr returns value (trimmed) if non-empty, otherwise returns existing.
// Used to layer environment overrides on top of file config.
func EnvOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}
