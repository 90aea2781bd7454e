package validation

import (
	"strings"
	"unicode/utf8"
)

// MaxCityLength bounds the city query accepted from clients
const MaxCityLength = 100

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidCityLength reports whether the trimmed city fits MaxCityLength runes
func IsValidCityLength(city string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(city)) <= MaxCityLength
}

// MaskSecret keeps the first visible characters of a secret for diagnostics
func MaskSecret(secret string, visible int) string {
	if secret == "" {
		return "(undefined)"
	}
	if visible <= 0 {
		return "..."
	}
	runes := []rune(secret)
	if len(runes) <= visible {
		return string(runes) + "..."
	}
	return string(runes[:visible]) + "..."
}
