package validators

import (
	"strings"
	"unicode"
)

// SanitizeString trims input, drops control characters and cuts the result to
// at most maxLen bytes without splitting a multi-byte rune. maxLen <= 0 means
// no limit.
func SanitizeString(input string, maxLen int) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(input))

	if maxLen <= 0 || len(cleaned) <= maxLen {
		return cleaned
	}
	cut := 0
	for i := range cleaned {
		if i > maxLen {
			break
		}
		cut = i
	}
	return strings.TrimSpace(cleaned[:cut])
}
