// Package naming derives safe archive filenames from label text and raw
// image bytes.
package naming

import (
	"regexp"
	"strings"
)

// unsafeChars are the filesystem-unsafe characters never allowed in a stem.
const unsafeChars = `<>:"/\|?*`

// maxStemLen bounds the length of a normalized stem in characters.
const maxStemLen = 50

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize converts arbitrary label text into a safe, bounded filename
// stem. Unsafe characters act as separators, runs of whitespace collapse to
// a single underscore, and the result is truncated to 50 characters. Input
// that is empty, or empty after cleaning, normalizes to "image".
func Normalize(label string) string {
	clean := strings.TrimSpace(label)
	if clean == "" {
		return "image"
	}

	clean = strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeChars, r) {
			return ' '
		}
		return r
	}, clean)
	clean = strings.TrimSpace(clean)
	clean = whitespaceRun.ReplaceAllString(clean, "_")

	if runes := []rune(clean); len(runes) > maxStemLen {
		clean = string(runes[:maxStemLen])
	}
	if clean == "" {
		return "image"
	}
	return clean
}
