package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// fileNameStripChars are the characters removed from candidate names before
// they become report basenames.
const fileNameStripChars = "\\/*?:\"<>|\n\r"

// SanitizeFileName trims the name and strips path separators, shell
// wildcards and newlines so it is safe as a file basename.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(fileNameStripChars, r) {
			return -1
		}
		return r
	}, name)
}

var asciiOnly = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// StripNonASCII drops every rune outside the basic ASCII range. The PDF
// cell writer cannot render arbitrary characters.
func StripNonASCII(s string) string {
	cleaned, _, err := transform.String(asciiOnly, s)
	if err != nil {
		return s
	}
	return cleaned
}
