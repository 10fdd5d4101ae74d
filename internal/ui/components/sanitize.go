package components

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
)

func isBidiControl(r rune) bool {
	switch {
	case r >= '\u202a' && r <= '\u202e':
		return true
	case r >= '\u2066' && r <= '\u2069':
		return true
	case r == '\u200e' || r == '\u200f':
		return true
	}
	return false
}

// SanitizeText strips escape sequences and control characters from server
// supplied strings, keeping newlines and tabs.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	cleaned := oscPattern.ReplaceAllString(input, "")
	cleaned = csiPattern.ReplaceAllString(cleaned, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case isBidiControl(r), unicode.IsControl(r):
			return -1
		}
		return r
	}, cleaned)
}

// SanitizeOneLine is SanitizeText collapsed onto a single line.
func SanitizeOneLine(input string) string {
	cleaned := SanitizeText(input)
	cleaned = strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(cleaned)
	return strings.TrimSpace(cleaned)
}
