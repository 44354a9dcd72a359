package common

import (
	"path/filepath"
	"strings"
	"unicode"
)

// UnknownStr is printed for enum values outside their declared range.
const UnknownStr = "unknown"

// LeadingWhitespace returns the run of whitespace that starts s.
func LeadingWhitespace(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if end < 0 {
		return s
	}

	return s[:end]
}

// IsBlank returns true if s holds nothing but whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SwapExt replaces the extension of path with ext (ext includes the dot).
func SwapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
