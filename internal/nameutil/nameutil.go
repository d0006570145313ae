// Package nameutil provides naming helpers for archive entry generation.
package nameutil

import (
	"path"
	"strings"
	"unicode"
)

// FallbackExt is used when a filename carries no extension.
// Archive entry names always end with an extension so consumers
// can key off it without sniffing content.
const FallbackExt = "bin"

// Slugify lowercases s and collapses every whitespace run into a single
// hyphen. No other normalization is applied: punctuation, accents, and
// symbols pass through unchanged, and a leading or trailing whitespace
// run still produces a hyphen.
func Slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte('-')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}

	return b.String()
}

// Ext returns the lowercased extension of filename without the leading
// dot, or FallbackExt if the filename has none. Only the last segment
// counts: "archive.tar.gz" yields "gz".
func Ext(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		return FallbackExt
	}
	return strings.ToLower(ext)
}
