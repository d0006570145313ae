// Package dateutil resolves the "auto" date directives accepted by kit
// documents. The brand.updatedAt field takes plain "auto" for a
// YYYY-MM-DD stamp; display dates may also name a preset or spell out a
// token format via "auto:FORMAT".
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrBadDirective reports a malformed "auto" directive or format.
var ErrBadDirective = errors.New("invalid date directive")

// maxFormatLen bounds the format part of an "auto:FORMAT" directive.
const maxFormatLen = 40

// defaultLayout is the Go layout behind plain "auto". It is the only
// layout whose output matches the schema's YYYY-MM-DD shape, so
// updatedAt fields should not go past plain "auto".
const defaultLayout = "2006-01-02"

// presets name the display formats the style guide documents.
var presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokens maps the supported format tokens to Go layout fragments,
// longest first so MMMM is not consumed as two MMs.
var tokens = [...][2]string{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// ResolveDate expands an "auto" directive against the given time.
// Plain "auto" stamps the YYYY-MM-DD default, "auto:NAME" applies a
// preset, and "auto:FORMAT" compiles a token format. Values that do not
// start with "auto" pass through verbatim; the directive word is
// case-insensitive, the format part is not.
func ResolveDate(value string, now time.Time) (string, error) {
	if !strings.HasPrefix(strings.ToLower(value), "auto") {
		return value, nil
	}
	if strings.EqualFold(value, "auto") {
		return now.Format(defaultLayout), nil
	}
	if value[4] != ':' {
		return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrBadDirective, value)
	}

	format := value[5:]
	if preset, ok := presets[strings.ToLower(format)]; ok {
		format = preset
	}

	layout, err := compileFormat(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}

// compileFormat translates a token format into a Go time layout. Bytes
// outside the token set pass through as literals.
func compileFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty format after \"auto:\"", ErrBadDirective)
	}
	if len(format) > maxFormatLen {
		return "", fmt.Errorf("%w: format longer than %d bytes", ErrBadDirective, maxFormatLen)
	}

	var layout strings.Builder
	layout.Grow(len(format))
	for len(format) > 0 {
		matched := false
		for _, t := range tokens {
			if rest, ok := strings.CutPrefix(format, t[0]); ok {
				layout.WriteString(t[1])
				format = rest
				matched = true
				break
			}
		}
		if !matched {
			layout.WriteByte(format[0])
			format = format[1:]
		}
	}
	return layout.String(), nil
}
