package brandkit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color codec: pure conversions between the three string representations
// stored in ColorValues. Inputs are live, possibly-incomplete user text,
// so every function returns the empty string on malformed input instead
// of an error value. Callers must check for "" before applying a result.
//
// The conversions are not mutually inverse to bit-exactness: composing
// hex -> rgb -> cmyk -> rgb -> hex can drift by one unit per channel
// because each stage rounds independently. The drift is accepted, not
// corrected.

// HexToRGB converts "#rrggbb" to "R, G, B". A single leading "#" is
// stripped; exactly six hex digits must remain. Components are decimal
// with no zero padding.
func HexToRGB(hex string) string {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return ""
	}

	// Per-byte digit check: ParseInt would accept a sign inside a pair.
	var channels [3]int
	for i := range channels {
		hi, okHi := hexDigit(s[i*2])
		lo, okLo := hexDigit(s[i*2+1])
		if !okHi || !okLo {
			return ""
		}
		channels[i] = hi<<4 | lo
	}

	return fmt.Sprintf("%d, %d, %d", channels[0], channels[1], channels[2])
}

// hexDigit decodes one [0-9A-Fa-f] byte.
func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}

// RGBToHex converts "R, G, B" to "#rrggbb" with lowercase zero-padded
// pairs. Components are not range-checked: values outside [0,255]
// produce wider hex or a sign and the result is then not a legal hex
// color. The schema's syntactic 0-999 bound is the only guard.
func RGBToHex(rgb string) string {
	parts, ok := parseIntList(rgb, 3)
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", parts[0], parts[1], parts[2])
}

// RGBToCMYK converts "R, G, B" to "C, M, Y, K" integer percentages.
// Pure black returns "0, 0, 0, 100" exactly, avoiding the division by
// zero in the chromatic channels.
func RGBToCMYK(rgb string) string {
	parts, ok := parseIntList(rgb, 3)
	if !ok {
		return ""
	}

	r := float64(parts[0]) / 255
	g := float64(parts[1]) / 255
	b := float64(parts[2]) / 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return "0, 0, 0, 100"
	}

	c := roundPercent(100 * (1 - r - k) / (1 - k))
	m := roundPercent(100 * (1 - g - k) / (1 - k))
	y := roundPercent(100 * (1 - b - k) / (1 - k))

	return fmt.Sprintf("%d, %d, %d, %d", c, m, y, roundPercent(100*k))
}

// CMYKToRGB converts "C, M, Y, K" integer percentages to "R, G, B".
func CMYKToRGB(cmyk string) string {
	parts, ok := parseIntList(cmyk, 4)
	if !ok {
		return ""
	}

	c := float64(parts[0]) / 100
	m := float64(parts[1]) / 100
	y := float64(parts[2]) / 100
	k := float64(parts[3]) / 100

	r := roundPercent(255 * (1 - c) * (1 - k))
	g := roundPercent(255 * (1 - m) * (1 - k))
	b := roundPercent(255 * (1 - y) * (1 - k))

	return fmt.Sprintf("%d, %d, %d", r, g, b)
}

// HexToCMYK converts through the RGB intermediate; fails if any stage fails.
func HexToCMYK(hex string) string {
	rgb := HexToRGB(hex)
	if rgb == "" {
		return ""
	}
	return RGBToCMYK(rgb)
}

// CMYKToHex converts through the RGB intermediate; fails if any stage fails.
func CMYKToHex(cmyk string) string {
	rgb := CMYKToRGB(cmyk)
	if rgb == "" {
		return ""
	}
	return RGBToHex(rgb)
}

// parseIntList parses exactly count comma-separated integers, tolerating
// surrounding whitespace on each component.
func parseIntList(s string, count int) ([]int, bool) {
	fields := strings.Split(s, ",")
	if len(fields) != count {
		return nil, false
	}

	values := make([]int, count)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// roundPercent rounds half away from zero to the nearest integer.
func roundPercent(v float64) int {
	return int(math.Round(v))
}
