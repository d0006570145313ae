package brandkit

import (
	"fmt"
	"strings"

	"github.com/nclosa/go-brandkit/internal/nameutil"
)

// fallbackFontFamily closes every generated font stack.
const fallbackFontFamily = "sans-serif"

// BuildPaletteCSS generates a :root block of custom properties for the
// kit's palette, one "--bk-color-<slug>" property per color carrying
// its hex value. Output is deterministic in document order.
func BuildPaletteCSS(kit *BrandKit) string {
	if kit == nil || len(kit.Colors) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("/* Palette */\n:root {\n")
	for _, c := range kit.Colors {
		fmt.Fprintf(&buf, "  --bk-color-%s: %s;\n", nameutil.Slugify(c.Name), c.Values.Hex)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// BuildFontVariablesCSS generates a :root block of custom properties
// for the kit's fonts, one "--bk-font-<slug>" property per font with
// the family quoted and a generic fallback appended.
func BuildFontVariablesCSS(kit *BrandKit) string {
	if kit == nil || len(kit.Typography.Fonts) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("/* Font stacks */\n:root {\n")
	for _, f := range kit.Typography.Fonts {
		fmt.Fprintf(&buf, "  --bk-font-%s: \"%s\", %s;\n",
			nameutil.Slugify(f.Name), escapeCSSString(f.Source.Family), fallbackFontFamily)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// escapeCSSString escapes a string for safe use inside a CSS quoted value.
// Prevents CSS injection by escaping backslashes, quotes, and newlines.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
