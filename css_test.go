package brandkit

// Notes:
// - BuildPaletteCSS / BuildFontVariablesCSS: custom property generation
// - escapeCSSString: quoting safety for font family names

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestBuildPaletteCSS - Palette Custom Properties
// ---------------------------------------------------------------------------

func TestBuildPaletteCSS(t *testing.T) {
	t.Parallel()

	kit := validKit()
	kit.Colors = []Color{
		{Name: "Rocket Red", Role: []string{RolePrimary}, Values: ColorValues{Hex: "#cc3333"}},
		{Name: "Sky Blue", Role: []string{RoleSecondary}, Values: ColorValues{Hex: "#4682b4"}},
	}

	css := BuildPaletteCSS(kit)

	for _, want := range []string{
		":root {",
		"--bk-color-rocket-red: #cc3333;",
		"--bk-color-sky-blue: #4682b4;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("palette CSS missing %q:\n%s", want, css)
		}
	}
}

func TestBuildPaletteCSSEmpty(t *testing.T) {
	t.Parallel()

	if got := BuildPaletteCSS(nil); got != "" {
		t.Errorf("BuildPaletteCSS(nil) = %q, want empty", got)
	}

	kit := validKit()
	kit.Colors = nil
	if got := BuildPaletteCSS(kit); got != "" {
		t.Errorf("BuildPaletteCSS(no colors) = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestBuildFontVariablesCSS - Font Stack Custom Properties
// ---------------------------------------------------------------------------

func TestBuildFontVariablesCSS(t *testing.T) {
	t.Parallel()

	kit := validKit()
	kit.Typography.Fonts = []Font{
		{Name: "Inter", Source: FontSource{Type: FontSourceGoogle, Family: "Inter", Weights: []int{400}}},
		{Name: "Brand Serif", Source: FontSource{Type: FontSourceLocal, Family: `Acme "Display"`, Weights: []int{700}}},
	}

	css := BuildFontVariablesCSS(kit)

	if !strings.Contains(css, `--bk-font-inter: "Inter", sans-serif;`) {
		t.Errorf("font CSS missing Inter stack:\n%s", css)
	}
	// Quotes inside a family name must be escaped.
	if !strings.Contains(css, `--bk-font-brand-serif: "Acme \"Display\"", sans-serif;`) {
		t.Errorf("font CSS missing escaped family:\n%s", css)
	}
}

// ---------------------------------------------------------------------------
// TestEscapeCSSString - CSS String Escaping
// ---------------------------------------------------------------------------

func TestEscapeCSSString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Inter",
			expected: "Inter",
		},
		{
			name:     "escapes double quotes",
			input:    `Font "Display"`,
			expected: `Font \"Display\"`,
		},
		{
			name:     "escapes backslash",
			input:    `a\b`,
			expected: `a\\b`,
		},
		{
			name:     "escapes newline",
			input:    "line1\nline2",
			expected: `line1\A line2`,
		},
		{
			name:     "removes carriage return",
			input:    "line1\r\nline2",
			expected: `line1\A line2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := escapeCSSString(tt.input)
			if got != tt.expected {
				t.Errorf("escapeCSSString(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
