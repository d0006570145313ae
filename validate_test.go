package brandkit

// Notes:
// - Validate: required arrays, regex-shaped fields, enum membership, ranges
// - error collection: all failures reported at once with field paths
// - cross-field checks intentionally absent (dangling fonts, mismatched values)

import (
	"errors"
	"strings"
	"testing"
)

// validKit returns a minimal kit that passes validation. Shared by the
// schema, export, and preview tests; each test mutates its own copy.
func validKit() *BrandKit {
	return &BrandKit{
		Brand: BrandInfo{
			Name:        "Acme",
			Description: "Rocket-powered everything.",
			Website:     "https://acme.example.com",
			UpdatedAt:   "2026-08-24",
		},
		Logos: []Logo{
			{
				Name:        "Acme",
				Description: "Primary mark",
				Variants: []LogoVariant{
					{Label: "Full color", Src: "uploads/acme.png"},
				},
			},
		},
		Colors: []Color{
			{
				Name: "Rocket Red",
				Role: []string{RolePrimary},
				Values: ColorValues{
					Hex:  "#cc3333",
					RGB:  "204, 51, 51",
					CMYK: "0, 75, 75, 20",
				},
			},
		},
		Typography: Typography{
			Fonts: []Font{
				{
					Name: "Inter",
					Source: FontSource{
						Type:    FontSourceGoogle,
						Family:  "Inter",
						Weights: []int{400, 700},
					},
				},
			},
			Examples: []TypographyExample{
				{
					Label:  "Heading",
					Font:   "Inter",
					SizePx: 32,
					Weight: 700,
					Text:   "The quick brown fox",
				},
			},
		},
		Gallery: []GalleryItem{
			{Caption: "Launch day", Src: "uploads/launch.jpg"},
		},
	}
}

// ---------------------------------------------------------------------------
// TestValidate - Accepting Legal Documents
// ---------------------------------------------------------------------------

func TestValidateAcceptsValidKit(t *testing.T) {
	t.Parallel()

	if err := validKit().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateNilKit(t *testing.T) {
	t.Parallel()

	var kit *BrandKit
	if err := kit.Validate(); err != ErrNilKit {
		t.Errorf("Validate() on nil = %v, want ErrNilKit", err)
	}
}

func TestValidateSkipsCrossFieldChecks(t *testing.T) {
	t.Parallel()

	kit := validKit()
	// Dangling font reference and mutually inconsistent color values are
	// legal at the schema level.
	kit.Typography.Examples[0].Font = "No Such Font"
	kit.Colors[0].Values = ColorValues{Hex: "#000000", RGB: "255, 255, 255", CMYK: "1, 2, 3, 4"}

	if err := kit.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateFieldErrors - Rejection With Field Paths
// ---------------------------------------------------------------------------

func TestValidateFieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*BrandKit)
		wantPath string
	}{
		{
			name:     "empty brand name",
			mutate:   func(k *BrandKit) { k.Brand.Name = "" },
			wantPath: "brand.name",
		},
		{
			name:     "relative website",
			mutate:   func(k *BrandKit) { k.Brand.Website = "acme.example.com" },
			wantPath: "brand.website",
		},
		{
			name:     "malformed updatedAt",
			mutate:   func(k *BrandKit) { k.Brand.UpdatedAt = "24/08/2026" },
			wantPath: "brand.updatedAt",
		},
		{
			name:     "no logos",
			mutate:   func(k *BrandKit) { k.Logos = nil },
			wantPath: "logos",
		},
		{
			name:     "logo without variants",
			mutate:   func(k *BrandKit) { k.Logos[0].Variants = nil },
			wantPath: "logos[0].variants",
		},
		{
			name:     "variant without src",
			mutate:   func(k *BrandKit) { k.Logos[0].Variants[0].Src = "" },
			wantPath: "logos[0].variants[0].src",
		},
		{
			name:     "no colors",
			mutate:   func(k *BrandKit) { k.Colors = nil },
			wantPath: "colors",
		},
		{
			name:     "empty role set",
			mutate:   func(k *BrandKit) { k.Colors[0].Role = nil },
			wantPath: "colors[0].role",
		},
		{
			name:     "unknown role",
			mutate:   func(k *BrandKit) { k.Colors[0].Role = []string{"accent"} },
			wantPath: "colors[0].role[0]",
		},
		{
			name:     "non-hex hex value",
			mutate:   func(k *BrandKit) { k.Colors[0].Values.Hex = "#ZZZZZZ" },
			wantPath: "colors[0].values.hex",
		},
		{
			name:     "rgb with four components",
			mutate:   func(k *BrandKit) { k.Colors[0].Values.RGB = "1, 2, 3, 4" },
			wantPath: "colors[0].values.rgb",
		},
		{
			name:     "rgb component above 999",
			mutate:   func(k *BrandKit) { k.Colors[0].Values.RGB = "1000, 0, 0" },
			wantPath: "colors[0].values.rgb",
		},
		{
			name:     "cmyk with three components",
			mutate:   func(k *BrandKit) { k.Colors[0].Values.CMYK = "1, 2, 3" },
			wantPath: "colors[0].values.cmyk",
		},
		{
			name:     "no fonts",
			mutate:   func(k *BrandKit) { k.Typography.Fonts = nil },
			wantPath: "typography.fonts",
		},
		{
			name:     "unknown font source type",
			mutate:   func(k *BrandKit) { k.Typography.Fonts[0].Source.Type = "system" },
			wantPath: "typography.fonts[0].source.type",
		},
		{
			name:     "empty weights",
			mutate:   func(k *BrandKit) { k.Typography.Fonts[0].Source.Weights = nil },
			wantPath: "typography.fonts[0].source.weights",
		},
		{
			name:     "no examples",
			mutate:   func(k *BrandKit) { k.Typography.Examples = nil },
			wantPath: "typography.examples",
		},
		{
			name:     "zero size",
			mutate:   func(k *BrandKit) { k.Typography.Examples[0].SizePx = 0 },
			wantPath: "typography.examples[0].sizePx",
		},
		{
			name:     "weight below range",
			mutate:   func(k *BrandKit) { k.Typography.Examples[0].Weight = 50 },
			wantPath: "typography.examples[0].weight",
		},
		{
			name:     "weight above range",
			mutate:   func(k *BrandKit) { k.Typography.Examples[0].Weight = 950 },
			wantPath: "typography.examples[0].weight",
		},
		{
			name:     "gallery item without src",
			mutate:   func(k *BrandKit) { k.Gallery[0].Src = "" },
			wantPath: "gallery[0].src",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kit := validKit()
			tt.mutate(kit)

			err := kit.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() returned %T, want ValidationError", err)
			}

			for _, fe := range verr {
				if fe.Path == tt.wantPath {
					return
				}
			}
			t.Errorf("no error for path %q in %v", tt.wantPath, verr)
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	kit := validKit()
	kit.Brand.Name = ""
	kit.Colors[0].Values.Hex = "nope"
	kit.Gallery[0].Src = ""

	err := kit.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() returned %T, want ValidationError", err)
	}

	if len(verr) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(verr), verr)
	}

	msg := err.Error()
	if !strings.Contains(msg, "brand.name") || !strings.Contains(msg, "colors[0].values.hex") {
		t.Errorf("Error() missing field paths: %q", msg)
	}
}

func TestValidateEmptyGalleryIsLegal(t *testing.T) {
	t.Parallel()

	kit := validKit()
	kit.Gallery = nil

	if err := kit.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
