package brandkit

import (
	"fmt"
	"strings"
)

// Color role constants. A color may carry several roles; validation treats
// the list as a set, so repeats are legal and meaningless.
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
	RoleData      = "data"
)

// Font source type constants.
const (
	FontSourceGoogle = "google"
	FontSourceLocal  = "local"
	FontSourceURL    = "url"
)

// Typography weight bounds.
const (
	MinFontWeight = 100
	MaxFontWeight = 900
)

// BrandKit is the full structured document describing a brand's visual
// identity: metadata, logo variants, color palette, typography, and
// gallery images. The JSON tags define the wire format of the exported
// data document.
type BrandKit struct {
	Brand      BrandInfo     `json:"brand" yaml:"brand"`
	Logos      []Logo        `json:"logos" yaml:"logos"`
	Colors     []Color       `json:"colors" yaml:"colors"`
	Typography Typography    `json:"typography" yaml:"typography"`
	Gallery    []GalleryItem `json:"gallery" yaml:"gallery"`
}

// BrandInfo holds brand-level metadata.
type BrandInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Website     string `json:"website" yaml:"website"`     // absolute URL
	UpdatedAt   string `json:"updatedAt" yaml:"updatedAt"` // YYYY-MM-DD
}

// Logo groups the variants of one logo (e.g., full-color, monochrome).
type Logo struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Variants    []LogoVariant `json:"variants" yaml:"variants"`
}

// LogoVariant is one rendition of a logo. Src is either a user-entered
// path kept verbatim, or rewritten to an archive-relative path when a
// pending asset is staged for the variant's slot.
type LogoVariant struct {
	Label string `json:"label" yaml:"label"`
	Src   string `json:"src" yaml:"src"`
}

// Color is a named palette entry with one or more roles.
type Color struct {
	Name   string      `json:"name" yaml:"name"`
	Role   []string    `json:"role" yaml:"role"`
	Values ColorValues `json:"values" yaml:"values"`
}

// ColorValues holds the three string representations of a color. The
// fields are independently editable and only synchronized when a codec
// conversion is explicitly applied; the schema checks each field's
// syntax but never their mutual consistency.
type ColorValues struct {
	Hex  string `json:"hex" yaml:"hex"`   // "#rrggbb"
	RGB  string `json:"rgb" yaml:"rgb"`   // "R, G, B"
	CMYK string `json:"cmyk" yaml:"cmyk"` // "C, M, Y, K"
}

// Typography holds the kit's fonts and specimen examples.
type Typography struct {
	Fonts    []Font              `json:"fonts" yaml:"fonts"`
	Examples []TypographyExample `json:"examples" yaml:"examples"`
}

// Font is a named typeface with its source description.
type Font struct {
	Name   string     `json:"name" yaml:"name"`
	Source FontSource `json:"source" yaml:"source"`
}

// FontSource describes where a font comes from and which weights it carries.
type FontSource struct {
	Type    string `json:"type" yaml:"type"` // "google", "local", "url"
	Family  string `json:"family" yaml:"family"`
	Weights []int  `json:"weights" yaml:"weights"`
}

// TypographyExample is a specimen line rendered in the style guide.
// Font references a Font.Name by free text; dangling references are
// legal at the schema level.
type TypographyExample struct {
	Label         string  `json:"label" yaml:"label"`
	Font          string  `json:"font" yaml:"font"`
	SizePx        int     `json:"sizePx" yaml:"sizePx"`
	Weight        int     `json:"weight" yaml:"weight"`
	Text          string  `json:"text" yaml:"text"`
	LineHeight    float64 `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
}

// GalleryItem is one brand-in-use image.
type GalleryItem struct {
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Src     string `json:"src" yaml:"src"`
}

// Clone returns a deep copy of the kit. The export pipeline rewrites a
// clone so the caller's document is never mutated.
func (k *BrandKit) Clone() *BrandKit {
	if k == nil {
		return nil
	}

	out := &BrandKit{
		Brand: k.Brand,
	}

	out.Logos = make([]Logo, len(k.Logos))
	for i, logo := range k.Logos {
		out.Logos[i] = logo
		out.Logos[i].Variants = append([]LogoVariant(nil), logo.Variants...)
	}

	out.Colors = make([]Color, len(k.Colors))
	for i, c := range k.Colors {
		out.Colors[i] = c
		out.Colors[i].Role = append([]string(nil), c.Role...)
	}

	out.Typography.Fonts = make([]Font, len(k.Typography.Fonts))
	for i, f := range k.Typography.Fonts {
		out.Typography.Fonts[i] = f
		out.Typography.Fonts[i].Source.Weights = append([]int(nil), f.Source.Weights...)
	}
	out.Typography.Examples = append([]TypographyExample(nil), k.Typography.Examples...)

	out.Gallery = append([]GalleryItem(nil), k.Gallery...)

	return out
}

// SlotKind identifies which part of the document a pending asset binds to.
type SlotKind string

// Slot kinds.
const (
	SlotLogoVariant SlotKind = "logoVariant"
	SlotGallery     SlotKind = "gallery"
	SlotFont        SlotKind = "font"
)

// Slot is a logical placeholder for one pending binary asset: a specific
// logo variant (Index = logo, Sub = variant), a gallery position
// (Index), or a font (Index). Sub is meaningful only for logo variants.
type Slot struct {
	Kind  SlotKind
	Index int
	Sub   int
}

// String returns a stable human-readable form, used in errors and logs.
func (s Slot) String() string {
	if s.Kind == SlotLogoVariant {
		return fmt.Sprintf("%s[%d][%d]", s.Kind, s.Index, s.Sub)
	}
	return fmt.Sprintf("%s[%d]", s.Kind, s.Index)
}

// PendingAsset is a binary payload staged by the editing surface, not
// yet placed into an archive. ID is a stable identity assigned at
// staging time; Digest is a BLAKE3 content digest used for collision
// diagnostics. Pending assets are transient and never serialized into
// the document.
type PendingAsset struct {
	ID               string
	Slot             Slot
	OriginalFilename string
	Data             []byte
	Digest           string
}

// Page size constants for style guide PDF rendering.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures style guide PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}
