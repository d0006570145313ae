package brandkit

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// FieldError describes one validation failure: a JSON-style path into
// the document ("logos[0].variants[1].src") and a human-readable message.
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) String() string {
	return e.Path + ": " + e.Message
}

// ValidationError is the complete set of field errors for one document.
// All failures are collected, never short-circuited, so the editing
// surface gets the full error set at once.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.String()
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e), strings.Join(msgs, "; "))
}

// Syntactic patterns for color value fields. The rgb/cmyk patterns
// bound components to 0-999; the semantic ranges (0-255, 0-100) are
// the codec's concern, not the schema's.
var (
	hexPattern  = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	rgbPattern  = regexp.MustCompile(`^\d{1,3}, ?\d{1,3}, ?\d{1,3}$`)
	cmykPattern = regexp.MustCompile(`^\d{1,3}, ?\d{1,3}, ?\d{1,3}, ?\d{1,3}$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// validRoles is the legal role set for palette colors.
var validRoles = map[string]bool{
	RolePrimary:   true,
	RoleSecondary: true,
	RoleData:      true,
}

// validFontSourceTypes is the legal font source type set.
var validFontSourceTypes = map[string]bool{
	FontSourceGoogle: true,
	FontSourceLocal:  true,
	FontSourceURL:    true,
}

// Validate decides whether the kit is a legal brand kit document.
// Returns nil or a ValidationError listing every failure in document
// order. Validation is structural (required presence, array
// non-emptiness) and lightly semantic (regex-shaped strings, numeric
// ranges, enum membership); it performs no cross-field consistency
// checks, so dangling typography font references and mismatched
// hex/rgb/cmyk triples are accepted.
func (k *BrandKit) Validate() error {
	if k == nil {
		return ErrNilKit
	}

	var errs ValidationError

	errs = append(errs, k.Brand.validate()...)
	errs = append(errs, k.validateLogos()...)
	errs = append(errs, k.validateColors()...)
	errs = append(errs, k.Typography.validate()...)
	errs = append(errs, k.validateGallery()...)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (b BrandInfo) validate() ValidationError {
	var errs ValidationError

	if b.Name == "" {
		errs = append(errs, FieldError{"brand.name", "cannot be empty"})
	}
	if b.Website == "" {
		errs = append(errs, FieldError{"brand.website", "cannot be empty"})
	} else if u, err := url.Parse(b.Website); err != nil || !u.IsAbs() || u.Host == "" {
		errs = append(errs, FieldError{"brand.website", fmt.Sprintf("must be an absolute URL, got %q", b.Website)})
	}
	if !datePattern.MatchString(b.UpdatedAt) {
		errs = append(errs, FieldError{"brand.updatedAt", fmt.Sprintf("must match YYYY-MM-DD, got %q", b.UpdatedAt)})
	}

	return errs
}

func (k *BrandKit) validateLogos() ValidationError {
	var errs ValidationError

	if len(k.Logos) == 0 {
		errs = append(errs, FieldError{"logos", "must contain at least one logo"})
	}

	for i, logo := range k.Logos {
		path := fmt.Sprintf("logos[%d]", i)
		if logo.Name == "" {
			errs = append(errs, FieldError{path + ".name", "cannot be empty"})
		}
		if len(logo.Variants) == 0 {
			errs = append(errs, FieldError{path + ".variants", "must contain at least one variant"})
		}
		for j, v := range logo.Variants {
			vpath := fmt.Sprintf("%s.variants[%d]", path, j)
			if v.Label == "" {
				errs = append(errs, FieldError{vpath + ".label", "cannot be empty"})
			}
			if v.Src == "" {
				errs = append(errs, FieldError{vpath + ".src", "cannot be empty"})
			}
		}
	}

	return errs
}

func (k *BrandKit) validateColors() ValidationError {
	var errs ValidationError

	if len(k.Colors) == 0 {
		errs = append(errs, FieldError{"colors", "must contain at least one color"})
	}

	for i, c := range k.Colors {
		path := fmt.Sprintf("colors[%d]", i)
		if c.Name == "" {
			errs = append(errs, FieldError{path + ".name", "cannot be empty"})
		}
		if len(c.Role) == 0 {
			errs = append(errs, FieldError{path + ".role", "must contain at least one role"})
		}
		for j, role := range c.Role {
			if !validRoles[role] {
				errs = append(errs, FieldError{
					fmt.Sprintf("%s.role[%d]", path, j),
					fmt.Sprintf("must be one of primary, secondary, data; got %q", role),
				})
			}
		}
		if !hexPattern.MatchString(c.Values.Hex) {
			errs = append(errs, FieldError{path + ".values.hex", fmt.Sprintf("must match #rrggbb, got %q", c.Values.Hex)})
		}
		if !rgbPattern.MatchString(c.Values.RGB) {
			errs = append(errs, FieldError{path + ".values.rgb", fmt.Sprintf("must be three comma-separated integers, got %q", c.Values.RGB)})
		}
		if !cmykPattern.MatchString(c.Values.CMYK) {
			errs = append(errs, FieldError{path + ".values.cmyk", fmt.Sprintf("must be four comma-separated integers, got %q", c.Values.CMYK)})
		}
	}

	return errs
}

func (t Typography) validate() ValidationError {
	var errs ValidationError

	if len(t.Fonts) == 0 {
		errs = append(errs, FieldError{"typography.fonts", "must contain at least one font"})
	}

	for i, f := range t.Fonts {
		path := fmt.Sprintf("typography.fonts[%d]", i)
		if f.Name == "" {
			errs = append(errs, FieldError{path + ".name", "cannot be empty"})
		}
		if !validFontSourceTypes[f.Source.Type] {
			errs = append(errs, FieldError{
				path + ".source.type",
				fmt.Sprintf("must be one of google, local, url; got %q", f.Source.Type),
			})
		}
		if f.Source.Family == "" {
			errs = append(errs, FieldError{path + ".source.family", "cannot be empty"})
		}
		if len(f.Source.Weights) == 0 {
			errs = append(errs, FieldError{path + ".source.weights", "must contain at least one weight"})
		}
	}

	if len(t.Examples) == 0 {
		errs = append(errs, FieldError{"typography.examples", "must contain at least one example"})
	}

	for i, ex := range t.Examples {
		path := fmt.Sprintf("typography.examples[%d]", i)
		if ex.Label == "" {
			errs = append(errs, FieldError{path + ".label", "cannot be empty"})
		}
		if ex.Font == "" {
			errs = append(errs, FieldError{path + ".font", "cannot be empty"})
		}
		if ex.SizePx < 1 {
			errs = append(errs, FieldError{path + ".sizePx", fmt.Sprintf("must be at least 1, got %d", ex.SizePx)})
		}
		if ex.Weight < MinFontWeight || ex.Weight > MaxFontWeight {
			errs = append(errs, FieldError{
				path + ".weight",
				fmt.Sprintf("must be between %d and %d, got %d", MinFontWeight, MaxFontWeight, ex.Weight),
			})
		}
		if ex.Text == "" {
			errs = append(errs, FieldError{path + ".text", "cannot be empty"})
		}
	}

	return errs
}

func (k *BrandKit) validateGallery() ValidationError {
	var errs ValidationError

	for i, item := range k.Gallery {
		if item.Src == "" {
			errs = append(errs, FieldError{fmt.Sprintf("gallery[%d].src", i), "cannot be empty"})
		}
	}

	return errs
}
