package brandkit

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nclosa/go-brandkit/internal/dateutil"
	"github.com/nclosa/go-brandkit/internal/docio"
)

// DocumentFormat selects the decoding applied to a kit document.
type DocumentFormat string

// Supported document formats. JSON documents may carry comments and
// trailing commas (JSONC); YAML decoding is strict and rejects unknown
// fields.
const (
	FormatJSON DocumentFormat = "json"
	FormatYAML DocumentFormat = "yaml"
)

// DetectFormat picks the document format from a file path's extension.
// ".yaml" and ".yml" select YAML; everything else decodes as JSON.
func DetectFormat(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// DecodeDocument parses a kit document. Decoding is purely structural;
// call Validate on the result to check it against the schema.
func DecodeDocument(data []byte, format DocumentFormat) (*BrandKit, error) {
	var kit BrandKit

	switch format {
	case FormatYAML:
		if err := docio.UnmarshalYAMLStrict(data, &kit); err != nil {
			return nil, fmt.Errorf("decoding YAML document: %w", err)
		}
	case FormatJSON:
		if err := docio.UnmarshalJSON(data, &kit); err != nil {
			return nil, fmt.Errorf("decoding JSON document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}

	return &kit, nil
}

// EncodeDocument serializes a kit to the canonical pretty JSON used for
// the archive's data document: two-space indent, struct key order,
// trailing newline. Byte-stable for a given kit.
func EncodeDocument(kit *BrandKit) ([]byte, error) {
	if kit == nil {
		return nil, ErrNilKit
	}
	return docio.MarshalIndent(kit)
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for the
// brand.updatedAt field and preview display dates.
//   - "auto" -> current date in YYYY-MM-DD format
//   - "auto:FORMAT" -> current date in a custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" -> current date using a named preset (iso, european, us, long)
//   - any other value -> returned unchanged (passthrough)
//
// Documents should stick to plain "auto" for updatedAt: the default
// format is the only one satisfying the schema's YYYY-MM-DD shape.
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	return dateutil.ResolveDate(value, t)
}
