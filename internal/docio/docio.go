// Package docio handles brand kit document encoding and decoding.
// It wraps the external YAML and JSONC dependencies so callers never
// import them directly, and pins the canonical JSON serialization used
// for archive data documents.
package docio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"
)

// MaxInputSize limits document input to prevent memory exhaustion (default 4MB).
var MaxInputSize = 4 << 20

var (
	ErrNilData        = errors.New("docio: nil or empty data")
	ErrNilDestination = errors.New("docio: nil destination pointer")
	ErrInputTooLarge  = errors.New("docio: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalJSON decodes a JSON or JSONC document into v.
// Comments and trailing commas are stripped before decoding, so kits
// authored by hand can carry annotations.
func UnmarshalJSON(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), v); err != nil {
		return fmt.Errorf("docio: %w", err)
	}
	return nil
}

// UnmarshalYAMLStrict decodes a YAML document into v, rejecting unknown fields.
func UnmarshalYAMLStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("docio: %w", err)
	}
	return nil
}

// MarshalIndent encodes v as pretty-printed JSON: two-space indent,
// HTML left unescaped, trailing newline. Output is byte-stable for a
// given input, which archive determinism depends on.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("docio: %w", err)
	}
	return buf.Bytes(), nil
}
