package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a stylesheet or template name can serve
// directly as a filename stem. Names never carry an extension, so dots
// are rejected along with separators and traversal sequences.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidAssetName)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidAssetName, name)
	case strings.Contains(name, "."):
		return fmt.Errorf("%w: %q contains a dot", ErrInvalidAssetName, name)
	}
	return nil
}
