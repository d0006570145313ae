package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nclosa/go-brandkit/internal/docio"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxStyleLength       = 100  // Style name or short path
	MaxPathLength        = 2048 // Filesystem path
	MaxFontNameLength    = 100  // Typography font name
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
)

// Compression level bounds for export archives (flate levels).
const (
	MinCompressionLevel = 0 // store only
	MaxCompressionLevel = 9 // best compression
)

// Config holds all configuration for brand kit operations.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Export  ExportConfig  `yaml:"export"`
	Preview PreviewConfig `yaml:"preview"`
	Fonts   []FontMapping `yaml:"fonts"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// ExportConfig defines archive export options.
type ExportConfig struct {
	CompressionLevel int `yaml:"compressionLevel"` // 0-9 (0 = library default)
}

// PreviewConfig defines style guide preview options.
type PreviewConfig struct {
	Style       string  `yaml:"style"`       // Name in internal/assets/styles/ or path to a CSS file
	PageSize    string  `yaml:"pageSize"`    // "letter", "a4", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
	Timeout     string  `yaml:"timeout"`     // PDF rendering timeout, Go duration syntax (default: "30s")
}

// FontMapping binds a typography font name to a local font file,
// staged under assets/fonts/ during export.
type FontMapping struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// AssetsConfig defines preview asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if c.Export.CompressionLevel < MinCompressionLevel || c.Export.CompressionLevel > MaxCompressionLevel {
		return fmt.Errorf("export.compressionLevel: must be between %d and %d, got %d",
			MinCompressionLevel, MaxCompressionLevel, c.Export.CompressionLevel)
	}

	if err := validateFieldLength("preview.style", c.Preview.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.pageSize", c.Preview.PageSize, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.orientation", c.Preview.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if c.Preview.Orientation != "" {
		switch strings.ToLower(c.Preview.Orientation) {
		case "portrait", "landscape":
			// valid
		default:
			return fmt.Errorf("preview.orientation: invalid value %q (must be portrait or landscape)", c.Preview.Orientation)
		}
	}
	if c.Preview.Margin < 0 || c.Preview.Margin > 5 {
		return fmt.Errorf("preview.margin: must be between 0 and 5 inches, got %.2f", c.Preview.Margin)
	}
	if c.Preview.Timeout != "" {
		d, err := time.ParseDuration(c.Preview.Timeout)
		if err != nil {
			return fmt.Errorf("preview.timeout: invalid duration %q", c.Preview.Timeout)
		}
		if d <= 0 {
			return fmt.Errorf("preview.timeout: must be positive, got %s", d)
		}
	}

	for i, font := range c.Fonts {
		if font.Name == "" {
			return fmt.Errorf("fonts[%d].name: cannot be empty", i)
		}
		if err := validateFieldLength(fmt.Sprintf("fonts[%d].name", i), font.Name, MaxFontNameLength); err != nil {
			return err
		}
		if font.Path == "" {
			return fmt.Errorf("fonts[%d].path: cannot be empty", i)
		}
		if err := validateFieldLength(fmt.Sprintf("fonts[%d].path", i), font.Path, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with library defaults.
func DefaultConfig() *Config {
	return &Config{
		Output:  OutputConfig{DefaultDir: ""},
		Export:  ExportConfig{CompressionLevel: 0},
		Preview: PreviewConfig{Style: ""},
		Assets:  AssetsConfig{BasePath: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := docio.UnmarshalYAMLStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-brandkit/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-brandkit", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
