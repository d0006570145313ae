package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Export.CompressionLevel != 0 {
		t.Errorf("Export.CompressionLevel = %d, want 0", cfg.Export.CompressionLevel)
	}
	if cfg.Preview.Style != "" {
		t.Errorf("Preview.Style = %q, want empty", cfg.Preview.Style)
	}
	if len(cfg.Fonts) != 0 {
		t.Errorf("Fonts = %v, want empty", cfg.Fonts)
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid config passes validation", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{
			Output: OutputConfig{DefaultDir: "/tmp/exports"},
			Export: ExportConfig{CompressionLevel: 6},
			Preview: PreviewConfig{
				Style:       "guide",
				PageSize:    "a4",
				Orientation: "portrait",
				Margin:      0.5,
			},
			Fonts: []FontMapping{
				{Name: "Inter", Path: "/fonts/inter.woff2"},
			},
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("output.defaultDir too long returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Output: OutputConfig{DefaultDir: string(make([]byte, MaxPathLength+1))}}
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("compression level above maximum returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Export: ExportConfig{CompressionLevel: 10}}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error for compression level 10")
		}
		if !strings.Contains(err.Error(), "export.compressionLevel") {
			t.Errorf("error should mention export.compressionLevel, got: %v", err)
		}
	})

	t.Run("compression level below minimum returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Export: ExportConfig{CompressionLevel: -1}}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for negative compression level")
		}
	})

	t.Run("compression level at bounds passes", func(t *testing.T) {
		t.Parallel()
		for _, level := range []int{MinCompressionLevel, MaxCompressionLevel} {
			cfg := &Config{Export: ExportConfig{CompressionLevel: level}}
			if err := cfg.Validate(); err != nil {
				t.Errorf("level %d: unexpected error: %v", level, err)
			}
		}
	})

	t.Run("orientation portrait passes", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Preview: PreviewConfig{Orientation: "portrait"}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("orientation case insensitive", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Preview: PreviewConfig{Orientation: "LANDSCAPE"}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("invalid orientation returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Preview: PreviewConfig{Orientation: "diagonal"}}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error for invalid orientation")
		}
		if !strings.Contains(err.Error(), "preview.orientation") {
			t.Errorf("error should mention preview.orientation, got: %v", err)
		}
	})

	t.Run("negative margin returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Preview: PreviewConfig{Margin: -0.1}}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for negative margin")
		}
	})

	t.Run("margin above maximum returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Preview: PreviewConfig{Margin: 5.5}}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for margin above 5 inches")
		}
	})

	t.Run("valid timeout passes", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Preview: PreviewConfig{Timeout: "45s"}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("invalid timeout returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Preview: PreviewConfig{Timeout: "banana"}}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error for unparsable timeout")
		}
		if !strings.Contains(err.Error(), "preview.timeout") {
			t.Errorf("error should mention preview.timeout, got: %v", err)
		}
	})

	t.Run("non-positive timeout returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Preview: PreviewConfig{Timeout: "-5s"}}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for negative timeout")
		}
	})

	t.Run("font mapping with empty name returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Fonts: []FontMapping{{Name: "", Path: "/fonts/x.ttf"}}}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error for empty font name")
		}
		if !strings.Contains(err.Error(), "fonts[0].name") {
			t.Errorf("error should mention fonts[0].name, got: %v", err)
		}
	})

	t.Run("font mapping with empty path returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Fonts: []FontMapping{{Name: "Inter", Path: ""}}}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error for empty font path")
		}
		if !strings.Contains(err.Error(), "fonts[0].path") {
			t.Errorf("error should mention fonts[0].path, got: %v", err)
		}
	})

	t.Run("font mapping name too long returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Fonts: []FontMapping{
			{Name: string(make([]byte, MaxFontNameLength+1)), Path: "/fonts/x.ttf"},
		}}
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("assets.basePath too long returns error", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Assets: AssetsConfig{BasePath: string(make([]byte, MaxPathLength+1))}}
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `output:
  defaultDir: "/path/to/exports"
export:
  compressionLevel: 9
preview:
  style: "guide"
  pageSize: "a4"
  orientation: "landscape"
  margin: 1.0
fonts:
  - name: "Inter"
    path: "/fonts/inter-regular.woff2"
  - name: "Inter"
    path: "/fonts/inter-bold.woff2"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.DefaultDir != "/path/to/exports" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "/path/to/exports")
		}
		if cfg.Export.CompressionLevel != 9 {
			t.Errorf("Export.CompressionLevel = %d, want 9", cfg.Export.CompressionLevel)
		}
		if cfg.Preview.Style != "guide" {
			t.Errorf("Preview.Style = %q, want %q", cfg.Preview.Style, "guide")
		}
		if cfg.Preview.Orientation != "landscape" {
			t.Errorf("Preview.Orientation = %q, want %q", cfg.Preview.Orientation, "landscape")
		}
		if cfg.Preview.Margin != 1.0 {
			t.Errorf("Preview.Margin = %v, want %v", cfg.Preview.Margin, 1.0)
		}
		if len(cfg.Fonts) != 2 {
			t.Fatalf("len(Fonts) = %d, want 2", len(cfg.Fonts))
		}
		if cfg.Fonts[1].Path != "/fonts/inter-bold.woff2" {
			t.Errorf("Fonts[1].Path = %q, want %q", cfg.Fonts[1].Path, "/fonts/inter-bold.woff2")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("preview: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		content := `preview:
  style: "guide"
unknownField: "should fail"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("field too long returns ErrFieldTooLong", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "toolong.yaml")
		longName := strings.Repeat("a", MaxFontNameLength+1)
		content := "fonts:\n  - name: \"" + longName + "\"\n    path: \"/fonts/x.ttf\"\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root ignores file permission bits")
		}

		dir := t.TempDir()
		configPath := filepath.Join(dir, "unreadable.yaml")
		if err := os.WriteFile(configPath, []byte("preview:\n  style: test\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.Chmod(configPath, 0000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(configPath, 0600)

		_, err := LoadConfig(configPath)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "myconfig.yaml")
		if err := os.WriteFile(configPath, []byte("preview:\n  style: fromname\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Preview.Style != "fromname" {
			t.Errorf("Preview.Style = %q, want %q", cfg.Preview.Style, "fromname")
		}
	})

	t.Run("config name resolves yml when yaml not found", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "myconfig.yml")
		if err := os.WriteFile(configPath, []byte("preview:\n  style: fromyml\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Preview.Style != "fromyml" {
			t.Errorf("Preview.Style = %q, want %q", cfg.Preview.Style, "fromyml")
		}
	})

	t.Run("config name prefers yaml over yml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "myconfig.yaml"), []byte("preview:\n  style: yaml\n"), 0600); err != nil {
			t.Fatalf("setup yaml: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "myconfig.yml"), []byte("preview:\n  style: yml\n"), 0600); err != nil {
			t.Fatalf("setup yml: %v", err)
		}

		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Preview.Style != "yaml" {
			t.Errorf("Preview.Style = %q, want %q (should prefer .yaml)", cfg.Preview.Style, "yaml")
		}
	})

	t.Run("config name resolves from user config directory", func(t *testing.T) {
		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			t.Skip("cannot get user config dir")
		}

		appConfigDir := filepath.Join(userConfigDir, "go-brandkit")
		configPath := filepath.Join(appConfigDir, "testconfig.yaml")

		if err := os.MkdirAll(appConfigDir, 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(configPath, []byte("preview:\n  style: userdir\n"), 0600); err != nil {
			t.Fatalf("setup write: %v", err)
		}
		defer os.Remove(configPath)

		// Change to empty dir so local file isn't found
		dir := t.TempDir()
		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		cfg, err := LoadConfig("testconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Preview.Style != "userdir" {
			t.Errorf("Preview.Style = %q, want %q", cfg.Preview.Style, "userdir")
		}
	})

	t.Run("config name not found returns ErrConfigNotFound", func(t *testing.T) {
		dir := t.TempDir()
		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		_, err = LoadConfig("nonexistent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}
