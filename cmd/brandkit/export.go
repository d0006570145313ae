package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	brandkit "github.com/nclosa/go-brandkit"
	"github.com/nclosa/go-brandkit/internal/config"
	"github.com/nclosa/go-brandkit/internal/fileutil"
	"github.com/nclosa/go-brandkit/internal/hints"
)

// runExport packages a kit document and its local assets into a ZIP archive.
func runExport(args []string, deps *Dependencies) error {
	flags, positional, err := parseExportFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printExportUsage(deps.Stderr)
		return ErrNoInput
	}
	kitPath := positional[0]

	cfg, err := loadCommandConfig(&flags.common)
	if err != nil {
		return err
	}
	logger := newLogger(&flags.common)
	defer func() { _ = logger.Sync() }()

	kit, err := loadKit(kitPath)
	if err != nil {
		return err
	}

	// Resolve "auto" or "auto:FORMAT" date directives before validation.
	resolved, err := brandkit.ResolveDate(kit.Brand.UpdatedAt, deps.Now())
	if err != nil {
		return fmt.Errorf("resolving updatedAt: %w", err)
	}
	kit.Brand.UpdatedAt = resolved

	stage := brandkit.NewStage(brandkit.WithStageLogger(logger))
	if err := stageLocalAssets(stage, kit, filepath.Dir(kitPath), logger); err != nil {
		return err
	}
	if err := stageFonts(stage, kit, flags.fontFiles, cfg.Fonts); err != nil {
		return err
	}

	if flags.dryRun {
		layout, err := brandkit.BuildLayout(kit, stage.Snapshot())
		if err != nil {
			return exportError(err)
		}
		fmt.Fprintf(deps.Stdout, "%s\n", layout.SuggestedFilename())
		for _, entry := range layout.Entries {
			fmt.Fprintf(deps.Stdout, "  %-40s %d bytes\n", entry.Name, len(entry.Data))
		}
		return nil
	}

	level := resolveCompressionLevel(flags.compression, cfg)

	opts := []brandkit.ExporterOption{
		brandkit.WithLogger(logger),
		brandkit.WithCompressionLevel(level),
	}

	// A .zip output flag names the archive file itself; anything else is
	// a directory the suggested filename lands in.
	explicitFile := strings.HasSuffix(flags.output, brandkit.ArchiveFileExt)
	deliveryDir := ""
	if !explicitFile {
		deliveryDir = flags.output
		if deliveryDir == "" {
			deliveryDir = cfg.Output.DefaultDir
		}
		if deliveryDir == "" {
			deliveryDir = "."
		}
		opts = append(opts, brandkit.WithDelivery(&brandkit.FileDelivery{Dir: deliveryDir}))
	}

	exporter := brandkit.NewExporter(opts...)
	result, err := exporter.Export(context.Background(), kit, stage.Snapshot())
	if err != nil {
		return exportError(err)
	}

	outPath := filepath.Join(deliveryDir, result.Filename)
	if explicitFile {
		outPath = flags.output
		if err := fileutil.WriteFileAtomic(outPath, result.Archive, 0o644); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Exported %s (%d entries, %d bytes)\n",
			outPath, len(result.Layout.Entries), len(result.Archive))
	}
	return nil
}

// stageLocalAssets stages every logo variant and gallery source that
// resolves to a local file relative to the document directory. URLs and
// sources without a matching file keep their src verbatim.
func stageLocalAssets(stage *brandkit.Stage, kit *brandkit.BrandKit, baseDir string, logger *zap.Logger) error {
	put := func(slot brandkit.Slot, src string) error {
		if src == "" || fileutil.IsURL(src) {
			return nil
		}
		path := src
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, src)
		}
		if !fileutil.FileExists(path) {
			logger.Warn("asset source not found, keeping src verbatim",
				zap.String("slot", slot.String()),
				zap.String("src", src))
			return nil
		}
		data, err := os.ReadFile(path) // #nosec G304 -- asset path comes from the kit document
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrReadKit, src, err)
		}
		if _, err := stage.Put(slot, filepath.Base(src), data); err != nil {
			return fmt.Errorf("%w%s", err, hints.ForAssetRejected("image"))
		}
		return nil
	}

	for i, logo := range kit.Logos {
		for j, v := range logo.Variants {
			slot := brandkit.Slot{Kind: brandkit.SlotLogoVariant, Index: i, Sub: j}
			if err := put(slot, v.Src); err != nil {
				return err
			}
		}
	}
	for i, item := range kit.Gallery {
		slot := brandkit.Slot{Kind: brandkit.SlotGallery, Index: i}
		if err := put(slot, item.Src); err != nil {
			return err
		}
	}
	return nil
}

// stageFonts stages font binaries from --font-file flags and config
// mappings. Flag mappings are applied after config ones, so a flag wins
// for the same name only by adding a second file.
func stageFonts(stage *brandkit.Stage, kit *brandkit.BrandKit, flagMappings []string, cfgMappings []config.FontMapping) error {
	mappings := make([]config.FontMapping, 0, len(cfgMappings)+len(flagMappings))
	mappings = append(mappings, cfgMappings...)

	for _, raw := range flagMappings {
		name, path, ok := strings.Cut(raw, "=")
		if !ok || name == "" || path == "" {
			return fmt.Errorf("%w: %q", ErrBadFontMapping, raw)
		}
		mappings = append(mappings, config.FontMapping{Name: name, Path: path})
	}

	for _, m := range mappings {
		index := fontIndexByName(kit, m.Name)
		if index < 0 {
			return fmt.Errorf("%w: no font named %q in the document", ErrBadFontMapping, m.Name)
		}
		data, err := os.ReadFile(m.Path) // #nosec G304 -- font path is user-provided
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFontFileMissing, m.Path, err)
		}
		slot := brandkit.Slot{Kind: brandkit.SlotFont, Index: index}
		if _, err := stage.Put(slot, filepath.Base(m.Path), data); err != nil {
			return fmt.Errorf("%w%s", err, hints.ForAssetRejected("font"))
		}
	}
	return nil
}

// resolveCompressionLevel picks the flate level for the archive. The
// flag uses -1 as its unset default, so an explicit 0 still selects
// store; config falls back next, then the library default.
func resolveCompressionLevel(flagLevel int, cfg *config.Config) int {
	switch {
	case flagLevel >= 0:
		return flagLevel
	case cfg.Export.CompressionLevel != 0:
		return cfg.Export.CompressionLevel
	}
	return brandkit.DefaultCompressionLevel
}

// fontIndexByName finds the typography font with the given name, or -1.
func fontIndexByName(kit *brandkit.BrandKit, name string) int {
	for i, f := range kit.Typography.Fonts {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// exportError decorates pipeline failures with actionable hints.
func exportError(err error) error {
	if errors.Is(err, brandkit.ErrKitInvalid) {
		return fmt.Errorf("%w%s", err, hints.ForKitInvalid())
	}
	return err
}
