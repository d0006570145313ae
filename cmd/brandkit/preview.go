package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	brandkit "github.com/nclosa/go-brandkit"
	"github.com/nclosa/go-brandkit/internal/assets"
	"github.com/nclosa/go-brandkit/internal/config"
	"github.com/nclosa/go-brandkit/internal/fileutil"
	"github.com/nclosa/go-brandkit/internal/hints"
	"github.com/nclosa/go-brandkit/internal/nameutil"
)

// runPreview renders a kit as a standalone HTML style guide, optionally
// also as a PDF through headless Chrome.
func runPreview(args []string, deps *Dependencies) error {
	flags, positional, err := parsePreviewFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printPreviewUsage(deps.Stderr)
		return ErrNoInput
	}

	cfg, err := loadCommandConfig(&flags.common)
	if err != nil {
		return err
	}

	kit, err := loadKit(positional[0])
	if err != nil {
		return err
	}

	opts, err := previewOptions(flags, cfg)
	if err != nil {
		return err
	}

	previewer, err := brandkit.NewPreviewer(opts...)
	if err != nil {
		return previewError(err)
	}
	defer func() { _ = previewer.Close() }()

	ctx := context.Background()
	html, err := previewer.StyleGuideHTML(ctx, kit)
	if err != nil {
		return previewError(err)
	}

	htmlName := nameutil.Slugify(kit.Brand.Name) + "-style-guide.html"
	htmlPath := resolveOutputPath(flags.output, htmlName, cfg)
	if err := fileutil.WriteFileAtomic(htmlPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", htmlPath)
	}

	if flags.pdf != "" {
		pdf, err := previewer.StyleGuidePDF(ctx, kit)
		if err != nil {
			return previewError(err)
		}
		if err := fileutil.WriteFileAtomic(flags.pdf, pdf, 0o644); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
		if !flags.common.quiet {
			fmt.Fprintf(deps.Stdout, "Wrote %s\n", flags.pdf)
		}
	}

	return nil
}

// previewOptions merges config and flags into Previewer options.
// Flags win over config values.
func previewOptions(flags *previewFlags, cfg *config.Config) ([]brandkit.PreviewOption, error) {
	var opts []brandkit.PreviewOption

	style := flags.style
	if style == "" {
		style = cfg.Preview.Style
	}
	if style != "" {
		opts = append(opts, brandkit.WithStyle(style))
	}

	assetPath := flags.assetPath
	if assetPath == "" {
		assetPath = cfg.Assets.BasePath
	}
	if assetPath != "" {
		opts = append(opts, brandkit.WithAssetPath(assetPath))
	}

	timeout := flags.timeout
	if timeout == "" {
		// Config timeouts are syntax-checked by config.Validate.
		timeout = cfg.Preview.Timeout
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: --timeout %q", ErrBadFlags, timeout)
		}
		opts = append(opts, brandkit.WithTimeout(d))
	}

	page := pageSettings(flags, cfg)
	if page != nil {
		opts = append(opts, brandkit.WithPageSettings(page))
	}

	return opts, nil
}

// pageSettings builds PDF page settings from flags and config, or nil
// when everything is left at the library defaults.
func pageSettings(flags *previewFlags, cfg *config.Config) *brandkit.PageSettings {
	size := flags.pageSize
	if size == "" {
		size = cfg.Preview.PageSize
	}
	orientation := flags.orientation
	if orientation == "" {
		orientation = cfg.Preview.Orientation
	}
	margin := flags.margin
	if margin == 0 {
		margin = cfg.Preview.Margin
	}

	if size == "" && orientation == "" && margin == 0 {
		return nil
	}

	page := brandkit.DefaultPageSettings()
	if size != "" {
		page.Size = strings.ToLower(size)
	}
	if orientation != "" {
		page.Orientation = strings.ToLower(orientation)
	}
	if margin != 0 {
		page.Margin = margin
	}
	return page
}

// previewError decorates preview failures with actionable hints.
func previewError(err error) error {
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.AvailableStyles()))
	case errors.Is(err, brandkit.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	default:
		return err
	}
}
