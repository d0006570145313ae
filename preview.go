package brandkit

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nclosa/go-brandkit/internal/assets"
	"github.com/nclosa/go-brandkit/internal/fileutil"
	"github.com/nclosa/go-brandkit/internal/render"
)

// defaultTimeout bounds PDF rendering when no timeout is configured.
const defaultTimeout = 30 * time.Second

// BuildStyleGuide renders a kit as a deterministic Markdown style
// guide: brand header, palette table, typography, logo and gallery
// listings, and a fenced css block with the generated custom
// properties. Two calls with the same kit produce identical output.
func BuildStyleGuide(kit *BrandKit) string {
	if kit == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s Brand Style Guide\n\n", kit.Brand.Name)
	if kit.Brand.Description != "" {
		b.WriteString(kit.Brand.Description + "\n\n")
	}
	fmt.Fprintf(&b, "Website: <%s>\n\n", kit.Brand.Website)
	fmt.Fprintf(&b, "Last updated: %s\n", kit.Brand.UpdatedAt)

	if len(kit.Colors) > 0 {
		b.WriteString("\n## Colors\n\n")
		b.WriteString("| Name | Roles | Hex | RGB | CMYK |\n")
		b.WriteString("|------|-------|-----|-----|------|\n")
		for _, c := range kit.Colors {
			fmt.Fprintf(&b, "| %s | %s | `%s` | `%s` | `%s` |\n",
				c.Name, strings.Join(c.Role, ", "), c.Values.Hex, c.Values.RGB, c.Values.CMYK)
		}
	}

	if len(kit.Typography.Fonts) > 0 {
		b.WriteString("\n## Typography\n\n### Fonts\n\n")
		for _, f := range kit.Typography.Fonts {
			fmt.Fprintf(&b, "- **%s** (%s, %s), weights %s\n",
				f.Name, f.Source.Family, f.Source.Type, joinWeights(f.Source.Weights))
		}
	}

	if len(kit.Typography.Examples) > 0 {
		b.WriteString("\n### Examples\n\n")
		for _, ex := range kit.Typography.Examples {
			fmt.Fprintf(&b, "- **%s** (%s, %dpx, weight %d): %s\n",
				ex.Label, ex.Font, ex.SizePx, ex.Weight, ex.Text)
		}
	}

	if len(kit.Logos) > 0 {
		b.WriteString("\n## Logos\n")
		for _, logo := range kit.Logos {
			fmt.Fprintf(&b, "\n### %s\n\n", logo.Name)
			if logo.Description != "" {
				b.WriteString(logo.Description + "\n\n")
			}
			for _, v := range logo.Variants {
				fmt.Fprintf(&b, "- %s: `%s`\n", v.Label, v.Src)
			}
		}
	}

	if len(kit.Gallery) > 0 {
		b.WriteString("\n## Gallery\n\n")
		for _, item := range kit.Gallery {
			caption := item.Caption
			if caption == "" {
				caption = "Untitled"
			}
			fmt.Fprintf(&b, "- %s: `%s`\n", caption, item.Src)
		}
	}

	b.WriteString("\n## CSS Variables\n\n```css\n")
	b.WriteString(BuildPaletteCSS(kit))
	if css := BuildFontVariablesCSS(kit); css != "" {
		b.WriteString("\n" + css)
	}
	b.WriteString("```\n")

	return b.String()
}

// joinWeights formats a weight list as "100/400/700".
func joinWeights(weights []int) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, "/")
}

// Previewer turns a kit into a standalone HTML style guide page, and
// optionally into a PDF through headless Chrome. Create with
// NewPreviewer, use the render methods, and Close when done.
type Previewer struct {
	cfg      previewConfig
	markdown *render.MarkdownRenderer
	css      string
	template string
	pdf      pdfRenderer
}

// previewConfig holds internal configuration for Previewer.
type previewConfig struct {
	style     string
	assetPath string
	timeout   time.Duration
	page      *PageSettings
}

// PreviewOption configures a Previewer.
type PreviewOption func(*Previewer)

// WithStyle selects the preview stylesheet: a built-in style name or a
// path to a CSS file. The default is the embedded "guide" style.
func WithStyle(nameOrPath string) PreviewOption {
	return func(p *Previewer) {
		p.cfg.style = nameOrPath
	}
}

// WithAssetPath overrides the asset directory for styles and templates,
// falling back to the embedded assets for names not present there.
func WithAssetPath(path string) PreviewOption {
	return func(p *Previewer) {
		p.cfg.assetPath = path
	}
}

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) PreviewOption {
	if d <= 0 {
		panic("brandkit: WithTimeout duration must be positive")
	}
	return func(p *Previewer) {
		p.cfg.timeout = d
	}
}

// WithPageSettings sets the PDF page settings (nil = A4 portrait defaults).
func WithPageSettings(settings *PageSettings) PreviewOption {
	return func(p *Previewer) {
		p.cfg.page = settings
	}
}

// NewPreviewer creates a Previewer with default configuration.
// Returns an error if the configured style, asset path, or page
// settings are invalid.
func NewPreviewer(opts ...PreviewOption) (*Previewer, error) {
	p := &Previewer{
		cfg:      previewConfig{timeout: defaultTimeout},
		markdown: render.NewMarkdownRenderer(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if err := p.cfg.page.Validate(); err != nil {
		return nil, err
	}

	loader, err := assets.NewAssetResolver(p.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("resolving asset path: %w", err)
	}

	if err := p.resolveStyle(loader); err != nil {
		return nil, err
	}

	p.template, err = loader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}

	return p, nil
}

// resolveStyle loads the stylesheet content from a built-in name or a
// CSS file path.
func (p *Previewer) resolveStyle(loader *assets.AssetResolver) error {
	style := p.cfg.style
	if style == "" {
		style = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(style) {
		content, err := os.ReadFile(style) // #nosec G304 -- style path is user-provided
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStyleRead, err)
		}
		p.css = string(content)
		return nil
	}

	content, err := loader.LoadStyle(style)
	if err != nil {
		return err
	}
	p.css = content
	return nil
}

// StyleGuideHTML renders the kit's style guide as a standalone HTML
// page: the Markdown guide converted by Goldmark, wrapped in the page
// template with the preview stylesheet plus the kit's generated CSS
// custom properties.
func (p *Previewer) StyleGuideHTML(ctx context.Context, kit *BrandKit) (string, error) {
	if kit == nil {
		return "", ErrNilKit
	}

	fragment, err := p.markdown.Fragment(ctx, BuildStyleGuide(kit))
	if err != nil {
		return "", fmt.Errorf("rendering style guide: %w", err)
	}

	css := p.css
	if palette := BuildPaletteCSS(kit); palette != "" {
		css += "\n" + palette
	}
	if fonts := BuildFontVariablesCSS(kit); fonts != "" {
		css += "\n" + fonts
	}

	return render.RenderPage(ctx, p.template, render.Page{
		Title: kit.Brand.Name + " Brand Style Guide",
		CSS:   css,
		Body:  fragment,
	})
}

// StyleGuidePDF renders the kit's style guide to PDF bytes using
// headless Chrome. The browser launches lazily on first use; Close
// releases it.
func (p *Previewer) StyleGuidePDF(ctx context.Context, kit *BrandKit) ([]byte, error) {
	htmlContent, err := p.StyleGuideHTML(ctx, kit)
	if err != nil {
		return nil, err
	}

	if p.pdf == nil {
		p.pdf = newRodRenderer(p.cfg.timeout)
	}

	return p.pdf.RenderHTML(ctx, htmlContent, p.cfg.page)
}

// Close releases resources (headless Chrome browser).
func (p *Previewer) Close() error {
	if p.pdf != nil {
		return p.pdf.Close()
	}
	return nil
}
