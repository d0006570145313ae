// Package render converts style guide Markdown into standalone HTML pages.
//
// The package handles two stages:
//   - Markdown to HTML fragment conversion via Goldmark
//   - page assembly from a template with title and stylesheet
//
// PDF generation is handled separately by the root brandkit package using
// headless Chrome (go-rod). This separation keeps rendering focused on
// document structure and content, while PDF rendering handles page layout,
// margins, and browser-based rendering concerns.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Sentinel errors for rendering stages.
var (
	ErrMarkdownRender = errors.New("markdown rendering failed")
	ErrPageRender     = errors.New("page rendering failed")
)

// MarkdownRenderer converts Markdown to HTML fragments using goldmark (pure Go).
type MarkdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer creates a MarkdownRenderer with GFM extensions and
// syntax highlighting.
func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes for smaller HTML and external stylesheet control
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used. Style guide content
			// comes from user documents; raw HTML stays escaped.
		),
	)
	return &MarkdownRenderer{md: md}
}

// Fragment converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (r *MarkdownRenderer) Fragment(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// Page holds the pieces assembled into a standalone HTML document.
type Page struct {
	Title string // Document title, HTML-escaped on render
	CSS   string // Stylesheet content for the <style> block
	Body  string // HTML fragment, inserted as-is
}

// pageData adapts Page for html/template with the correct trust levels.
type pageData struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// RenderPage executes an HTML page template with the given page content.
// The template uses {{.Title}}, {{.CSS}} and {{.Body}} placeholders.
// CSS content is sanitized so it cannot close the surrounding <style> block.
func RenderPage(ctx context.Context, tmplContent string, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("%w: parsing template: %v", ErrPageRender, err)
	}

	data := pageData{
		Title: page.Title,
		CSS:   template.CSS(sanitizeCSS(page.CSS)), // #nosec G203 -- closing sequences escaped by sanitizeCSS
		Body:  template.HTML(page.Body),            // #nosec G203 -- fragment produced by Goldmark with escaping on
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents CSS injection by escaping </style> and similar closing sequences.
func sanitizeCSS(css string) string {
	// Escape </ sequences to prevent closing the style tag prematurely
	return strings.ReplaceAll(css, "</", `<\/`)
}
