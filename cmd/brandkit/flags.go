package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrBadFlags wraps pflag parse failures so they map to the usage exit code.
var ErrBadFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// addCommonFlags registers the shared flags on a command's flag set.
func addCommonFlags(fs *flag.FlagSet, common *commonFlags) {
	fs.StringVarP(&common.config, "config", "c", "", "Config file name or path")
	fs.BoolVarP(&common.quiet, "quiet", "q", false, "Only show errors")
	fs.BoolVarP(&common.verbose, "verbose", "v", false, "Show detailed progress")
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common      commonFlags
	output      string
	fontFiles   []string
	compression int
	dryRun      bool
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common      commonFlags
	output      string
	pdf         string
	style       string
	assetPath   string
	timeout     string
	pageSize    string
	orientation string
	margin      float64
}

// newFlagSet creates a flag set that reports usage on stderr-like w.
func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// parseValidateFlags parses flags for the validate command.
// Returns the flags, positional args, and any parse error.
func parseValidateFlags(args []string, w io.Writer) (*commonFlags, []string, error) {
	var common commonFlags
	fs := newFlagSet("validate", w)
	addCommonFlags(fs, &common)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadFlags, err)
	}
	return &common, fs.Args(), nil
}

// parseExportFlags parses flags for the export command.
func parseExportFlags(args []string, w io.Writer) (*exportFlags, []string, error) {
	var flags exportFlags
	fs := newFlagSet("export", w)
	addCommonFlags(fs, &flags.common)
	fs.StringVarP(&flags.output, "output", "o", "", "Output archive path")
	fs.StringArrayVar(&flags.fontFiles, "font-file", nil, "Font binary as NAME=PATH (repeatable)")
	fs.IntVar(&flags.compression, "compression", -1, "Archive compression level (0-9, 0 = store; default balanced)")
	fs.BoolVar(&flags.dryRun, "dry-run", false, "Print the archive layout without writing")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadFlags, err)
	}
	return &flags, fs.Args(), nil
}

// parsePreviewFlags parses flags for the preview command.
func parsePreviewFlags(args []string, w io.Writer) (*previewFlags, []string, error) {
	var flags previewFlags
	fs := newFlagSet("preview", w)
	addCommonFlags(fs, &flags.common)
	fs.StringVarP(&flags.output, "output", "o", "", "Output HTML path")
	fs.StringVar(&flags.pdf, "pdf", "", "Also render a PDF to this path")
	fs.StringVarP(&flags.style, "style", "s", "", "Style name or CSS file path")
	fs.StringVar(&flags.assetPath, "asset-path", "", "Override asset directory")
	fs.StringVar(&flags.timeout, "timeout", "", "PDF rendering timeout (e.g. 60s)")
	fs.StringVarP(&flags.pageSize, "page-size", "p", "", "PDF page size: letter, a4, legal")
	fs.StringVar(&flags.orientation, "orientation", "", "PDF orientation: portrait, landscape")
	fs.Float64Var(&flags.margin, "margin", 0, "PDF margin in inches (0.25-3.0)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadFlags, err)
	}
	return &flags, fs.Args(), nil
}

// parseColorsFlags parses flags for the colors command.
func parseColorsFlags(args []string, w io.Writer) (*commonFlags, []string, error) {
	var common commonFlags
	fs := newFlagSet("colors", w)
	addCommonFlags(fs, &common)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadFlags, err)
	}
	return &common, fs.Args(), nil
}
