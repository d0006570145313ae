package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  validate   Check a brand kit document against the schema")
	fmt.Fprintln(w, "  export     Package a brand kit into a ZIP archive")
	fmt.Fprintln(w, "  preview    Render a brand kit as an HTML style guide")
	fmt.Fprintln(w, "  colors     Show a kit's palette with terminal swatches")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'brandkit help <command>' for details on a specific command.")
}

// printValidateUsage prints usage for the validate command.
func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit validate <kit> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check a brand kit document against the schema. Every field error")
	fmt.Fprintln(w, "is reported with its JSON path, not just the first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  kit    Brand kit document (.json, .yaml, or .yml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit export <kit> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Package a brand kit into a ZIP archive: the rewritten data document")
	fmt.Fprintln(w, "plus local logo, gallery, and font files under assets/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  kit    Brand kit document (.json, .yaml, or .yml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output archive path or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --font-file <s>       Font binary as NAME=PATH (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Archive:")
	fmt.Fprintln(w, "      --compression <n>     Compression level (0-9, 0 = store)")
	fmt.Fprintln(w, "      --dry-run             Print the archive layout without writing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit preview <kit> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a brand kit as a standalone HTML style guide, optionally")
	fmt.Fprintln(w, "converted to PDF through headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  kit    Brand kit document (.json, .yaml, or .yml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML path")
	fmt.Fprintln(w, "      --pdf <path>          Also render a PDF to this path")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -s, --style <s>           Style name or CSS file path")
	fmt.Fprintln(w, "      --asset-path <path>   Override asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "      --timeout <d>         PDF rendering timeout (e.g. 60s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// printColorsUsage prints usage for the colors command.
func printColorsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit colors <kit> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show a kit's palette with terminal swatches and the hex, RGB,")
	fmt.Fprintln(w, "and CMYK value for each color.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  kit    Brand kit document (.json, .yaml, or .yml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "validate":
		printValidateUsage(deps.Stdout)
	case "export":
		printExportUsage(deps.Stdout)
	case "preview":
		printPreviewUsage(deps.Stdout)
	case "colors":
		printColorsUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: brandkit version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: brandkit help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
