package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	brandkit "github.com/nclosa/go-brandkit"
)

// runColors prints a kit's palette: a terminal swatch per color with its
// name, roles, and the hex, RGB, and CMYK values.
func runColors(args []string, deps *Dependencies) error {
	common, positional, err := parseColorsFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printColorsUsage(deps.Stderr)
		return ErrNoInput
	}

	kit, err := loadKit(positional[0])
	if err != nil {
		return err
	}

	if !common.quiet {
		fmt.Fprintf(deps.Stdout, "%s palette (%d colors)\n\n", kit.Brand.Name, len(kit.Colors))
	}

	nameStyle := lipgloss.NewStyle().Bold(true)
	roleStyle := lipgloss.NewStyle().Faint(true)

	for _, c := range kit.Colors {
		hex := c.Values.Hex
		rgb := c.Values.RGB
		cmyk := c.Values.CMYK

		// Derive the missing representations so partial documents still
		// print complete rows.
		if rgb == "" && hex != "" {
			rgb = brandkit.HexToRGB(hex)
		}
		if cmyk == "" && hex != "" {
			cmyk = brandkit.HexToCMYK(hex)
		}

		swatch := "      "
		if hex != "" {
			swatch = lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
		}

		fmt.Fprintf(deps.Stdout, "%s  %s %s\n", swatch,
			nameStyle.Render(c.Name),
			roleStyle.Render("("+strings.Join(c.Role, ", ")+")"))
		fmt.Fprintf(deps.Stdout, "        hex  %s\n", hex)
		fmt.Fprintf(deps.Stdout, "        rgb  %s\n", rgb)
		fmt.Fprintf(deps.Stdout, "        cmyk %s\n", cmyk)
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
