package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	brandkit "github.com/nclosa/go-brandkit"
)

// runValidate checks a kit document against the schema and reports
// every field error with its JSON path.
func runValidate(args []string, deps *Dependencies) error {
	common, positional, err := parseValidateFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printValidateUsage(deps.Stderr)
		return ErrNoInput
	}

	kit, err := loadKit(positional[0])
	if err != nil {
		return err
	}

	if err := kit.Validate(); err != nil {
		var verr brandkit.ValidationError
		if errors.As(err, &verr) {
			// Styles degrade to plain text when stderr is not a terminal.
			pathStyle := lipgloss.NewStyle().Bold(true)
			fmt.Fprintf(deps.Stderr, "%s: %d problem(s)\n", positional[0], len(verr))
			for _, fe := range verr {
				fmt.Fprintf(deps.Stderr, "  %s: %s\n", pathStyle.Render(fe.Path), fe.Message)
			}
			return fmt.Errorf("%w: %d field error(s)", brandkit.ErrKitInvalid, len(verr))
		}
		return err
	}

	if !common.quiet {
		fmt.Fprintf(deps.Stdout, "%s: valid (%s)\n", positional[0], kit.Brand.Name)
	}
	return nil
}
