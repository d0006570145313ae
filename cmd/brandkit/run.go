package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	brandkit "github.com/nclosa/go-brandkit"
	"github.com/nclosa/go-brandkit/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput         = errors.New("no kit document specified")
	ErrReadKit         = errors.New("failed to read kit document")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrBadFontMapping  = errors.New("invalid font mapping, use NAME=PATH")
	ErrFontFileMissing = errors.New("font file not found")
)

// run dispatches to the subcommand named in args[1].
func run(args []string, deps *Dependencies) error {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: missing command", ErrUnknownCommand)
	}

	switch args[1] {
	case "validate":
		return runValidate(args[2:], deps)
	case "export":
		return runExport(args[2:], deps)
	case "preview":
		return runPreview(args[2:], deps)
	case "colors":
		return runColors(args[2:], deps)
	case "version":
		fmt.Fprintf(deps.Stdout, "brandkit %s\n", Version)
		return nil
	case "help", "-h", "--help":
		runHelp(args[2:], deps)
		return nil
	default:
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[1])
	}
}

// loadKit reads and decodes the kit document at path. The format is
// picked from the file extension.
func loadKit(path string) (*brandkit.BrandKit, error) {
	if path == "" {
		return nil, ErrNoInput
	}

	data, err := os.ReadFile(path) // #nosec G304 -- kit path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadKit, err)
	}

	kit, err := brandkit.DecodeDocument(data, brandkit.DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadKit, err)
	}
	return kit, nil
}

// loadCommandConfig resolves the config for a command: the --config
// value when given, defaults otherwise.
func loadCommandConfig(common *commonFlags) (*config.Config, error) {
	if common.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(common.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the command logger: development logging with
// --verbose, silence otherwise.
func newLogger(common *commonFlags) *zap.Logger {
	if !common.verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// resolveOutputPath places name under the explicit output flag, the
// configured default directory, or the current directory, in that order.
func resolveOutputPath(flagValue, name string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, name)
	}
	return name
}
