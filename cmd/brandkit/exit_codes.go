package main

import (
	"errors"
	"os"

	brandkit "github.com/nclosa/go-brandkit"
	"github.com/nclosa/go-brandkit/internal/assets"
	"github.com/nclosa/go-brandkit/internal/config"
)

// Exit codes for brandkit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful command
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, brandkit.ErrBrowserConnect) ||
		errors.Is(err, brandkit.ErrPageCreate) ||
		errors.Is(err, brandkit.ErrPageLoad) ||
		errors.Is(err, brandkit.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadKit) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrFontFileMissing) ||
		errors.Is(err, brandkit.ErrStyleRead) ||
		errors.Is(err, brandkit.ErrArchiveWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, brandkit.ErrKitInvalid) ||
		errors.Is(err, brandkit.ErrNilKit) ||
		errors.Is(err, brandkit.ErrUnknownSlot) ||
		errors.Is(err, brandkit.ErrUnknownKind) ||
		errors.Is(err, brandkit.ErrAssetRejected) ||
		errors.Is(err, brandkit.ErrEmptyAsset) ||
		errors.Is(err, brandkit.ErrInvalidPageSize) ||
		errors.Is(err, brandkit.ErrInvalidOrientation) ||
		errors.Is(err, brandkit.ErrInvalidMargin) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, ErrBadFlags) ||
		errors.Is(err, ErrBadFontMapping) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
