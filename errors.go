package brandkit

import "errors"

// Sentinel errors for library operations.
var (
	// Export pipeline errors.
	ErrNilKit       = errors.New("brand kit cannot be nil")
	ErrKitInvalid   = errors.New("brand kit failed validation")
	ErrUnknownSlot  = errors.New("pending asset references unknown slot")
	ErrArchiveWrite = errors.New("archive write failed")

	// Staging errors.
	ErrAssetRejected = errors.New("asset does not match slot media kind")
	ErrEmptyAsset    = errors.New("asset content cannot be empty")
	ErrUnknownKind   = errors.New("unknown slot kind")

	// Style guide preview errors.
	ErrStyleRead = errors.New("failed to read style file")

	// Browser errors (style guide PDF rendering).
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
