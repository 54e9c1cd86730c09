package main

import (
	"errors"
	"os"

	cvkit "github.com/alisajid/go-cvkit"
	"github.com/alisajid/go-cvkit/internal/assets"
	"github.com/alisajid/go-cvkit/internal/bibutil"
	"github.com/alisajid/go-cvkit/internal/config"
	"github.com/alisajid/go-cvkit/internal/metadata"
)

// Exit codes for cvkit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitLatex   = 4 // latexmk missing or build failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// LaTeX build errors (exit 4)
	if errors.Is(err, cvkit.ErrLatexmkNotFound) ||
		errors.Is(err, cvkit.ErrLatexmkFailed) {
		return ExitLatex
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, metadata.ErrMetadataNotFound) ||
		errors.Is(err, metadata.ErrMetadataRead) ||
		errors.Is(err, bibutil.ErrBibNotFound) ||
		errors.Is(err, bibutil.ErrBibWrite) ||
		errors.Is(err, cvkit.ErrMainFileMissing) ||
		errors.Is(err, ErrDirectoryNotFound) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrReadBody) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, cvkit.ErrEmptySectionName) ||
		errors.Is(err, cvkit.ErrSectionNotFound) ||
		errors.Is(err, cvkit.ErrInvalidMaxItems) ||
		errors.Is(err, cvkit.ErrMissingOrganization) ||
		errors.Is(err, cvkit.ErrMissingLocation) ||
		errors.Is(err, cvkit.ErrEmptyBibSource) ||
		errors.Is(err, cvkit.ErrEmptyOutputDir) ||
		errors.Is(err, cvkit.ErrEmptyPrefix) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrBodyNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrUnknownTarget) ||
		errors.Is(err, ErrNoTargets) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
