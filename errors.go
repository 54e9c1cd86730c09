package cvkit

import "errors"

// Sentinel errors for library operations.
var (
	// Section assembly errors.
	ErrEmptySectionName = errors.New("section name cannot be empty")
	ErrSectionNotFound  = errors.New("section not found in metadata")
	ErrEmptySection     = errors.New("no content generated for section")
	ErrInvalidMaxItems  = errors.New("max items cannot be negative")
	ErrUnitRead         = errors.New("failed to read unit file")

	// Cover letter errors.
	ErrMissingOrganization = errors.New("organization cannot be empty")
	ErrMissingLocation     = errors.New("location cannot be empty")
	ErrLetterRender        = errors.New("cover letter template rendering failed")

	// Bibliography errors.
	ErrEmptyBibSource = errors.New("bibliography source path cannot be empty")
	ErrEmptyOutputDir = errors.New("output directory cannot be empty")
	ErrEmptyPrefix    = errors.New("tag prefix cannot be empty")

	// LaTeX build errors.
	ErrLatexmkNotFound = errors.New("latexmk not found in PATH")
	ErrLatexmkFailed   = errors.New("latexmk build failed")
	ErrMainFileMissing = errors.New("main document file not found")
)
