package cvkit

import (
	"fmt"
	"sort"
	"strings"
)

// Default workspace layout.
const (
	DefaultMetadataFile = "unit_metadata.yaml"
	DefaultUnitsDir     = "units"
	DefaultSectionsDir  = "sections"
)

// AssembleInput describes one section assembly request.
type AssembleInput struct {
	// Section is the metadata section to assemble (e.g. "education").
	Section string

	// Tags selects units carrying any of these tags. An empty slice
	// selects every unit in the section.
	Tags []string

	// ExcludeTags drops units carrying any of these tags, even when
	// they also match Tags.
	ExcludeTags []string

	// MaxItems caps the number of units after priority sorting.
	// Zero means no limit.
	MaxItems int

	// IncludeHeader prepends the LaTeX section header.
	IncludeHeader bool
}

// Validate checks that the assembly request is well formed.
func (in AssembleInput) Validate() error {
	if strings.TrimSpace(in.Section) == "" {
		return ErrEmptySectionName
	}
	if in.MaxItems < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxItems, in.MaxItems)
	}
	return nil
}

// UnitRef identifies a unit that contributed to an assembled section.
type UnitRef struct {
	Name     string
	Priority int
	Tags     []string
}

// AssembleResult holds the output of one section assembly.
type AssembleResult struct {
	Section string

	// Content is the concatenated LaTeX body, units separated by
	// blank lines, with the section header prepended when requested.
	Content string

	// Units lists the contributing units in output order.
	Units []UnitRef

	// Missing lists selected units whose .tex file did not exist.
	// Missing units are skipped, not fatal.
	Missing []string
}

// AuthorInfo carries the personal fields rendered into the cover
// letter preamble. Empty fields are omitted from the output.
type AuthorInfo struct {
	FirstName string
	LastName  string
	Street    string
	City      string
	Country   string
	Phone     string
	Emails    []string
	Homepage  string
	Linkedin  string
	Github    string
	Orcid     string
}

// Cover letter defaults, applied by LetterInput.Validate.
const (
	DefaultRecipient = "Hiring Manager"
	DefaultOpening   = "Dear Hiring Manager,"
	DefaultClosing   = "Sincerely,"
	DefaultDate      = `\today`
)

// LetterInput describes one cover letter rendering request.
type LetterInput struct {
	// Template names the letter template to render ("classic" by
	// default).
	Template string

	Recipient    string
	Organization string
	Location     string

	// Date is the LaTeX date value. Defaults to \today.
	Date string

	Opening string
	Closing string

	// Body is the LaTeX letter body. When empty the embedded default
	// body is used.
	Body string

	Author AuthorInfo
}

// Validate checks required fields and fills defaults in place.
func (in *LetterInput) Validate() error {
	if strings.TrimSpace(in.Organization) == "" {
		return ErrMissingOrganization
	}
	if strings.TrimSpace(in.Location) == "" {
		return ErrMissingLocation
	}
	if in.Recipient == "" {
		in.Recipient = DefaultRecipient
	}
	if in.Opening == "" {
		in.Opening = DefaultOpening
	}
	if in.Closing == "" {
		in.Closing = DefaultClosing
	}
	if in.Date == "" {
		in.Date = DefaultDate
	}
	return nil
}

// BibInput describes one bibliography split request.
type BibInput struct {
	// SourcePath is the input .bib file.
	SourcePath string

	// OutputDir receives one <name>.bib per tag, plus all.bib.
	OutputDir string

	// Prefix selects which keywords name subsets (e.g. "pub:").
	Prefix string

	// ValidPrefixes lists the keyword prefixes kept after remapping.
	// Keywords without a valid prefix are dropped.
	ValidPrefixes []string

	// KeywordMapPath points at the "old -> new" remapping file.
	// A missing file means no remapping.
	KeywordMapPath string
}

// Validate checks that the split request is well formed.
func (in BibInput) Validate() error {
	if strings.TrimSpace(in.SourcePath) == "" {
		return ErrEmptyBibSource
	}
	if strings.TrimSpace(in.OutputDir) == "" {
		return ErrEmptyOutputDir
	}
	if strings.TrimSpace(in.Prefix) == "" {
		return ErrEmptyPrefix
	}
	return nil
}

// BibResult summarizes one bibliography split.
type BibResult struct {
	// Total is the number of entries read from the source file.
	Total int

	// Subsets maps subset name to entry count, one per written file.
	Subsets map[string]int

	// AllWritten reports whether all.bib was created. It is false
	// when the file already existed.
	AllWritten bool
}

// SubsetNames returns the subset names in sorted order.
func (r *BibResult) SubsetNames() []string {
	names := make([]string, 0, len(r.Subsets))
	for name := range r.Subsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
