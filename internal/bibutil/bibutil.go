// Package bibutil wraps BibTeX parsing and writing to isolate the external
// dependency, and implements the keyword remapping and tag grouping used to
// split a master bibliography into subsets.
package bibutil

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nickng/bibtex"
)

// KeywordsField is the BibTeX field holding comma-separated keywords.
const KeywordsField = "keywords"

// Sentinel errors for bibliography operations.
var (
	ErrBibNotFound = errors.New("bibliography file not found")
	ErrBibParse    = errors.New("failed to parse bibliography")
	ErrBibWrite    = errors.New("failed to write bibliography")
)

// ParseFile reads and parses a .bib file.
func ParseFile(path string) ([]*bibtex.BibEntry, error) {
	f, err := os.Open(path) // #nosec G304 -- bibliography path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBibNotFound, path)
		}
		return nil, fmt.Errorf("opening bibliography: %w", err)
	}
	defer func() { _ = f.Close() }()

	bib, err := bibtex.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBibParse, err)
	}
	return bib.Entries, nil
}

// WriteFile writes entries as a .bib file.
func WriteFile(path string, entries []*bibtex.BibEntry) error {
	bib := bibtex.NewBibTex()
	for _, entry := range entries {
		bib.AddEntry(entry)
	}
	if err := os.WriteFile(path, []byte(bib.PrettyString()), 0o644); err != nil { // #nosec G306 -- bibliographies are meant to be readable
		return fmt.Errorf("%w: %v", ErrBibWrite, err)
	}
	return nil
}

// Keywords returns the entry's keywords, split on commas and trimmed.
// An absent or empty keywords field yields nil.
func Keywords(entry *bibtex.BibEntry) []string {
	field, ok := entry.Fields[KeywordsField]
	if !ok {
		return nil
	}
	var keywords []string
	for _, kw := range strings.Split(field.String(), ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// SetKeywords replaces the entry's keywords field, removing it when the
// list is empty.
func SetKeywords(entry *bibtex.BibEntry, keywords []string) {
	if len(keywords) == 0 {
		delete(entry.Fields, KeywordsField)
		return
	}
	entry.Fields[KeywordsField] = bibtex.NewBibConst(strings.Join(keywords, ", "))
}

// Tags returns the subset names the entry belongs to for the given tag
// prefix: every keyword starting with prefix, with the prefix stripped.
// Empty names are dropped.
func Tags(entry *bibtex.BibEntry, prefix string) []string {
	var tags []string
	for _, kw := range Keywords(entry) {
		if strings.HasPrefix(kw, prefix) {
			if name := strings.TrimSpace(kw[len(prefix):]); name != "" {
				tags = append(tags, name)
			}
		}
	}
	return tags
}
