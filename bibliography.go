package cvkit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nickng/bibtex"

	"github.com/alisajid/go-cvkit/internal/bibutil"
)

// allBibName is the catch-all bibliography file written alongside the
// tagged subsets. It is only created when absent, so a hand-edited
// all.bib survives repeated runs.
const allBibName = "all.bib"

// SplitBibliography remaps and filters entry keywords, then writes one
// .bib file per tagged subset plus a catch-all file.
func (s *Service) SplitBibliography(ctx context.Context, input BibInput) (*BibResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := bibutil.ParseFile(input.SourcePath)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	mappings, err := bibutil.LoadKeywordMap(input.KeywordMapPath)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		bibutil.FilterKeywords(entry, mappings, input.ValidPrefixes)
	}

	subsets := make(map[string][]*bibtex.BibEntry)
	for _, entry := range entries {
		for _, tag := range bibutil.Tags(entry, input.Prefix) {
			subsets[tag] = append(subsets[tag], entry)
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err := os.MkdirAll(input.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &BibResult{
		Total:   len(entries),
		Subsets: make(map[string]int, len(subsets)),
	}

	for name, subset := range subsets {
		path := filepath.Join(input.OutputDir, name+".bib")
		if err := bibutil.WriteFile(path, subset); err != nil {
			return nil, err
		}
		result.Subsets[name] = len(subset)
	}

	allPath := filepath.Join(input.OutputDir, allBibName)
	if _, err := os.Stat(allPath); os.IsNotExist(err) {
		if err := bibutil.WriteFile(allPath, entries); err != nil {
			return nil, err
		}
		result.AllWritten = true
	}

	return result, nil
}
