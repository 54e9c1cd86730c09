package bibutil

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nickng/bibtex"
)

// mapSeparator splits "old -> new" lines in a keyword map file.
const mapSeparator = " -> "

// KeywordMap maps old keywords to their replacements.
type KeywordMap map[string]string

// LoadKeywordMap reads an "old -> new" keyword mapping file.
// Blank lines and lines starting with '#' are skipped, as are lines without
// the separator. A missing file yields an empty map, not an error: remapping
// is optional.
func LoadKeywordMap(path string) (KeywordMap, error) {
	f, err := os.Open(path) // #nosec G304 -- keyword map path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return KeywordMap{}, nil
		}
		return nil, fmt.Errorf("opening keyword map: %w", err)
	}
	defer func() { _ = f.Close() }()

	mappings := KeywordMap{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		old, replacement, found := strings.Cut(line, mapSeparator)
		if !found {
			continue
		}
		mappings[strings.TrimSpace(old)] = strings.TrimSpace(replacement)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading keyword map: %w", err)
	}

	return mappings, nil
}

// Remap returns the replacement for kw, or kw itself when unmapped.
func (m KeywordMap) Remap(kw string) string {
	if mapped, ok := m[kw]; ok {
		return mapped
	}
	return kw
}

// FilterKeywords remaps the entry's keywords and keeps only those carrying
// one of the valid prefixes. The entry is modified in place; the keywords
// field is removed when no keyword survives.
func FilterKeywords(entry *bibtex.BibEntry, mappings KeywordMap, validPrefixes []string) {
	if _, ok := entry.Fields[KeywordsField]; !ok {
		return
	}

	var kept []string
	for _, kw := range Keywords(entry) {
		mapped := mappings.Remap(kw)
		if hasAnyPrefix(mapped, validPrefixes) {
			kept = append(kept, mapped)
		}
	}
	SetKeywords(entry, kept)
}

// hasAnyPrefix reports whether s starts with one of the prefixes.
func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
