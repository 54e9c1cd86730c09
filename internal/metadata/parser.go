package metadata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Indentation levels of the metadata grammar.
const (
	unitIndent = "  "
	propIndent = "    "
)

// Parse reads a metadata document from r.
//
// Lines that fit none of the grammar rules (for example a property line
// before any unit has been opened) are ignored rather than rejected, which
// matches the permissive behavior CV workspaces rely on.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}

	var section *Section
	var unit *Unit

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		switch {
		case isSectionLine(line):
			section = &Section{Name: strings.TrimSuffix(line, ":")}
			unit = nil
			doc.Sections = append(doc.Sections, section)

		case isUnitLine(line):
			unit = &Unit{
				Name:  strings.TrimSuffix(trimmed, ":"),
				Props: map[string]Value{},
			}
			if section != nil {
				section.Units = append(section.Units, unit)
			}

		case isPropLine(line):
			if section == nil || unit == nil {
				continue
			}
			key, raw, _ := strings.Cut(trimmed, ":")
			unit.Props[strings.TrimSpace(key)] = parseValue(strings.TrimSpace(raw))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning metadata: %w", err)
	}

	return doc, nil
}

// isSectionLine matches top-level "name:" lines.
func isSectionLine(line string) bool {
	return strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " ")
}

// isUnitLine matches two-space indented "name:" lines.
func isUnitLine(line string) bool {
	return strings.HasPrefix(line, unitIndent) &&
		!strings.HasPrefix(line, propIndent) &&
		strings.HasSuffix(line, ":")
}

// isPropLine matches four-space indented "key: value" lines.
func isPropLine(line string) bool {
	return strings.HasPrefix(line, propIndent) && strings.Contains(line, ":")
}

// parseValue interprets a raw property value.
// Bracketed values become lists, all-digit values become integers, and
// double-quoted strings are unquoted. Everything else is a bare string.
func parseValue(raw string) Value {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		return Value{Kind: KindList, List: parseList(raw)}
	}

	if n, err := strconv.Atoi(raw); err == nil && raw != "" && isAllDigits(raw) {
		return Value{Kind: KindInt, Int: n}
	}

	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		raw = raw[1 : len(raw)-1]
	}
	return Value{Kind: KindString, Str: raw}
}

// parseList splits a bracketed list into trimmed, non-empty elements.
func parseList(raw string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	var items []string
	for _, part := range strings.Split(inner, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// isAllDigits reports whether s consists solely of ASCII digits.
// Mirrors the original parser, which treated "-5" as a string.
func isAllDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
