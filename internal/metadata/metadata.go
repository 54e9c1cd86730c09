// Package metadata parses the unit metadata file that drives section
// assembly.
//
// The format is a restricted, line-oriented subset of YAML. Top-level keys
// name sections, two-space indented keys name units, and four-space indented
// key/value pairs set unit properties. Values are bare strings, quoted
// strings, integers, or bracketed lists. Document order is significant:
// units with equal priority keep the order in which they appear in the file,
// so the parser preserves it instead of decoding into maps.
package metadata

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Sentinel errors for metadata operations.
var (
	ErrMetadataNotFound = errors.New("metadata file not found")
	ErrMetadataRead     = errors.New("failed to read metadata file")
)

// DefaultPriority is assumed for units without a priority property.
// Lower numbers sort first.
const DefaultPriority = 999

// ValueKind discriminates the parsed type of a property value.
type ValueKind int

// Property value kinds.
const (
	KindString ValueKind = iota
	KindInt
	KindList
)

// Value is a parsed property value.
type Value struct {
	Kind ValueKind
	Str  string
	Int  int
	List []string
}

// StringValue creates a string Value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IntValue creates an integer Value.
func IntValue(n int) Value { return Value{Kind: KindInt, Int: n} }

// ListValue creates a list Value.
func ListValue(items ...string) Value { return Value{Kind: KindList, List: items} }

// Unit is one reusable CV fragment plus its selection properties.
type Unit struct {
	Name  string
	Props map[string]Value
}

// Tags returns the unit's tag list, or nil if the tags property is absent
// or not a list.
func (u *Unit) Tags() []string {
	v, ok := u.Props["tags"]
	if !ok || v.Kind != KindList {
		return nil
	}
	return v.List
}

// HasTag reports whether the unit carries the given tag.
// Tags compare case-sensitively.
func (u *Unit) HasTag(tag string) bool {
	for _, t := range u.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the unit carries at least one of the given tags.
func (u *Unit) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if u.HasTag(t) {
			return true
		}
	}
	return false
}

// Priority returns the unit's sort priority, or DefaultPriority when the
// property is absent or not an integer.
func (u *Unit) Priority() int {
	v, ok := u.Props["priority"]
	if !ok || v.Kind != KindInt {
		return DefaultPriority
	}
	return v.Int
}

// Section is a named, ordered group of units.
type Section struct {
	Name  string
	Units []*Unit
}

// Unit returns the named unit, or nil if the section has no such unit.
func (s *Section) Unit(name string) *Unit {
	for _, u := range s.Units {
		if u.Name == name {
			return u
		}
	}
	return nil
}

// Tags returns the sorted set of all tags used by units in the section.
func (s *Section) Tags() []string {
	seen := map[string]bool{}
	for _, u := range s.Units {
		for _, t := range u.Tags() {
			seen[t] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Document is a parsed metadata file: an ordered list of sections.
type Document struct {
	Sections []*Section
}

// Section returns the named section, or nil if absent.
func (d *Document) Section(name string) *Section {
	for _, s := range d.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// SectionNames returns section names in document order.
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		names[i] = s.Name
	}
	return names
}

// UnitCount returns the total number of units across all sections.
func (d *Document) UnitCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Units)
	}
	return n
}

// TagCounts returns how many units carry each tag, across all sections.
func (d *Document) TagCounts() map[string]int {
	counts := map[string]int{}
	for _, s := range d.Sections {
		for _, u := range s.Units {
			for _, t := range u.Tags() {
				counts[t]++
			}
		}
	}
	return counts
}

// Load reads and parses a metadata file.
// Returns ErrMetadataNotFound if the file does not exist.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- metadata path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMetadataNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}
	return Parse(strings.NewReader(string(data)))
}
