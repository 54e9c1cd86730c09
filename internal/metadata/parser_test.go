package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleMetadata = `# Unit metadata for the modular CV workspace.

education:
  phd_biomedical_sciences:
    tags: [full_cv, short_cv, academic]
    priority: 1
  bs_computer_science:
    tags: [full_cv]
    priority: 2
    note: "completed with honors"

experience:
  research_assistant:
    tags: [full_cv, short_cv]
    priority: 1
  barista:
    tags: [full_cv]

skills:
  programming:
    tags: [technical]
`

func TestParse_SectionsAndUnitsInOrder(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleMetadata))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantSections := []string{"education", "experience", "skills"}
	if got := doc.SectionNames(); !reflect.DeepEqual(got, wantSections) {
		t.Errorf("SectionNames() = %v, want %v", got, wantSections)
	}

	edu := doc.Section("education")
	if edu == nil {
		t.Fatal("Section(education) = nil")
	}
	if len(edu.Units) != 2 {
		t.Fatalf("education has %d units, want 2", len(edu.Units))
	}
	if edu.Units[0].Name != "phd_biomedical_sciences" {
		t.Errorf("first unit = %q, want phd_biomedical_sciences", edu.Units[0].Name)
	}

	if doc.UnitCount() != 5 {
		t.Errorf("UnitCount() = %d, want 5", doc.UnitCount())
	}
}

func TestParse_PropertyTypes(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleMetadata))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	u := doc.Section("education").Unit("phd_biomedical_sciences")
	if u == nil {
		t.Fatal("unit phd_biomedical_sciences not found")
	}

	wantTags := []string{"full_cv", "short_cv", "academic"}
	if got := u.Tags(); !reflect.DeepEqual(got, wantTags) {
		t.Errorf("Tags() = %v, want %v", got, wantTags)
	}
	if got := u.Priority(); got != 1 {
		t.Errorf("Priority() = %d, want 1", got)
	}

	bs := doc.Section("education").Unit("bs_computer_science")
	if got := bs.Props["note"]; got.Kind != KindString || got.Str != "completed with honors" {
		t.Errorf("note = %+v, want unquoted string", got)
	}
}

func TestParse_DefaultPriority(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleMetadata))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	u := doc.Section("experience").Unit("barista")
	if got := u.Priority(); got != DefaultPriority {
		t.Errorf("Priority() = %d, want %d", got, DefaultPriority)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Value
	}{
		{"bare string", "hello world", StringValue("hello world")},
		{"quoted string", `"hello, world"`, StringValue("hello, world")},
		{"integer", "42", IntValue(42)},
		{"negative stays string", "-5", StringValue("-5")},
		{"list", "[a, b, c]", ListValue("a", "b", "c")},
		{"list drops empties", "[a, , c,]", ListValue("a", "c")},
		{"empty list", "[]", Value{Kind: KindList}},
		{"empty value", "", StringValue("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseValue(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseValue(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParse_IgnoresStrayLines(t *testing.T) {
	input := `    orphan: property
education:
  unit_a:
    tags: [x]
not a section line at all
`
	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	if doc.Section("education").Unit("unit_a") == nil {
		t.Error("unit_a not parsed")
	}
}

func TestParse_CommentsAndBlanks(t *testing.T) {
	input := "# leading comment\n\neducation:\n  # unit comment\n  unit_a:\n    tags: [x]\n\n"
	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := doc.UnitCount(); got != 1 {
		t.Errorf("UnitCount() = %d, want 1", got)
	}
}

func TestTagCounts(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleMetadata))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	counts := doc.TagCounts()
	if counts["full_cv"] != 4 {
		t.Errorf("full_cv count = %d, want 4", counts["full_cv"])
	}
	if counts["technical"] != 1 {
		t.Errorf("technical count = %d, want 1", counts["technical"])
	}
}

func TestSection_Tags(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleMetadata))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"academic", "full_cv", "short_cv"}
	if got := doc.Section("education").Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns ErrMetadataNotFound", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrMetadataNotFound) {
			t.Errorf("error = %v, want ErrMetadataNotFound", err)
		}
	})

	t.Run("loads file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "unit_metadata.yaml")
		if err := os.WriteFile(path, []byte(sampleMetadata), 0o644); err != nil {
			t.Fatal(err)
		}
		doc, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if doc.UnitCount() != 5 {
			t.Errorf("UnitCount() = %d, want 5", doc.UnitCount())
		}
	})
}
