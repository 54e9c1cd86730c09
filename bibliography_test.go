package cvkit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alisajid/go-cvkit/internal/bibutil"
)

const testBib = `@article{smith2020,
  title = {A Study of Things},
  author = {Smith, Jane},
  year = {2020},
  keywords = {pub:journal, topic:biology},
}

@inproceedings{doe2021,
  title = {Conference Findings},
  author = {Doe, John},
  year = {2021},
  keywords = {pub:conference, legacy-tag},
}

@misc{roe2022,
  title = {Untagged Note},
  author = {Roe, Richard},
  year = {2022},
}
`

func writeTestBib(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "master.bib")
	if err := os.WriteFile(path, []byte(testBib), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func defaultBibInput(src, out string) BibInput {
	return BibInput{
		SourcePath:    src,
		OutputDir:     out,
		Prefix:        "pub:",
		ValidPrefixes: []string{"pub:", "topic:", "meta:"},
	}
}

func TestSplitBibliography(t *testing.T) {
	dir := t.TempDir()
	src := writeTestBib(t, dir)
	out := filepath.Join(dir, "bib")

	svc := New()
	res, err := svc.SplitBibliography(context.Background(), defaultBibInput(src, out))
	if err != nil {
		t.Fatalf("SplitBibliography() error = %v", err)
	}

	if res.Total != 3 {
		t.Errorf("total = %d, want 3", res.Total)
	}
	if !res.AllWritten {
		t.Error("all.bib not written")
	}

	wantSubsets := map[string]int{"journal": 1, "conference": 1}
	if len(res.Subsets) != len(wantSubsets) {
		t.Fatalf("subsets = %v, want %v", res.Subsets, wantSubsets)
	}
	for name, count := range wantSubsets {
		if res.Subsets[name] != count {
			t.Errorf("subset %q = %d entries, want %d", name, res.Subsets[name], count)
		}
	}

	journal, err := bibutil.ParseFile(filepath.Join(out, "journal.bib"))
	if err != nil {
		t.Fatalf("parsing journal.bib: %v", err)
	}
	if len(journal) != 1 || journal[0].CiteName != "smith2020" {
		t.Errorf("journal.bib entries = %v, want smith2020", journal)
	}

	all, err := bibutil.ParseFile(filepath.Join(out, "all.bib"))
	if err != nil {
		t.Fatalf("parsing all.bib: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all.bib entries = %d, want 3", len(all))
	}
}

func TestSplitBibliography_InvalidKeywordDropped(t *testing.T) {
	dir := t.TempDir()
	src := writeTestBib(t, dir)
	out := filepath.Join(dir, "bib")

	svc := New()
	if _, err := svc.SplitBibliography(context.Background(), defaultBibInput(src, out)); err != nil {
		t.Fatalf("SplitBibliography() error = %v", err)
	}

	entries, err := bibutil.ParseFile(filepath.Join(out, "conference.bib"))
	if err != nil {
		t.Fatal(err)
	}
	kws := bibutil.Keywords(entries[0])
	for _, kw := range kws {
		if kw == "legacy-tag" {
			t.Error("unprefixed keyword survived filtering")
		}
	}
}

func TestSplitBibliography_KeywordRemap(t *testing.T) {
	dir := t.TempDir()
	src := writeTestBib(t, dir)
	out := filepath.Join(dir, "bib")

	mapPath := filepath.Join(dir, "keyword-map.txt")
	mapContent := "# remaps\nlegacy-tag -> pub:legacy\n"
	if err := os.WriteFile(mapPath, []byte(mapContent), 0o644); err != nil {
		t.Fatal(err)
	}

	input := defaultBibInput(src, out)
	input.KeywordMapPath = mapPath

	svc := New()
	res, err := svc.SplitBibliography(context.Background(), input)
	if err != nil {
		t.Fatalf("SplitBibliography() error = %v", err)
	}

	if res.Subsets["legacy"] != 1 {
		t.Errorf("subsets = %v, want legacy subset with 1 entry", res.Subsets)
	}
}

func TestSplitBibliography_PreservesExistingAll(t *testing.T) {
	dir := t.TempDir()
	src := writeTestBib(t, dir)
	out := filepath.Join(dir, "bib")

	if err := os.MkdirAll(out, 0o755); err != nil {
		t.Fatal(err)
	}
	existing := "% hand edited\n"
	allPath := filepath.Join(out, "all.bib")
	if err := os.WriteFile(allPath, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := New()
	res, err := svc.SplitBibliography(context.Background(), defaultBibInput(src, out))
	if err != nil {
		t.Fatalf("SplitBibliography() error = %v", err)
	}

	if res.AllWritten {
		t.Error("AllWritten = true, want false for pre-existing all.bib")
	}
	content, err := os.ReadFile(allPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != existing {
		t.Error("pre-existing all.bib was overwritten")
	}
}

func TestSplitBibliography_Validation(t *testing.T) {
	svc := New()

	tests := []struct {
		name    string
		input   BibInput
		wantErr error
	}{
		{"empty source", BibInput{OutputDir: "o", Prefix: "pub:"}, ErrEmptyBibSource},
		{"empty output dir", BibInput{SourcePath: "s", Prefix: "pub:"}, ErrEmptyOutputDir},
		{"empty prefix", BibInput{SourcePath: "s", OutputDir: "o"}, ErrEmptyPrefix},
		{"missing source", BibInput{SourcePath: "nope.bib", OutputDir: "o", Prefix: "pub:"}, bibutil.ErrBibNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SplitBibliography(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBibResult_SubsetNames(t *testing.T) {
	res := &BibResult{Subsets: map[string]int{"z": 1, "a": 2, "m": 3}}
	names := res.SubsetNames()
	want := []string{"a", "m", "z"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}
