package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alisajid/go-cvkit/internal/config"
	"github.com/alisajid/go-cvkit/internal/fileutil"
	"github.com/alisajid/go-cvkit/internal/hints"
	"github.com/alisajid/go-cvkit/internal/metadata"
)

// statusResult holds the workspace health report.
type statusResult struct {
	Status         string         `json:"status"` // "ok", "warnings", "errors"
	Workspace      workspaceInfo  `json:"workspace"`
	Sections       []sectionInfo  `json:"sections,omitempty"`
	TopTags        []tagCount     `json:"top_tags,omitempty"`
	Generated      []fileInfo     `json:"generated_sections,omitempty"`
	Bibliographies []fileInfo     `json:"bibliographies,omitempty"`
	Documents      []documentInfo `json:"documents,omitempty"`
	Latexmk        latexmkInfo    `json:"latexmk"`
	Warnings       []string       `json:"warnings,omitempty"`
	Errors         []string       `json:"errors,omitempty"`
	Suggestions    []string       `json:"suggestions,omitempty"`
}

// workspaceInfo summarizes the metadata file and unit counts.
type workspaceInfo struct {
	MetadataFile  string `json:"metadata_file"`
	MetadataFound bool   `json:"metadata_found"`
	SectionCount  int    `json:"section_count"`
	UnitCount     int    `json:"unit_count"`
}

// sectionInfo summarizes one metadata section.
type sectionInfo struct {
	Name         string   `json:"name"`
	Units        int      `json:"units"`
	Tags         []string `json:"tags,omitempty"`
	MissingFiles []string `json:"missing_files,omitempty"`
}

// fileInfo is one generated artifact with a human-readable size.
type fileInfo struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

// tagCount is one tag with the number of units carrying it.
type tagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// documentInfo reports one configured document target and its compiled
// PDF, if present.
type documentInfo struct {
	Name     string `json:"name"`
	PDF      string `json:"pdf"`
	Built    bool   `json:"built"`
	Size     string `json:"size,omitempty"`
	Modified string `json:"modified,omitempty"`
}

// latexmkInfo reports whether the latexmk binary is reachable.
type latexmkInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// runStatusCmd reports workspace health and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runStatusCmd(args []string, env *Environment) int {
	f := &statusFlags{}
	fs := newStatusFlagSet(f)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	cfg, _, err := resolveConfig(f.common.config, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	result := runStatus(cfg)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printStatusResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runStatus performs all workspace checks.
func runStatus(cfg *config.Config) *statusResult {
	result := &statusResult{
		Status: "ok",
		Workspace: workspaceInfo{
			MetadataFile: cfg.Workspace.Metadata,
		},
	}

	checkMetadata(result, cfg)
	checkGenerated(result, cfg)
	checkBibliographies(result, cfg)
	checkDocuments(result, cfg)
	checkLatexmk(result)
	suggestNextSteps(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkMetadata loads the metadata file and verifies every declared
// unit has a snippet file on disk.
func checkMetadata(result *statusResult, cfg *config.Config) {
	doc, err := metadata.Load(cfg.Workspace.Metadata)
	if err != nil {
		if errors.Is(err, metadata.ErrMetadataNotFound) {
			result.Errors = append(result.Errors, strings.TrimSpace(
				fmt.Sprintf("metadata file not found: %s%s",
					cfg.Workspace.Metadata, hints.ForMetadataNotFound(cfg.Workspace.Metadata))))
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
		return
	}

	result.Workspace.MetadataFound = true
	result.Workspace.SectionCount = len(doc.Sections)
	result.Workspace.UnitCount = doc.UnitCount()

	for _, section := range doc.Sections {
		info := sectionInfo{
			Name:  section.Name,
			Units: len(section.Units),
			Tags:  section.Tags(),
		}
		for _, unit := range section.Units {
			path := filepath.Join(cfg.Workspace.UnitsDir, section.Name, unit.Name+".tex")
			if !fileutil.FileExists(path) {
				info.MissingFiles = append(info.MissingFiles, path)
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("unit file not found: %s", path))
			}
		}
		result.Sections = append(result.Sections, info)
	}
	result.TopTags = topTags(doc.TagCounts(), 5)

	if !fileutil.DirExists(cfg.Workspace.UnitsDir) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("units directory not found: %s", cfg.Workspace.UnitsDir))
	}
}

// checkGenerated lists assembled section fragments.
func checkGenerated(result *statusResult, cfg *config.Config) {
	result.Generated = listArtifacts(cfg.Workspace.SectionsDir, ".tex")
}

// checkBibliographies lists split bibliography files.
func checkBibliographies(result *statusResult, cfg *config.Config) {
	result.Bibliographies = listArtifacts(cfg.Bibliography.OutputDir, ".bib")
}

// checkDocuments reports the compiled PDF of each configured document
// target.
func checkDocuments(result *statusResult, cfg *config.Config) {
	for _, target := range cfg.Documents {
		dir := target.Dir
		if dir == "" {
			dir = target.Name
		}
		main := target.Main
		if main == "" {
			main = target.Name + ".tex"
		}
		pdf := filepath.Join(dir, strings.TrimSuffix(main, filepath.Ext(main))+".pdf")

		info := documentInfo{Name: target.Name, PDF: pdf}
		if st, err := os.Stat(pdf); err == nil {
			info.Built = true
			info.Size = fileutil.HumanSize(st.Size())
			info.Modified = st.ModTime().Format("2006-01-02 15:04")
		}
		result.Documents = append(result.Documents, info)
	}
}

// checkLatexmk records whether latexmk is on PATH. Its absence is not a
// warning since PDF builds are optional.
func checkLatexmk(result *statusResult) {
	if path, err := exec.LookPath("latexmk"); err == nil {
		result.Latexmk = latexmkInfo{Found: true, Path: path}
	}
}

// topTags returns the n most common tags, most frequent first, ties
// broken alphabetically.
func topTags(counts map[string]int, n int) []tagCount {
	tags := make([]tagCount, 0, len(counts))
	for tag, count := range counts {
		tags = append(tags, tagCount{Tag: tag, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	if len(tags) > n {
		tags = tags[:n]
	}
	return tags
}

// suggestNextSteps points at the obvious next command when expected
// outputs are missing.
func suggestNextSteps(result *statusResult) {
	if !result.Workspace.MetadataFound {
		return
	}
	if len(result.Generated) == 0 {
		result.Suggestions = append(result.Suggestions,
			"run 'cvkit build' to assemble section fragments")
	}
	built := false
	for _, doc := range result.Documents {
		if doc.Built {
			built = true
			break
		}
	}
	if len(result.Documents) > 0 && !built {
		result.Suggestions = append(result.Suggestions,
			"run 'cvkit build --pdf' to compile configured documents")
	}
}

// listArtifacts returns the files with the given extension in a
// directory, with human-readable sizes. A missing directory yields nil.
func listArtifacts(dir, ext string) []fileInfo {
	var files []fileInfo
	for _, name := range fileutil.ListByExt(dir, ext) {
		size := "unknown"
		if st, err := os.Stat(filepath.Join(dir, name)); err == nil {
			size = fileutil.HumanSize(st.Size())
		}
		files = append(files, fileInfo{Name: name, Size: size})
	}
	return files
}

// printStatusResult outputs the human-readable workspace report.
func printStatusResult(w io.Writer, r *statusResult) {
	fmt.Fprintln(w, "cvkit status")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Workspace")
	if r.Workspace.MetadataFound {
		fmt.Fprintf(w, "  [OK] Metadata: %s (%d sections, %d units)\n",
			r.Workspace.MetadataFile, r.Workspace.SectionCount, r.Workspace.UnitCount)
	} else {
		fmt.Fprintf(w, "  [ERROR] Metadata: %s not found\n", r.Workspace.MetadataFile)
	}
	if r.Latexmk.Found {
		fmt.Fprintf(w, "  [OK] latexmk: %s\n", r.Latexmk.Path)
	} else {
		fmt.Fprintln(w, "  [WARN] latexmk: not found (PDF builds unavailable)")
	}
	fmt.Fprintln(w)

	if len(r.Sections) > 0 {
		fmt.Fprintln(w, "Units by Section")
		for _, s := range r.Sections {
			marker := "[OK]"
			if len(s.MissingFiles) > 0 {
				marker = "[WARN]"
			}
			fmt.Fprintf(w, "  %s %s: %d units\n", marker, s.Name, s.Units)
			if len(s.Tags) > 0 {
				fmt.Fprintf(w, "       Tags: %s\n", strings.Join(s.Tags, ", "))
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.TopTags) > 0 {
		parts := make([]string, 0, len(r.TopTags))
		for _, tc := range r.TopTags {
			parts = append(parts, fmt.Sprintf("%s (%d)", tc.Tag, tc.Count))
		}
		fmt.Fprintf(w, "Top Tags: %s\n", strings.Join(parts, ", "))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Generated Sections")
	if len(r.Generated) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, f := range r.Generated {
		fmt.Fprintf(w, "  %s (%s)\n", f.Name, f.Size)
	}
	fmt.Fprintln(w)

	if len(r.Bibliographies) > 0 {
		fmt.Fprintln(w, "Bibliographies")
		for _, f := range r.Bibliographies {
			fmt.Fprintf(w, "  %s (%s)\n", f.Name, f.Size)
		}
		fmt.Fprintln(w)
	}

	if len(r.Documents) > 0 {
		fmt.Fprintln(w, "Documents")
		for _, d := range r.Documents {
			if d.Built {
				fmt.Fprintf(w, "  [OK] %s: %s (%s, %s)\n", d.Name, d.PDF, d.Size, d.Modified)
			} else {
				fmt.Fprintf(w, "  [WARN] %s: %s not built\n", d.Name, d.PDF)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	if len(r.Suggestions) > 0 {
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "  %s\n", s)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ok":
		fmt.Fprintln(w, "Status: ok")
	case "warnings":
		fmt.Fprintln(w, "Status: ok with warnings")
	default:
		fmt.Fprintln(w, "Status: errors found")
	}
}
