package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alisajid/go-cvkit/internal/assets"
)

// testEnv returns an Environment wired to buffers with a fixed clock
// and no environment variables.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:         func() time.Time { return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC) },
		Stdout:      &stdout,
		Stderr:      &stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		Getenv:      func(string) string { return "" },
		Environ:     func() []string { return nil },
	}
	return env, &stdout, &stderr
}

// writeWorkspace creates a workspace with metadata, unit files, and a
// config file pointing at it. Returns the workspace dir and config path.
func writeWorkspace(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	meta := `education:
  phd:
    tags: [full_cv, short_cv]
    priority: 1
  masters:
    tags: [full_cv]
    priority: 2
experience:
  lead:
    tags: [full_cv, short_cv]
    priority: 1
`
	if err := os.WriteFile(filepath.Join(dir, "unit_metadata.yaml"), []byte(meta), 0o644); err != nil {
		t.Fatal(err)
	}

	units := map[string]string{
		"education/phd.tex":     `\cventry{2020}{PhD}{}{}{}{}`,
		"education/masters.tex": `\cventry{2016}{MS}{}{}{}{}`,
		"experience/lead.tex":   `\cventry{2021}{Lead}{}{}{}{}`,
	}
	for rel, content := range units {
		path := filepath.Join(dir, "units", filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := fmt.Sprintf(`workspace:
  metadata: %q
  unitsDir: %q
  sectionsDir: %q
author:
  firstName: Ada
  lastName: Lovelace
  emails: [ada@example.org]
`,
		filepath.Join(dir, "unit_metadata.yaml"),
		filepath.Join(dir, "units"),
		filepath.Join(dir, "sections"),
	)
	cfgPath := filepath.Join(dir, "cvkit.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	return dir, cfgPath
}

func TestRun_NoArgs(t *testing.T) {
	env, _, stderr := testEnv()

	if code := run(nil, env); code != ExitUsage {
		t.Errorf("exit = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "Usage: cvkit") {
		t.Error("usage not printed")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	env, _, stderr := testEnv()

	if code := run([]string{"frobnicate"}, env); code != ExitUsage {
		t.Errorf("exit = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), `unknown command "frobnicate"`) {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	env, stdout, _ := testEnv()

	if code := run([]string{"version"}, env); code != ExitSuccess {
		t.Errorf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "cvkit") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	env, stdout, _ := testEnv()

	if code := run([]string{"help"}, env); code != ExitSuccess {
		t.Errorf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "Commands:") {
		t.Error("command list not printed")
	}
}

func TestRun_HelpSubcommand(t *testing.T) {
	env, stdout, _ := testEnv()

	if code := run([]string{"help", "section"}, env); code != ExitSuccess {
		t.Errorf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "cvkit section") {
		t.Error("section usage not printed")
	}
}

func TestRun_WarnsUnknownEnvVars(t *testing.T) {
	env, _, stderr := testEnv()
	env.Environ = func() []string {
		return []string{"CVKIT_METADAT=typo.yaml", "PATH=/usr/bin"}
	}

	run([]string{"version"}, env)

	if !strings.Contains(stderr.String(), "CVKIT_METADAT") {
		t.Error("typo variable not reported")
	}
	if strings.Contains(stderr.String(), "PATH") {
		t.Error("non-cvkit variable reported")
	}
}
