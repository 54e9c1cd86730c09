package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Workspace.Metadata != "unit_metadata.yaml" {
		t.Errorf("Workspace.Metadata = %q, want unit_metadata.yaml", cfg.Workspace.Metadata)
	}
	if cfg.Workspace.UnitsDir != "units" {
		t.Errorf("Workspace.UnitsDir = %q, want units", cfg.Workspace.UnitsDir)
	}
	if cfg.Workspace.SectionsDir != "sections" {
		t.Errorf("Workspace.SectionsDir = %q, want sections", cfg.Workspace.SectionsDir)
	}
	if cfg.Letter.Template != "classic" {
		t.Errorf("Letter.Template = %q, want classic", cfg.Letter.Template)
	}
	if cfg.Letter.Recipient != "Hiring Manager" {
		t.Errorf("Letter.Recipient = %q, want Hiring Manager", cfg.Letter.Recipient)
	}
	if cfg.Bibliography.Prefix != "pub:" {
		t.Errorf("Bibliography.Prefix = %q, want pub:", cfg.Bibliography.Prefix)
	}
	if len(cfg.Bibliography.ValidPrefixes) != 3 {
		t.Errorf("Bibliography.ValidPrefixes = %v, want 3 entries", cfg.Bibliography.ValidPrefixes)
	}
	if len(cfg.Documents) != 0 {
		t.Errorf("Documents = %v, want empty", cfg.Documents)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("valid config overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cv.yaml")
		content := `workspace:
  metadata: meta/units.yaml
author:
  firstName: Ada
  lastName: Lovelace
  emails:
    - ada@example.com
documents:
  - name: short_cv
    sections:
      - section: education
        tags: [short_cv]
        maxItems: 3
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workspace.Metadata != "meta/units.yaml" {
			t.Errorf("Workspace.Metadata = %q, want meta/units.yaml", cfg.Workspace.Metadata)
		}
		// Defaults survive partial configs.
		if cfg.Workspace.UnitsDir != "units" {
			t.Errorf("Workspace.UnitsDir = %q, want units", cfg.Workspace.UnitsDir)
		}
		if cfg.Author.FirstName != "Ada" {
			t.Errorf("Author.FirstName = %q, want Ada", cfg.Author.FirstName)
		}

		target := cfg.Target("short_cv")
		if target == nil {
			t.Fatal("Target(short_cv) = nil")
		}
		if len(target.Sections) != 1 || target.Sections[0].MaxItems != 3 {
			t.Errorf("target sections = %+v", target.Sections)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cv.yaml")
		if err := os.WriteFile(path, []byte("wat: true\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("default config passes", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("overlong field rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Author.FirstName = strings.Repeat("a", MaxNameLength+1)
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("overlong email rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Author.Emails = []string{strings.Repeat("a", MaxEmailLength+1)}
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{"empty value", "", 10, false},
		{"at limit", "1234567890", 10, false},
		{"over limit", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, tt.max)
			if tt.wantErr != (err != nil) {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestSearchedConfigPaths(t *testing.T) {
	paths := SearchedConfigPaths("cv")
	if len(paths) < 2 {
		t.Fatalf("SearchedConfigPaths() = %v, want at least cwd entries", paths)
	}
	if paths[0] != "cv.yaml" || paths[1] != "cv.yml" {
		t.Errorf("cwd entries = %v, want [cv.yaml cv.yml ...]", paths[:2])
	}
}
