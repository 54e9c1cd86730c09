// Package config loads and validates workspace configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alisajid/go-cvkit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxNameLength      = 100  // Name parts
	MaxEmailLength     = 254  // RFC 5321
	MaxURLLength       = 2048 // Browser limit
	MaxAddressLength   = 200  // Street or city line
	MaxPhoneLength     = 30   // International numbers with separators
	MaxHandleLength    = 100  // Social handles
	MaxTextLength      = 500  // Opening/closing and other free-form text
	MaxPathLength      = 4096 // Filesystem paths
	MaxTemplateLength  = 100  // Template name
	MaxPrefixLength    = 50   // Bibliography keyword prefix
	MaxSectionLength   = 100  // Section name in a build target
	MaxTargetNameCount = 50   // Build targets per config
)

// Config holds all configuration for the CV workspace.
type Config struct {
	Workspace    WorkspaceConfig  `yaml:"workspace"`
	Author       AuthorConfig     `yaml:"author"`
	Letter       LetterConfig     `yaml:"letter"`
	Bibliography BibConfig        `yaml:"bibliography"`
	Documents    []DocumentTarget `yaml:"documents"`
	Assets       AssetsConfig     `yaml:"assets"`
}

// WorkspaceConfig defines where metadata, units, and generated sections live.
type WorkspaceConfig struct {
	Metadata    string `yaml:"metadata"`    // Unit metadata file (default: unit_metadata.yaml)
	UnitsDir    string `yaml:"unitsDir"`    // Unit snippet root (default: units)
	SectionsDir string `yaml:"sectionsDir"` // Generated fragment dir (default: sections)
}

// AuthorConfig carries the identity printed on cover letters.
type AuthorConfig struct {
	FirstName string   `yaml:"firstName"`
	LastName  string   `yaml:"lastName"`
	Street    string   `yaml:"street"`
	City      string   `yaml:"city"`
	Country   string   `yaml:"country"`
	Phone     string   `yaml:"phone"`
	Emails    []string `yaml:"emails"`
	Homepage  string   `yaml:"homepage"`
	Linkedin  string   `yaml:"linkedin"`
	Github    string   `yaml:"github"`
	Orcid     string   `yaml:"orcid"`
}

// LetterConfig defines cover letter defaults.
type LetterConfig struct {
	Template  string `yaml:"template"`  // Template name (default: classic)
	Recipient string `yaml:"recipient"` // Default: "Hiring Manager"
	Opening   string `yaml:"opening"`   // Default: "Dear Hiring Manager,"
	Closing   string `yaml:"closing"`   // Default: "Sincerely,"
	Date      string `yaml:"date"`      // "", literal, "auto", or "auto:FORMAT"
}

// BibConfig defines bibliography splitting defaults.
type BibConfig struct {
	KeywordMap    string   `yaml:"keywordMap"`    // "old -> new" mapping file (default: keyword-map.txt)
	Prefix        string   `yaml:"prefix"`        // Subset tag prefix (default: "pub:")
	ValidPrefixes []string `yaml:"validPrefixes"` // Keyword prefixes to keep (default: pub:, topic:, meta:)
	OutputDir     string   `yaml:"outputDir"`     // Default output directory (default: bib)
}

// DocumentTarget is one buildable document variant.
type DocumentTarget struct {
	Name     string       `yaml:"name"` // e.g. "short_cv"
	Dir      string       `yaml:"dir"`  // Target directory (default: name)
	Main     string       `yaml:"main"` // Main .tex file for --pdf (default: <name>.tex)
	Sections []SectionJob `yaml:"sections"`
}

// SectionJob is one section assembly within a document target.
type SectionJob struct {
	Section       string   `yaml:"section"`
	Tags          []string `yaml:"tags"`
	ExcludeTags   []string `yaml:"excludeTags"`
	MaxItems      int      `yaml:"maxItems"`
	IncludeHeader bool     `yaml:"includeHeader"`
	Output        string   `yaml:"output"` // Fragment path (default: sections/<section>_<target>.tex)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns configuration matching the conventional workspace
// layout, with no author identity and no build targets.
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Metadata:    "unit_metadata.yaml",
			UnitsDir:    "units",
			SectionsDir: "sections",
		},
		Letter: LetterConfig{
			Template:  "classic",
			Recipient: "Hiring Manager",
			Opening:   "Dear Hiring Manager,",
			Closing:   "Sincerely,",
		},
		Bibliography: BibConfig{
			KeywordMap:    "keyword-map.txt",
			Prefix:        "pub:",
			ValidPrefixes: []string{"pub:", "topic:", "meta:"},
			OutputDir:     "bib",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if strings.ContainsAny(nameOrPath, "/\\") {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchedConfigPaths returns the paths LoadConfig would try for a config
// name, for use in error hints.
func SearchedConfigPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-cvkit", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-cvkit/
func resolveConfigPath(name string) (string, error) {
	tried := SearchedConfigPaths(name)
	for _, p := range tried {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// Validate checks field lengths. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"workspace.metadata", c.Workspace.Metadata, MaxPathLength},
		{"workspace.unitsDir", c.Workspace.UnitsDir, MaxPathLength},
		{"workspace.sectionsDir", c.Workspace.SectionsDir, MaxPathLength},
		{"author.firstName", c.Author.FirstName, MaxNameLength},
		{"author.lastName", c.Author.LastName, MaxNameLength},
		{"author.street", c.Author.Street, MaxAddressLength},
		{"author.city", c.Author.City, MaxAddressLength},
		{"author.country", c.Author.Country, MaxAddressLength},
		{"author.phone", c.Author.Phone, MaxPhoneLength},
		{"author.homepage", c.Author.Homepage, MaxURLLength},
		{"author.linkedin", c.Author.Linkedin, MaxHandleLength},
		{"author.github", c.Author.Github, MaxHandleLength},
		{"author.orcid", c.Author.Orcid, MaxHandleLength},
		{"letter.template", c.Letter.Template, MaxTemplateLength},
		{"letter.recipient", c.Letter.Recipient, MaxTextLength},
		{"letter.opening", c.Letter.Opening, MaxTextLength},
		{"letter.closing", c.Letter.Closing, MaxTextLength},
		{"bibliography.prefix", c.Bibliography.Prefix, MaxPrefixLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}

	for _, email := range c.Author.Emails {
		if err := validateFieldLength("author.emails", email, MaxEmailLength); err != nil {
			return err
		}
	}

	if len(c.Documents) > MaxTargetNameCount {
		return fmt.Errorf("%w: documents has %d entries (max %d)", ErrFieldTooLong, len(c.Documents), MaxTargetNameCount)
	}
	for _, doc := range c.Documents {
		if err := validateFieldLength("documents.name", doc.Name, MaxNameLength); err != nil {
			return err
		}
		for _, job := range doc.Sections {
			if err := validateFieldLength("documents.sections.section", job.Section, MaxSectionLength); err != nil {
				return err
			}
		}
	}

	return nil
}

// Target returns the named document target, or nil if absent.
func (c *Config) Target(name string) *DocumentTarget {
	for i := range c.Documents {
		if c.Documents[i].Name == name {
			return &c.Documents[i]
		}
	}
	return nil
}

// validateFieldLength returns ErrFieldTooLong if value exceeds maxLength.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s is %d characters (max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}
