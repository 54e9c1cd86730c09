package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alisajid/go-cvkit/internal/config"
)

// envPrefix namespaces all cvkit environment variables.
const envPrefix = "CVKIT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // CVKIT_CONFIG: config file name or path
	Metadata    string // CVKIT_METADATA: unit metadata file
	UnitsDir    string // CVKIT_UNITS_DIR: unit snippet root
	SectionsDir string // CVKIT_SECTIONS_DIR: generated fragment dir
	Template    string // CVKIT_TEMPLATE: letter template name
	Recipient   string // CVKIT_RECIPIENT: letter recipient
	KeywordMap  string // CVKIT_KEYWORD_MAP: keyword remapping file
	BibPrefix   string // CVKIT_BIB_PREFIX: bibliography subset prefix
	BibOutput   string // CVKIT_BIB_OUTPUT: bibliography output dir
	AuthorName  string // CVKIT_AUTHOR_NAME: full author name
	AuthorEmail string // CVKIT_AUTHOR_EMAIL: primary author email
	Workers     int    // CVKIT_WORKERS: parallel workers
}

// knownEnvVars lists valid CVKIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CVKIT_CONFIG":       true,
	"CVKIT_METADATA":     true,
	"CVKIT_UNITS_DIR":    true,
	"CVKIT_SECTIONS_DIR": true,
	"CVKIT_TEMPLATE":     true,
	"CVKIT_RECIPIENT":    true,
	"CVKIT_KEYWORD_MAP":  true,
	"CVKIT_BIB_PREFIX":   true,
	"CVKIT_BIB_OUTPUT":   true,
	"CVKIT_AUTHOR_NAME":  true,
	"CVKIT_AUTHOR_EMAIL": true,
	"CVKIT_WORKERS":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:  getenv("CVKIT_CONFIG"),
		Metadata:    getenv("CVKIT_METADATA"),
		UnitsDir:    getenv("CVKIT_UNITS_DIR"),
		SectionsDir: getenv("CVKIT_SECTIONS_DIR"),
		Template:    getenv("CVKIT_TEMPLATE"),
		Recipient:   getenv("CVKIT_RECIPIENT"),
		KeywordMap:  getenv("CVKIT_KEYWORD_MAP"),
		BibPrefix:   getenv("CVKIT_BIB_PREFIX"),
		BibOutput:   getenv("CVKIT_BIB_OUTPUT"),
		AuthorName:  getenv("CVKIT_AUTHOR_NAME"),
		AuthorEmail: getenv("CVKIT_AUTHOR_EMAIL"),
	}

	if workers := getenv("CVKIT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// applyEnvConfig overlays environment values onto a loaded config.
// Precedence stays flags > env > config file > defaults; flags are
// applied after this call.
func applyEnvConfig(cfg *config.Config, env *envConfig) {
	if env.Metadata != "" {
		cfg.Workspace.Metadata = env.Metadata
	}
	if env.UnitsDir != "" {
		cfg.Workspace.UnitsDir = env.UnitsDir
	}
	if env.SectionsDir != "" {
		cfg.Workspace.SectionsDir = env.SectionsDir
	}
	if env.Template != "" {
		cfg.Letter.Template = env.Template
	}
	if env.Recipient != "" {
		cfg.Letter.Recipient = env.Recipient
	}
	if env.KeywordMap != "" {
		cfg.Bibliography.KeywordMap = env.KeywordMap
	}
	if env.BibPrefix != "" {
		cfg.Bibliography.Prefix = env.BibPrefix
	}
	if env.BibOutput != "" {
		cfg.Bibliography.OutputDir = env.BibOutput
	}
	if env.AuthorName != "" {
		first, last, ok := strings.Cut(env.AuthorName, " ")
		cfg.Author.FirstName = first
		if ok {
			cfg.Author.LastName = last
		}
	}
	if env.AuthorEmail != "" {
		cfg.Author.Emails = []string{env.AuthorEmail}
	}
}

// warnUnknownEnvVars prints a warning for each CVKIT_* variable that
// is not recognized, catching typos like CVKIT_METADAT.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, envPrefix) {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s (ignored)\n", name)
		}
	}
}
