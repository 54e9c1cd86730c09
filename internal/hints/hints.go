// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForMetadataNotFound returns hints for a missing unit metadata file.
func ForMetadataNotFound(path string) string {
	return format("create " + path + " or point --metadata at your metadata file")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-cvkit/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-cvkit) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-cvkit") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForSectionNotFound returns hints listing the sections the metadata defines.
func ForSectionNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available sections: " + strings.Join(available, ", "))
}

// ForTemplateNotFound returns hints listing available letter templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available templates: " + strings.Join(available, ", "))
}

// ForLatexmkNotFound returns hints for a missing LaTeX toolchain.
func ForLatexmkNotFound() string {
	return format("install TeX Live (includes latexmk) or build .tex fragments only")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
