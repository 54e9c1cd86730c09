package assets

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*
var templates embed.FS

//go:embed bodies/*
var bodies embed.FS

// templateExt is the extension of letter template files.
const templateExt = ".tex.tmpl"

// EmbeddedLoader loads assets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a letter template from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + templateExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadBody loads a default letter body from embedded assets by name.
func (e *EmbeddedLoader) LoadBody(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := bodies.ReadFile("bodies/" + name + ".tex")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBodyNotFound, name)
	}

	return string(content), nil
}

// ListTemplates returns the names of embedded letter templates.
func (e *EmbeddedLoader) ListTemplates() []string {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), templateExt) {
			names = append(names, strings.TrimSuffix(entry.Name(), templateExt))
		}
	}
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
