package assets

import (
	"fmt"
	"strings"
)

// DefaultTemplateName is the name of the built-in letter template.
const DefaultTemplateName = "classic"

// DefaultBodyName is the name of the built-in letter body.
const DefaultBodyName = "default"

// AssetLoader defines the contract for loading letter templates and bodies.
// Implementations may load from embedded assets or the filesystem.
type AssetLoader interface {
	// LoadTemplate loads a letter template by name (without the .tex.tmpl
	// extension). Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadBody loads a default letter body by name (without the .tex
	// extension). Returns ErrBodyNotFound if the body doesn't exist.
	LoadBody(name string) (string, error)

	// ListTemplates returns the names of available letter templates.
	ListTemplates() []string
}

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path
// separators, dots, or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
