package cvkit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alisajid/go-cvkit/internal/assets"
	"github.com/alisajid/go-cvkit/internal/metadata"
)

// metadataSource abstracts metadata loading to allow in-memory
// documents in tests.
type metadataSource interface {
	LoadDocument() (*metadata.Document, error)
}

// unitReader abstracts unit file access.
type unitReader interface {
	ReadUnit(section, unit string) ([]byte, error)
}

// fileMetadataSource loads metadata from a file path.
type fileMetadataSource struct {
	path string
}

func (s fileMetadataSource) LoadDocument() (*metadata.Document, error) {
	return metadata.Load(s.path)
}

// dirUnitReader reads units from <dir>/<section>/<unit>.tex.
type dirUnitReader struct {
	dir string
}

func (r dirUnitReader) ReadUnit(section, unit string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.dir, section, unit+".tex"))
}

type serviceConfig struct {
	metadataPath string
	unitsDir     string
}

// Service orchestrates section assembly, cover letter rendering, and
// bibliography splitting for one workspace.
type Service struct {
	cfg    serviceConfig
	source metadataSource
	units  unitReader
	assets assets.AssetLoader
}

// Option customizes a Service.
type Option func(*Service)

// WithMetadataPath sets the unit metadata file path.
func WithMetadataPath(path string) Option {
	return func(s *Service) { s.cfg.metadataPath = path }
}

// WithUnitsDir sets the directory holding per-section unit files.
func WithUnitsDir(dir string) Option {
	return func(s *Service) { s.cfg.unitsDir = dir }
}

// WithMetadataSource injects a metadata source (e.g., by tests).
func WithMetadataSource(src metadataSource) Option {
	return func(s *Service) { s.source = src }
}

// WithUnitReader injects a unit reader (e.g., by tests).
func WithUnitReader(r unitReader) Option {
	return func(s *Service) { s.units = r }
}

// WithAssetLoader injects a template asset loader.
func WithAssetLoader(loader assets.AssetLoader) Option {
	return func(s *Service) { s.assets = loader }
}

// New creates a Service with default configuration.
// Use options to customize paths or inject dependencies.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			metadataPath: DefaultMetadataFile,
			unitsDir:     DefaultUnitsDir,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.source == nil {
		s.source = fileMetadataSource{path: s.cfg.metadataPath}
	}
	if s.units == nil {
		s.units = dirUnitReader{dir: s.cfg.unitsDir}
	}
	if s.assets == nil {
		s.assets = assets.NewEmbeddedLoader()
	}

	return s
}

// AssembleSection selects units by tags, orders them by priority, and
// concatenates their LaTeX bodies.
// The context is used for cancellation between pipeline stages.
func (s *Service) AssembleSection(ctx context.Context, input AssembleInput) (*AssembleResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.source.LoadDocument()
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	section := doc.Section(input.Section)
	if section == nil {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, input.Section)
	}

	selected := selectUnits(section, input)

	result := &AssembleResult{Section: input.Section}
	var bodies []string
	for _, unit := range selected {
		raw, err := s.units.ReadUnit(input.Section, unit.Name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				result.Missing = append(result.Missing, unit.Name)
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrUnitRead, unit.Name, err)
		}

		body := strings.TrimSpace(string(raw))
		if body == "" {
			continue
		}
		bodies = append(bodies, body)
		result.Units = append(result.Units, UnitRef{
			Name:     unit.Name,
			Priority: unit.Priority(),
			Tags:     unit.Tags(),
		})
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if len(bodies) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptySection, input.Section)
	}

	result.Content = strings.Join(bodies, "\n\n")
	if input.IncludeHeader {
		result.Content = SectionHeader(input.Section) + "\n\n" + result.Content
	}

	return result, nil
}

// selectUnits filters a section's units by include and exclude tags,
// sorts them by priority, and applies the item limit. Document order
// breaks priority ties.
func selectUnits(section *metadata.Section, input AssembleInput) []*metadata.Unit {
	var selected []*metadata.Unit
	for _, unit := range section.Units {
		if unit.HasAnyTag(input.ExcludeTags) {
			continue
		}
		if len(input.Tags) > 0 && !unit.HasAnyTag(input.Tags) {
			continue
		}
		selected = append(selected, unit)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority() < selected[j].Priority()
	})

	if input.MaxItems > 0 && len(selected) > input.MaxItems {
		selected = selected[:input.MaxItems]
	}

	return selected
}

// Sections returns the section names defined in the metadata file, in
// document order.
func (s *Service) Sections() ([]string, error) {
	doc, err := s.source.LoadDocument()
	if err != nil {
		return nil, err
	}
	return doc.SectionNames(), nil
}
