package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"i18njs/internal/domain"
	"i18njs/internal/domain/catalog"
	"i18njs/internal/domain/entities"
	"i18njs/pkg/interpolate"
)

// DefaultFilename is the file the whole catalog goes to when no segments
// are configured.
const DefaultFilename = "translations.js"

// Resolver turns the export configuration into output filename -> catalog.
type Resolver struct {
	fallbackFile string
}

// NewResolver returns a Resolver whose fallback segment is written to
// DefaultFilename inside exportDir.
func NewResolver(exportDir string) *Resolver {
	return &Resolver{fallbackFile: filepath.Join(exportDir, DefaultFilename)}
}

// Resolve computes every segment. Descriptors are applied in order; a later
// descriptor replaces the value of a filename set by an earlier one. Empty
// results produce no entry. All descriptors are validated before any
// filtering happens.
func (r *Resolver) Resolve(cfg *entities.ExportConfig, c catalog.Catalog, locales []string) (map[string]catalog.Catalog, error) {
	if cfg == nil || cfg.Translations == nil {
		return map[string]catalog.Catalog{r.fallbackFile: c.Clone()}, nil
	}
	if err := validate(cfg.Translations); err != nil {
		return nil, err
	}

	segments := make(map[string]catalog.Catalog)
	for _, d := range cfg.Translations {
		if interpolate.HasPlaceholder(d.File) {
			perLocale, err := segmentsPerLocale(d, c, locales)
			if err != nil {
				return nil, err
			}
			for name, sub := range perLocale {
				segments[name] = sub
			}
			continue
		}

		var result catalog.Catalog
		if d.SelectsAll() {
			result = c.Clone()
		} else {
			result = catalog.FilterAll(c, catalog.ParseScopes(d.Scopes()))
		}
		if len(result) > 0 {
			segments[d.File] = result
		}
	}
	return segments, nil
}

func segmentsPerLocale(d entities.SegmentDescriptor, c catalog.Catalog, locales []string) (map[string]catalog.Catalog, error) {
	out := make(map[string]catalog.Catalog)
	for _, locale := range locales {
		scopes := make([]catalog.Scope, 0, len(d.Scopes()))
		for _, s := range d.Scopes() {
			scopes = append(scopes, catalog.ParseScope(s).Prefix(locale))
		}
		result := catalog.FilterAll(c, scopes)
		if len(result) == 0 {
			continue
		}
		name, err := interpolate.Interpolate(d.File, map[string]string{"locale": locale})
		if err != nil {
			return nil, err
		}
		out[name] = result
	}
	return out, nil
}

func validate(descriptors []entities.SegmentDescriptor) error {
	for i, d := range descriptors {
		if strings.TrimSpace(d.File) == "" {
			return fmt.Errorf("segment %d: %w", i, domain.ErrMissingSegmentFile)
		}
		for _, s := range d.Only {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("segment %d (%s): %w: empty scope", i, d.File, domain.ErrInvalidScope)
			}
		}
	}
	return nil
}
