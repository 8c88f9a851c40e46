// Package configfile reads the export configuration (segments and their
// scopes) from a YAML or TOML file.
package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"i18njs/internal/domain"
	"i18njs/internal/domain/entities"
	"i18njs/internal/ports/output"
)

var _ output.ConfigLoader = (*Loader)(nil)

// Loader reads one configuration file. The path is fixed at construction.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the configuration file read by the loader.
func (l *Loader) Path() string { return l.path }

// Load parses the file. A missing file is not an error: it returns
// (nil, nil) so the caller falls back to a single segment.
func (l *Loader) Load() (*entities.ExportConfig, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	return Parse(data, filepath.Ext(l.path))
}

// Parse decodes data according to ext (".yml", ".yaml" or ".toml").
func Parse(data []byte, ext string) (*entities.ExportConfig, error) {
	var raw map[string]any
	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedConfig, ext)
	}
	return decode(raw)
}

func decode(raw map[string]any) (*entities.ExportConfig, error) {
	cfg := &entities.ExportConfig{}
	list, ok := raw["translations"]
	if !ok || list == nil {
		return cfg, nil
	}
	items, ok := list.([]any)
	if !ok {
		return nil, fmt.Errorf("translations: expected a list, got %T", list)
	}

	cfg.Translations = make([]entities.SegmentDescriptor, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("translations[%d]: expected a mapping, got %T", i, item)
		}
		file, _ := m["file"].(string)
		if strings.TrimSpace(file) == "" {
			return nil, fmt.Errorf("translations[%d]: %w", i, domain.ErrMissingSegmentFile)
		}
		only, err := decodeOnly(m["only"])
		if err != nil {
			return nil, fmt.Errorf("translations[%d] (%s): %w", i, file, err)
		}
		cfg.Translations = append(cfg.Translations, entities.SegmentDescriptor{File: file, Only: only})
	}
	return cfg, nil
}

// decodeOnly accepts a single scope or a list of scopes.
func decodeOnly(v any) ([]string, error) {
	switch only := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{only}, nil
	case []any:
		out := make([]string, 0, len(only))
		for _, s := range only {
			str, ok := s.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %v", domain.ErrInvalidScope, s)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidScope, v)
	}
}
