package application

import (
	"context"
	"errors"

	"i18njs/internal/domain/catalog"
	"i18njs/internal/domain/entities"
)

type stubSource struct {
	fragment    catalog.Catalog
	initialized bool
	initCalls   int
	initErr     error
}

func (s *stubSource) Initialized() bool { return s.initialized }

func (s *stubSource) Initialize(ctx context.Context) error {
	s.initCalls++
	if s.initErr != nil {
		return s.initErr
	}
	s.initialized = true
	return nil
}

func (s *stubSource) CatalogFragment() catalog.Catalog { return s.fragment }

type stubLocales []string

func (l stubLocales) Locales() []string { return l }

type stubConfig struct {
	cfg *entities.ExportConfig
	err error
}

func (c stubConfig) Load() (*entities.ExportConfig, error) { return c.cfg, c.err }

type savedSegment struct {
	name    string
	catalog catalog.Catalog
}

type memorySink struct {
	saved  []savedSegment
	failOn string
}

var errSinkFailed = errors.New("disk full")

func (s *memorySink) Save(ctx context.Context, filename string, c catalog.Catalog) error {
	if filename == s.failOn {
		return errSinkFailed
	}
	s.saved = append(s.saved, savedSegment{name: filename, catalog: c})
	return nil
}
