package application

import (
	"context"
	"fmt"
	"log"
	"sort"

	"i18njs/internal/domain/catalog"
	"i18njs/internal/ports/input"
	"i18njs/internal/ports/output"
)

var _ input.ExportUseCase = (*ExportService)(nil)

// ExportService runs collect -> resolve -> persist.
type ExportService struct {
	config    output.ConfigLoader
	collector *Collector
	resolver  *Resolver
	locales   output.LocaleRegistry
	sink      output.Sink
}

func NewExportService(
	config output.ConfigLoader,
	collector *Collector,
	resolver *Resolver,
	locales output.LocaleRegistry,
	sink output.Sink,
) *ExportService {
	return &ExportService{
		config:    config,
		collector: collector,
		resolver:  resolver,
		locales:   locales,
		sink:      sink,
	}
}

// Segments loads the configuration, collects the catalog and resolves every
// segment. Nothing is written.
func (s *ExportService) Segments(ctx context.Context) (map[string]catalog.Catalog, error) {
	cfg, err := s.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load export config: %w", err)
	}
	all, err := s.collector.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect translations: %w", err)
	}
	return s.resolver.Resolve(cfg, all, s.availableLocales(all))
}

// Export resolves every segment in memory, then hands each one to the sink
// in filename order. The first sink error is returned.
func (s *ExportService) Export(ctx context.Context) error {
	segments, err := s.Segments(ctx)
	if err != nil {
		return err
	}
	for _, name := range sortedNames(segments) {
		if err := s.sink.Save(ctx, name, segments[name]); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
	}
	log.Printf("✅ %d segment(s) exported", len(segments))
	return nil
}

// Flattened deep-merges every segment and returns the result with keys
// sorted at every level.
func (s *ExportService) Flattened(ctx context.Context) (catalog.Ordered, error) {
	segments, err := s.Segments(ctx)
	if err != nil {
		return nil, err
	}
	merged := catalog.Catalog{}
	for _, name := range sortedNames(segments) {
		catalog.MergeInto(merged, segments[name])
	}
	return catalog.Sorted(merged), nil
}

func (s *ExportService) availableLocales(all catalog.Catalog) []string {
	if s.locales != nil {
		if locales := s.locales.Locales(); len(locales) > 0 {
			return locales
		}
	}
	return all.Locales()
}

func sortedNames(segments map[string]catalog.Catalog) []string {
	names := make([]string, 0, len(segments))
	for name := range segments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
