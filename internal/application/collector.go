package application

import (
	"context"
	"fmt"
	"reflect"

	"i18njs/internal/domain/catalog"
	"i18njs/internal/ports/output"
)

// Collector gathers the full catalog from an ordered chain of sources.
// Later sources override earlier ones on conflicting leaves.
type Collector struct {
	sources []output.TranslationSource
}

func NewCollector(sources ...output.TranslationSource) *Collector {
	return &Collector{sources: sources}
}

// Collect initializes each distinct source once and deep-merges the
// fragments. The first initialization error aborts the collection. Repeats are
// recognized by pointer identity; sources that are not pointers are always
// visited.
func (c *Collector) Collect(ctx context.Context) (catalog.Catalog, error) {
	all := catalog.Catalog{}
	seen := make(map[output.TranslationSource]bool, len(c.sources))
	for i, src := range c.sources {
		if src == nil {
			continue
		}
		if reflect.ValueOf(src).Kind() == reflect.Pointer {
			if seen[src] {
				continue
			}
			seen[src] = true
		}

		if !src.Initialized() {
			if err := src.Initialize(ctx); err != nil {
				return nil, fmt.Errorf("initialize source %d (%T): %w", i, src, err)
			}
		}
		fragment := src.CatalogFragment()
		if fragment == nil {
			continue
		}
		catalog.MergeInto(all, fragment)
	}
	return all, nil
}
