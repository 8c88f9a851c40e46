package input

import (
	"context"

	"i18njs/internal/domain/catalog"
)

type ExportUseCase interface {
	Export(ctx context.Context) error
	Segments(ctx context.Context) (map[string]catalog.Catalog, error)
	Flattened(ctx context.Context) (catalog.Ordered, error)
}
