package output

import (
	"context"

	"i18njs/internal/domain/catalog"
)

// Sink persists one resolved segment under filename, replacing any
// existing content.
type Sink interface {
	Save(ctx context.Context, filename string, c catalog.Catalog) error
}
