package output

import (
	"context"

	"i18njs/internal/domain/catalog"
)

// TranslationSource is one backend of the translation chain.
type TranslationSource interface {
	// Initialized reports whether Initialize already completed.
	Initialized() bool
	// Initialize loads the backend. Callers invoke it at most once per
	// source; implementations may be called again after a failure.
	Initialize(ctx context.Context) error
	// CatalogFragment returns the translations held by the backend, rooted
	// at locale keys. A nil fragment means the source exposes no catalog.
	CatalogFragment() catalog.Catalog
}

// LocaleRegistry supplies the configured locales. An empty list means
// "whatever the catalog contains".
type LocaleRegistry interface {
	Locales() []string
}
