package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/text/language"

	"i18njs/internal/domain/catalog"
	"i18njs/internal/ports/output"
)

var _ output.TranslationSource = (*TranslationSource)(nil)

const selectTranslations = `SELECT locale, key, value FROM translations ORDER BY locale, key`

// Querier is the subset of pgxpool.Pool used by TranslationSource.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// TranslationSource reads (locale, dotted key, value) rows from the
// translations table.
type TranslationSource struct {
	q           Querier
	catalog     catalog.Catalog
	initialized bool
}

func NewTranslationSource(q Querier) *TranslationSource {
	return &TranslationSource{q: q}
}

func (s *TranslationSource) Initialized() bool { return s.initialized }

// Initialize loads the whole table into memory. Locales are canonicalized
// ("pt-br" -> "pt-BR") so they line up with the locale registry; a row whose
// locale is not a valid BCP 47 tag aborts the load.
func (s *TranslationSource) Initialize(ctx context.Context) error {
	rows, err := s.q.Query(ctx, selectTranslations)
	if err != nil {
		return fmt.Errorf("query translations: %w", err)
	}
	defer rows.Close()

	c := catalog.Catalog{}
	for rows.Next() {
		var locale, key, value string
		if err := rows.Scan(&locale, &key, &value); err != nil {
			return fmt.Errorf("scan translation: %w", err)
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("translation %q: invalid locale %q: %w", key, locale, err)
		}
		c.Set(append([]string{tag.String()}, strings.Split(key, ".")...), value)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read translations: %w", err)
	}

	s.catalog = c
	s.initialized = true
	return nil
}

// CatalogFragment returns a copy of the loaded rows, or nil before
// Initialize.
func (s *TranslationSource) CatalogFragment() catalog.Catalog {
	return s.catalog.Clone()
}
