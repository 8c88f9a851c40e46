package i18n

import (
	"fmt"

	"golang.org/x/text/language"

	"i18njs/internal/ports/output"
)

var _ output.LocaleRegistry = StaticLocales(nil)

// StaticLocales is a fixed, ordered locale registry.
type StaticLocales []string

// NewStaticLocales canonicalizes each tag ("pt-br" -> "pt-BR") and drops
// duplicates, keeping the first occurrence.
func NewStaticLocales(tags []string) (StaticLocales, error) {
	seen := make(map[string]bool, len(tags))
	out := make(StaticLocales, 0, len(tags))
	for _, raw := range tags {
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("i18n: invalid locale %q: %w", raw, err)
		}
		locale := tag.String()
		if seen[locale] {
			continue
		}
		seen[locale] = true
		out = append(out, locale)
	}
	return out, nil
}

func (l StaticLocales) Locales() []string { return l }
