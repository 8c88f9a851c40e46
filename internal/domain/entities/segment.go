package entities

import "i18njs/internal/domain/catalog"

// SelectAll is the default scope of a segment: the whole catalog.
const SelectAll = catalog.Wildcard

// SegmentDescriptor names one output file and the scopes it selects. File
// may contain a %{locale} placeholder to split the segment per locale.
type SegmentDescriptor struct {
	File string
	Only []string
}

// Scopes returns Only, defaulting to SelectAll.
func (d SegmentDescriptor) Scopes() []string {
	if len(d.Only) == 0 {
		return []string{SelectAll}
	}
	return d.Only
}

// SelectsAll reports whether the descriptor selects the entire catalog.
func (d SegmentDescriptor) SelectsAll() bool {
	s := d.Scopes()
	return len(s) == 1 && s[0] == SelectAll
}

// ExportConfig is the parsed export configuration. A nil Translations means
// the configuration defines no segments.
type ExportConfig struct {
	Translations []SegmentDescriptor
}
