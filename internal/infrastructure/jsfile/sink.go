// Package jsfile writes resolved segments as JavaScript files that assign
// each locale into the global I18n.translations registry.
package jsfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"i18njs/internal/domain/catalog"
	"i18njs/internal/ports/output"
)

var _ output.Sink = (*Sink)(nil)

const registryGuard = "I18n.translations || (I18n.translations = {});\n"

type Sink struct{}

func NewSink() *Sink { return &Sink{} }

// Render returns the file content for c. Locales are emitted in sorted
// order so the same catalog always renders to the same bytes.
func Render(c catalog.Catalog) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(registryGuard)
	for _, locale := range c.Locales() {
		key, err := json.Marshal(locale)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c[locale])
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", locale, err)
		}
		fmt.Fprintf(&b, "I18n.translations[%s] = %s;\n", key, value)
	}
	return b.Bytes(), nil
}

// Save renders c and replaces filename with it. Parent directories are
// created as needed; the content goes through a temporary file so a failed
// write never leaves a partial file behind.
func (s *Sink) Save(ctx context.Context, filename string, c catalog.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Render(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("replace %s: %w", filename, err)
	}
	log.Printf("i18n-js: wrote %s", filename)
	return nil
}
