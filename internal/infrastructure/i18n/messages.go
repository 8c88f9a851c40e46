package i18n

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"i18njs/internal/domain/catalog"
	"i18njs/internal/ports/output"
)

// Ensure MessageSource implements the output.TranslationSource port.
var _ output.TranslationSource = (*MessageSource)(nil)

var messageExts = map[string]bool{".toml": true, ".json": true, ".yaml": true, ".yml": true}

// MessageSource exposes go-i18n message files (active.en.toml, fr.yaml, ...)
// as a catalog. Dotted message IDs become nested keys under the file's
// language tag.
//
// go-i18n reserves the keys id, description, hash, leftDelim, rightDelim,
// zero, one, two, few, many and other: a nested table using them is read as
// a single (possibly plural) message. A table that mixes reserved and
// ordinary keys, e.g. errors = {description = "...", title = "..."}, is
// rejected by go-i18n and fails Initialize. Such catalogs need another
// source, such as the database.
type MessageSource struct {
	fsys        fs.FS
	bundle      *i18n.Bundle
	files       []*i18n.MessageFile
	initialized bool
}

// NewMessageSource builds a source reading every message file found under
// fsys. defaultLocale seeds the go-i18n bundle (e.g. "en").
func NewMessageSource(fsys fs.FS, defaultLocale string) *MessageSource {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	return &MessageSource{fsys: fsys, bundle: bundle}
}

func (s *MessageSource) Initialized() bool { return s.initialized }

// Initialize loads every message file in lexical path order. Any file that
// fails to parse aborts the load.
func (s *MessageSource) Initialize(ctx context.Context) error {
	var files []*i18n.MessageFile
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !messageExts[strings.ToLower(path.Ext(p))] {
			return nil
		}
		mf, err := s.bundle.LoadMessageFileFS(s.fsys, p)
		if err != nil {
			return fmt.Errorf("i18n: load %s: %w", p, err)
		}
		if len(mf.Messages) == 0 {
			log.Printf("i18n: %s has no messages", p)
		}
		files = append(files, mf)
		return nil
	})
	if err != nil {
		return err
	}

	s.files = files
	s.initialized = true
	return nil
}

// CatalogFragment returns the loaded messages, or nil before Initialize.
// Files loaded later override earlier ones on the same key.
func (s *MessageSource) CatalogFragment() catalog.Catalog {
	if !s.initialized {
		return nil
	}
	out := catalog.Catalog{}
	for _, mf := range s.files {
		locale := mf.Tag.String()
		for _, msg := range mf.Messages {
			p := append([]string{locale}, strings.Split(msg.ID, ".")...)
			out.Set(p, messageValue(msg))
		}
	}
	return out
}

// messageValue returns the plain text of msg, or a mapping of plural forms
// when msg defines any form besides "other".
func messageValue(msg *i18n.Message) any {
	forms := []struct{ key, text string }{
		{"zero", msg.Zero},
		{"one", msg.One},
		{"two", msg.Two},
		{"few", msg.Few},
		{"many", msg.Many},
	}
	plural := catalog.Catalog{}
	for _, f := range forms {
		if f.text != "" {
			plural[f.key] = f.text
		}
	}
	if len(plural) == 0 {
		return msg.Other
	}
	if msg.Other != "" {
		plural["other"] = msg.Other
	}
	return plural
}
