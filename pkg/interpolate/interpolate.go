// Package interpolate expands I18n-style placeholders in strings such as
// output filename patterns ("public/js/%{locale}.js").
package interpolate

import (
	"fmt"
	"regexp"
	"strings"

	"i18njs/internal/domain"
)

// pattern matches "%%", "%{name}" and "%<name>verb".
var pattern = regexp.MustCompile(`%%|%\{(\w+)\}|%<(\w+)>(.*?\d*\.?\d*[bBdiouxXeEfgGcps])`)

// HasPlaceholder reports whether s contains any interpolation sequence.
func HasPlaceholder(s string) bool {
	return pattern.MatchString(s)
}

// Interpolate replaces every placeholder in s with its value. "%%" becomes
// a literal "%". A placeholder without a value is an error, and so is a
// "%<name>verb" whose verb does not format strings (only "s", with optional
// flags and width, is accepted).
func Interpolate(s string, values map[string]string) (string, error) {
	var missing, badVerb string
	out := pattern.ReplaceAllStringFunc(s, func(m string) string {
		if m == "%%" {
			return "%"
		}
		sub := pattern.FindStringSubmatch(m)
		name, verb := sub[1], ""
		if name == "" {
			name, verb = sub[2], sub[3]
		}
		v, ok := values[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		if verb != "" {
			if !strings.HasSuffix(verb, "s") {
				if badVerb == "" {
					badVerb = m
				}
				return m
			}
			return fmt.Sprintf("%"+verb, v)
		}
		return v
	})
	if badVerb != "" {
		return "", fmt.Errorf("interpolate %q: %w: %s", s, domain.ErrInvalidInterpolation, badVerb)
	}
	if missing != "" {
		return "", fmt.Errorf("interpolate %q: %w: %s", s, domain.ErrMissingInterpolation, missing)
	}
	return out, nil
}
