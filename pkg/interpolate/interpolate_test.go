package interpolate

import (
	"errors"
	"testing"

	"i18njs/internal/domain"
)

func TestHasPlaceholder(t *testing.T) {
	tests := map[string]bool{
		"public/js/%{locale}.js":  true,
		"public/js/%<locale>s.js": true,
		"100%%.js":                true,
		"public/js/app.js":        false,
		"public/js/%locale.js":    false,
	}
	for in, want := range tests {
		if got := HasPlaceholder(in); got != want {
			t.Errorf("%q: want %v, got %v", in, want, got)
		}
	}
}

func TestInterpolate(t *testing.T) {
	values := map[string]string{"locale": "pt-BR"}
	tests := []struct {
		in, want string
	}{
		{"out/%{locale}.js", "out/pt-BR.js"},
		{"out/%<locale>s.js", "out/pt-BR.js"},
		{"out/%{locale}/%{locale}.js", "out/pt-BR/pt-BR.js"},
		{"out/100%%-%{locale}.js", "out/100%-pt-BR.js"},
		{"out/app.js", "out/app.js"},
	}
	for _, tt := range tests {
		got, err := Interpolate(tt.in, values)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: want %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestInterpolateMissingValue(t *testing.T) {
	_, err := Interpolate("out/%{region}.js", map[string]string{"locale": "en"})
	if !errors.Is(err, domain.ErrMissingInterpolation) {
		t.Fatalf("want ErrMissingInterpolation, got %v", err)
	}
}

func TestInterpolateRejectsNonStringVerbs(t *testing.T) {
	for _, in := range []string{"out/%<locale>d.js", "out/%<locale>p.js", "out/%<locale>.2f.js"} {
		_, err := Interpolate(in, map[string]string{"locale": "en"})
		if !errors.Is(err, domain.ErrInvalidInterpolation) {
			t.Errorf("%q: want ErrInvalidInterpolation, got %v", in, err)
		}
	}
	got, err := Interpolate("out/%<locale>-4s.js", map[string]string{"locale": "en"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "out/en  .js" {
		t.Fatalf("want padded locale, got %q", got)
	}
}
