package application

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"i18njs/internal/domain/catalog"
)

func TestCollectorMergesChainInOrder(t *testing.T) {
	primary := &stubSource{fragment: catalog.Catalog{
		"en": catalog.Catalog{"a": "primary", "b": "primary"},
	}}
	fallback := &stubSource{fragment: catalog.Catalog{
		"en": catalog.Catalog{"b": "fallback"},
		"fr": catalog.Catalog{"a": "un"},
	}}

	got, err := NewCollector(primary, fallback).Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := catalog.Catalog{
		"en": catalog.Catalog{"a": "primary", "b": "fallback"},
		"fr": catalog.Catalog{"a": "un"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestCollectorInitializesOnce(t *testing.T) {
	src := &stubSource{fragment: catalog.Catalog{"en": catalog.Catalog{"a": "1"}}}
	ready := &stubSource{initialized: true, fragment: catalog.Catalog{"fr": catalog.Catalog{"a": "1"}}}
	c := NewCollector(src, src, ready)

	for i := 0; i < 2; i++ {
		if _, err := c.Collect(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if src.initCalls != 1 {
		t.Fatalf("want 1 initialization, got %d", src.initCalls)
	}
	if ready.initCalls != 0 {
		t.Fatalf("initialized source must not be initialized again")
	}
}

func TestCollectorSkipsSourcesWithoutCatalog(t *testing.T) {
	empty := &stubSource{}
	src := &stubSource{fragment: catalog.Catalog{"en": catalog.Catalog{"a": "1"}}}
	got, err := NewCollector(empty, src, nil).Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected catalog %v", got)
	}
}

func TestCollectorPropagatesInitError(t *testing.T) {
	boom := errors.New("boom")
	ok := &stubSource{fragment: catalog.Catalog{"en": catalog.Catalog{"a": "1"}}}
	bad := &stubSource{initErr: boom}

	got, err := NewCollector(ok, bad).Collect(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if got != nil {
		t.Fatalf("no partial catalog expected, got %v", got)
	}
}

func TestCollectorDoesNotAliasFragments(t *testing.T) {
	src := &stubSource{fragment: catalog.Catalog{"en": catalog.Catalog{"a": "1"}}}
	got, _ := NewCollector(src).Collect(context.Background())
	got["en"].(catalog.Catalog)["a"] = "changed"
	if src.fragment["en"].(catalog.Catalog)["a"] != "1" {
		t.Fatalf("collected catalog aliases the source fragment")
	}
}

// sliceSource is a value-receiver source whose type cannot be used as a map
// key.
type sliceSource []string

func (s sliceSource) Initialized() bool                    { return true }
func (s sliceSource) Initialize(ctx context.Context) error { return nil }

func (s sliceSource) CatalogFragment() catalog.Catalog {
	c := catalog.Catalog{}
	for _, key := range s {
		c.SetDotted("en."+key, key)
	}
	return c
}

func TestCollectorAcceptsNonComparableSources(t *testing.T) {
	ptr := &stubSource{fragment: catalog.Catalog{"fr": catalog.Catalog{"a": "un"}}}
	got, err := NewCollector(sliceSource{"x"}, ptr, sliceSource{"y"}, ptr).Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := catalog.Catalog{
		"en": catalog.Catalog{"x": "x", "y": "y"},
		"fr": catalog.Catalog{"a": "un"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	if ptr.initCalls != 1 {
		t.Fatalf("want 1 initialization, got %d", ptr.initCalls)
	}
}
