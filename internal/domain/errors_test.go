package domain

import (
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("segment 2: %w", ErrMissingSegmentFile)
	if got := Code(wrapped); got != "missing_segment_file" {
		t.Fatalf("want missing_segment_file, got %q", got)
	}
	if got := Code(fmt.Errorf("boom")); got != "" {
		t.Fatalf("want empty code, got %q", got)
	}
	if got := Code(nil); got != "" {
		t.Fatalf("want empty code for nil, got %q", got)
	}
}

func TestCodeInvalidInterpolation(t *testing.T) {
	if got := Code(fmt.Errorf("x: %w", ErrInvalidInterpolation)); got != "invalid_interpolation" {
		t.Fatalf("want invalid_interpolation, got %q", got)
	}
}
