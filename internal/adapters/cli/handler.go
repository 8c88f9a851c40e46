package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"i18njs/internal/ports/input"
)

// Handler runs export commands against the use case and prints results.
type Handler struct {
	exporter input.ExportUseCase
	out      io.Writer
}

func NewHandler(exporter input.ExportUseCase, out io.Writer) *Handler {
	return &Handler{exporter: exporter, out: out}
}

// Run dispatches one of the export commands.
func (h *Handler) Run(ctx context.Context, command string) error {
	switch command {
	case CmdExport:
		return h.exporter.Export(ctx)
	case CmdFlatten:
		return h.flatten(ctx)
	case CmdSegments:
		return h.segments(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (h *Handler) flatten(ctx context.Context) error {
	flat, err := h.exporter.Flattened(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(flat, "", "  ")
	if err != nil {
		return fmt.Errorf("encode flattened catalog: %w", err)
	}
	_, err = fmt.Fprintf(h.out, "%s\n", data)
	return err
}

func (h *Handler) segments(ctx context.Context) error {
	segments, err := h.exporter.Segments(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(segments))
	for name := range segments {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(h.out, "%s\t%v\n", name, segments[name].Locales()); err != nil {
			return err
		}
	}
	return nil
}
