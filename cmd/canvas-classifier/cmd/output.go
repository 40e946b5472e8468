package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/canvas-classifier/internal/api/client"
	"github.com/donaldgifford/canvas-classifier/pkg/classify"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printResult(w io.Writer, text string, r *classify.Result) error {
	tw := newTabWriter(w)
	tw.writef("Text:\t%s\n", text)
	tw.writef("Label:\t%s\n", orDash(r.Label))
	if !r.InDomain {
		return tw.finish()
	}
	tw.writef("Type:\t%s\n", orDash(r.BaseType))
	if r.Override {
		tw.writef("Override:\tyes\n")
	}
	if r.Shape != "" {
		tw.writef("Shape:\t%s\n", r.Shape)
	}
	if r.Size != nil {
		tw.writef("Size:\t%sx%s\n", classify.FormatNumber(r.Size.Width), classify.FormatNumber(r.Size.Height))
	}
	if r.Code != "" {
		tw.writef("Code:\t%s\n", r.Code)
	}
	if r.Thickness != "" {
		tw.writef("Thickness:\t%s\n", r.Thickness)
	}
	if r.Diameter != nil {
		tw.writef("Diameter:\t%s\n", classify.FormatNumber(*r.Diameter))
	}
	return tw.finish()
}

func printOverrideTable(w io.Writer, list *apiclient.OverrideList) error {
	tw := newTabWriter(w)
	tw.writef("ITEM CODE\tLABEL\tCODE\tUPDATED\n")
	for i := range list.Overrides {
		o := &list.Overrides[i]
		tw.writef("%s\t%s\t%s\t%s\n",
			truncate(o.ItemCode, 30),
			orDash(o.Label),
			orDash(o.Code),
			updatedAt(o),
		)
	}
	if list.Total > len(list.Overrides) {
		tw.writef("\nShowing %d-%d of %d\n", list.Offset+1, list.Offset+len(list.Overrides), list.Total)
	}
	return tw.finish()
}

func printOverrideDetail(w io.Writer, o *domain.ManualOverride) error {
	tw := newTabWriter(w)
	tw.writef("Item Code:\t%s\n", o.ItemCode)
	tw.writef("Label:\t%s\n", orDash(o.Label))
	tw.writef("Code:\t%s\n", orDash(o.Code))
	tw.writef("Updated:\t%s\n", updatedAt(o))
	return tw.finish()
}

func printCatalogSummary(w io.Writer, s *apiclient.CatalogSummary) error {
	tw := newTabWriter(w)
	tw.writef("Sizes:\t%d\n", s.Sizes)
	tw.writef("Type Rules:\t%s\n", strings.Join(s.TypeLabels, ", "))
	tw.writef("Default Label:\t%s\n", s.DefaultTypeLabel)
	tw.writef("Thickness Rules:\t%d\n", s.ThicknessRules)
	tw.writef("Size Tolerance:\t%s cm\n", classify.FormatNumber(s.SizeTolerance))
	tw.writef("Thickness Tolerance:\t%s cm\n", classify.FormatNumber(s.ThicknessTolerance))
	tw.writef("Overrides:\t%d static, %d active\n", s.StaticOverrides, s.ActiveOverrides)
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func updatedAt(o *domain.ManualOverride) string {
	if o.UpdatedAt == nil {
		return "-"
	}
	return o.UpdatedAt.Format("2006-01-02 15:04:05")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens s to maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
