// Package engine wires the classifier to workbook I/O, the override store
// and metrics. It is the layer both the HTTP handlers and the CLI call.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/donaldgifford/canvas-classifier/internal/metrics"
	"github.com/donaldgifford/canvas-classifier/internal/store"
	"github.com/donaldgifford/canvas-classifier/internal/workbook"
	"github.com/donaldgifford/canvas-classifier/pkg/classify"
	"github.com/donaldgifford/canvas-classifier/pkg/sheet"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// Upload results recorded on metrics.UploadsTotal.
const (
	resultOK           = "ok"
	resultInvalid      = "invalid"
	resultUnrecognized = "unrecognized"
	resultError        = "error"
)

// Engine classifies text and workbooks against one catalog and the current
// manual override snapshot.
type Engine struct {
	classifier *classify.Classifier
	overrides  *OverrideCache
	store      store.Store
	log        *slog.Logger
}

// NewEngine creates an Engine around a classifier. The classifier's
// catalog overrides seed the override cache.
func NewEngine(c *classify.Classifier, opts ...EngineOption) *Engine {
	eng := &Engine{
		classifier: c,
		overrides:  NewOverrideCache(c.Catalog().OverrideMap()),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithStore enables database-backed overrides. Without a store only the
// catalog's static overrides apply.
func WithStore(s store.Store) EngineOption {
	return func(e *Engine) {
		e.store = s
	}
}

// Overrides returns the override cache.
func (eng *Engine) Overrides() *OverrideCache {
	return eng.overrides
}

// Classifier returns a classifier bound to the current override snapshot.
// The snapshot does not change for the lifetime of the returned value.
func (eng *Engine) Classifier() *classify.Classifier {
	return eng.classifier.WithOverrides(eng.overrides.Snapshot())
}

// Classify labels one free-text description, applying a manual override
// when itemCode has one.
func (eng *Engine) Classify(itemCode, text string) classify.Result {
	metrics.TextClassificationsTotal.Inc()
	return eng.Classifier().ExplainRow(itemCode, text)
}

// RefreshOverrides reloads database overrides and swaps in a new snapshot
// merged over the catalog's static overrides. It is a no-op without a
// store.
func (eng *Engine) RefreshOverrides(ctx context.Context) error {
	if eng.store == nil {
		return nil
	}

	dynamic, err := eng.store.AllOverrides(ctx)
	if err != nil {
		metrics.OverrideRefreshTotal.WithLabelValues(resultError).Inc()
		return fmt.Errorf("loading overrides: %w", err)
	}

	n := eng.overrides.Replace(dynamic)
	metrics.OverridesLoaded.Set(float64(n))
	metrics.OverrideRefreshTotal.WithLabelValues(resultOK).Inc()
	metrics.OverrideRefreshTimestamp.SetToCurrentTime()

	eng.log.Debug("overrides refreshed", "total", n, "dynamic", len(dynamic))
	return nil
}

// SheetReport summarizes one classified sheet.
type SheetReport struct {
	Name      string `json:"name"`
	HeaderRow int    `json:"header_row"`
	Rows      int    `json:"rows"`
	Labelled  int    `json:"labelled"`
}

// Report summarizes one workbook conversion.
type Report struct {
	Sheets      []SheetReport `json:"sheets"`
	EmptySheets []string      `json:"empty_sheets,omitempty"`
}

// Convert reads an xlsx workbook from r, classifies every sheet and writes
// the result workbook to w. Nothing is written unless every sheet was
// processed. A sheet whose header cannot be located fails the whole
// conversion with a *sheet.LayoutError; empty sheets are skipped.
func (eng *Engine) Convert(ctx context.Context, r io.Reader, w io.Writer) (*Report, error) {
	start := time.Now()
	result := resultError
	defer func() {
		metrics.UploadDuration.Observe(time.Since(start).Seconds())
		metrics.UploadsTotal.WithLabelValues(result).Inc()
	}()

	sheets, err := workbook.Read(r)
	if err != nil {
		result = resultInvalid
		return nil, err
	}

	c := meteredClassifier{c: eng.Classifier()}
	report := &Report{Sheets: make([]SheetReport, 0, len(sheets))}
	results := make([]domain.SheetResult, 0, len(sheets))

	for _, s := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := sheet.Process(s.Name, s.Rows, c)
		switch {
		case errors.Is(err, sheet.ErrEmptySheet):
			eng.log.Debug("skipping empty sheet", "sheet", s.Name)
			report.EmptySheets = append(report.EmptySheets, s.Name)
			continue
		case errors.Is(err, sheet.ErrUnrecognizedLayout):
			metrics.SheetsUnrecognizedTotal.Inc()
			result = resultUnrecognized
			return nil, err
		case err != nil:
			return nil, fmt.Errorf("processing sheet %q: %w", s.Name, err)
		}

		sr := summarize(&res)
		metrics.SheetsProcessedTotal.Inc()
		metrics.RowsClassifiedTotal.WithLabelValues(metrics.OutcomeSkipped).Add(float64(sr.Rows - classifiedRows(&res)))
		eng.log.Debug("sheet classified",
			"sheet", s.Name,
			"header_row", res.Header.HeaderRow,
			"rows", sr.Rows,
			"labelled", sr.Labelled,
		)

		report.Sheets = append(report.Sheets, sr)
		results = append(results, res)
	}

	if err := workbook.Write(w, results); err != nil {
		if errors.Is(err, workbook.ErrNoSheets) {
			result = resultUnrecognized
		}
		return nil, err
	}

	result = resultOK
	eng.log.Info("workbook converted",
		"sheets", len(report.Sheets),
		"empty_sheets", len(report.EmptySheets),
		"duration", time.Since(start),
	)
	return report, nil
}

func summarize(res *domain.SheetResult) SheetReport {
	sr := SheetReport{
		Name:      res.Name,
		HeaderRow: res.Header.HeaderRow,
		Rows:      len(res.Rows),
	}
	for i := range res.Rows {
		if res.Rows[i].ResultLabel != "" {
			sr.Labelled++
		}
	}
	return sr
}

// meteredClassifier records the outcome of every row classification.
type meteredClassifier struct {
	c *classify.Classifier
}

func (m meteredClassifier) ClassifyRow(itemCode, text string) string {
	res := m.c.ExplainRow(itemCode, text)
	switch {
	case res.Override:
		metrics.RowsClassifiedTotal.WithLabelValues(metrics.OutcomeOverride).Inc()
	case res.Label == "":
		metrics.RowsClassifiedTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
	default:
		metrics.RowsClassifiedTotal.WithLabelValues(metrics.OutcomeLabelled).Inc()
	}
	return res.Label
}

// classifiedRows returns how many kept rows went through classification,
// which is every row with an item code or quantity.
func classifiedRows(res *domain.SheetResult) int {
	n := 0
	for i := range res.Rows {
		if res.Rows[i].ItemCode != "" || res.Rows[i].Quantity != "" {
			n++
		}
	}
	return n
}
