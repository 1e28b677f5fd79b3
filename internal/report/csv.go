// Package report enriches a tabular price-monitoring feed with the
// calculated profitability columns. It is a thin collaborator around the
// metrics calculator: one input row maps to exactly one output row, with
// no aggregation across rows.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/ecomwithmo-gif/Tools-Dashboard/internal/feed"
	"github.com/ecomwithmo-gif/Tools-Dashboard/internal/metrics"
)

// Enricher streams a header-bearing CSV feed through the calculator.
type Enricher struct {
	calc   *metrics.Calculator
	logger *slog.Logger
}

// Summary describes one enrichment run.
type Summary struct {
	RunID uuid.UUID `json:"run_id"`
	Rows  int       `json:"rows"`
}

func NewEnricher(logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{
		calc:   metrics.NewCalculator(),
		logger: logger,
	}
}

// EnrichFile runs Enrich from one CSV file to another.
func (e *Enricher) EnrichFile(inPath, outPath string) (*Summary, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	defer out.Close()

	return e.Enrich(in, out)
}

// Enrich copies the feed row by row, appending the calculated columns.
// The first row must be a header naming the feed fields. Input columns
// that collide with output column names (stale metrics from an earlier
// run) are dropped rather than duplicated.
func (e *Enricher) Enrich(in io.Reader, out io.Writer) (*Summary, error) {
	summary := &Summary{RunID: uuid.New()}
	logger := e.logger.With("run_id", summary.RunID.String())

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1 // upstream feeds are ragged

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed header: %w", err)
	}

	keep := passthroughColumns(header)
	writer := csv.NewWriter(out)
	outHeader := make([]string, 0, len(keep)+len(metrics.OutputKeys))
	for _, i := range keep {
		outHeader = append(outHeader, header[i])
	}
	outHeader = append(outHeader, metrics.OutputKeys...)
	if err := writer.Write(outHeader); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read feed row %d: %w", summary.Rows+1, err)
		}

		rec := recordFromRow(header, row)
		result := e.calc.Calculate(rec)

		outRow := make([]string, 0, len(outHeader))
		for _, i := range keep {
			if i < len(row) {
				outRow = append(outRow, row[i])
			} else {
				outRow = append(outRow, "")
			}
		}
		for _, key := range metrics.OutputKeys {
			outRow = append(outRow, result[key])
		}
		if err := writer.Write(outRow); err != nil {
			return nil, fmt.Errorf("failed to write report row %d: %w", summary.Rows+1, err)
		}
		summary.Rows++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}

	logger.Info("feed enriched", "rows", summary.Rows)
	return summary, nil
}

// passthroughColumns returns the indexes of input columns to copy into
// the report, skipping columns the calculator will rewrite.
func passthroughColumns(header []string) []int {
	owned := make(map[string]bool, len(metrics.OutputKeys))
	for _, key := range metrics.OutputKeys {
		owned[key] = true
	}
	keep := make([]int, 0, len(header))
	for i, name := range header {
		if !owned[name] {
			keep = append(keep, i)
		}
	}
	return keep
}

// recordFromRow maps a CSV row onto the feed record contract. Short rows
// simply leave trailing fields absent.
func recordFromRow(header, row []string) feed.Record {
	rec := make(feed.Record, len(header))
	for i, name := range header {
		if i < len(row) {
			rec[name] = row[i]
		}
	}
	return rec
}
