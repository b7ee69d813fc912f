package exporter

import (
	"context"
	"log/slog"

	"github.com/ethandillon/DreamJobRealityCheck/internal/files"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

// TableExporter writes the cleaned wage table and the combined career table
type TableExporter struct {
	csvWriter *CSVWriter
	files     *files.Manager
	logger    *slog.Logger
	bom       bool
}

// NewTableExporter creates a new table exporter
func NewTableExporter(manager *files.Manager, logger *slog.Logger) *TableExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TableExporter{
		csvWriter: NewCSVWriter(manager, logger),
		files:     manager,
		logger:    logger.With(slog.String("component", "table_exporter")),
	}
}

// WithBOM makes later writes start with a UTF-8 byte order mark
func (e *TableExporter) WithBOM(enabled bool) *TableExporter {
	e.bom = enabled
	return e
}

// WriteWages writes records in the cleaned wage column order, keeping
// their input order.
func (e *TableExporter) WriteWages(ctx context.Context, path string, records []domain.WageRecord) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = wageRow(r)
	}
	return e.write(ctx, "Cleaned data saved", path, domain.CleanedWageColumns, rows)
}

// WriteCombined writes records in the combined column order, keeping their
// input order.
func (e *TableExporter) WriteCombined(ctx context.Context, path string, records []domain.CombinedRecord) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = combinedRow(r)
	}
	return e.write(ctx, "Combined data saved", path, domain.CombinedColumns, rows)
}

func (e *TableExporter) write(ctx context.Context, msg, path string, headers []string, rows [][]string) error {
	replaced := e.files.FileExists(path)

	err := e.csvWriter.WriteCSV(path, WriteOptions{
		Headers:   headers,
		Records:   rows,
		BOMPrefix: e.bom,
	})
	if err != nil {
		return err
	}

	attrs := []any{
		slog.String("file", path),
		slog.Int("rows", len(rows)),
		slog.Bool("replaced", replaced),
	}
	if size, err := e.files.GetFileSize(path); err == nil {
		attrs = append(attrs, slog.Int64("bytes", size))
	}
	e.logger.InfoContext(ctx, msg, attrs...)
	return nil
}

// wageRow follows domain.CleanedWageColumns
func wageRow(r domain.WageRecord) []string {
	return []string{
		r.AreaTitle,
		r.OccCode,
		r.OccTitle,
		r.TotEmp.String(),
		r.Pct10.String(),
		r.Pct25.String(),
		r.Median.String(),
		r.Pct75.String(),
		r.Pct90.String(),
	}
}

// combinedRow follows domain.CombinedColumns
func combinedRow(r domain.CombinedRecord) []string {
	return []string{
		r.AreaTitle,
		r.OccCode,
		r.OccTitle,
		r.Education.String(),
		r.Experience.String(),
		r.TotEmp.String(),
		r.Median.String(),
		r.Pct10.String(),
		r.Pct25.String(),
		r.Pct75.String(),
		r.Pct90.String(),
	}
}
