package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
	"github.com/ethandillon/DreamJobRealityCheck/internal/validation"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

// NullPolicy decides which rows are dropped for missing key measures
type NullPolicy string

const (
	// DropWhenBoth drops rows missing total employment and median wage.
	// The per-area all-occupations row, which often lacks percentiles,
	// survives under this policy.
	DropWhenBoth NullPolicy = "both"

	// DropWhenEither drops rows missing total employment or median wage
	DropWhenEither NullPolicy = "either"
)

// ParseNullPolicy validates a configured policy name
func ParseNullPolicy(s string) (NullPolicy, error) {
	switch NullPolicy(s) {
	case DropWhenBoth, DropWhenEither:
		return NullPolicy(s), nil
	}
	return "", apperrors.NewConfigError(fmt.Sprintf("unknown null policy %q", s), nil)
}

// NormalizeOptions configures the wage survey normalizer
type NormalizeOptions struct {
	// Sheet is the worksheet to read; empty means the first sheet
	Sheet      string
	Sentinels  []string
	NullPolicy NullPolicy
	// InputHint is shown when the survey workbook is missing
	InputHint string
}

// NormalizeReport carries the row counts of each normalization step
type NormalizeReport struct {
	RowsRead          int
	CrossIndustry     int
	DetailedOrTotal   int
	DuplicatesRemoved int
	DroppedMissing    int
	RowsWritten       int
	// UnparseableCells counts non-sentinel numeric cells that were not numbers
	UnparseableCells int
	// MalformedOccCodes counts written rows whose code is not DD-DDDD
	MalformedOccCodes int
	// NullCells counts null numeric cells per column in the cleaned table
	NullCells map[string]int
}

// Normalizer turns the raw wage survey workbook into the cleaned wage table
type Normalizer struct {
	opts      NormalizeOptions
	logger    *slog.Logger
	validator *validation.FileValidator
}

// NewNormalizer creates a normalizer
func NewNormalizer(opts NormalizeOptions, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.NullPolicy == "" {
		opts.NullPolicy = DropWhenBoth
	}
	return &Normalizer{
		opts:      opts,
		logger:    logger.With(slog.String("component", "normalizer")),
		validator: validation.NewFileValidator(logger),
	}
}

// NormalizeFile reads the survey workbook at path and returns the cleaned table
func (n *Normalizer) NormalizeFile(ctx context.Context, path string) ([]domain.WageRecord, NormalizeReport, error) {
	if err := n.validator.ValidateInput(validation.InputFile{
		Path: path,
		Kind: validation.KindExcel,
		Hint: n.opts.InputHint,
	}); err != nil {
		return nil, NormalizeReport{}, err
	}

	n.logger.InfoContext(ctx, "File found. Starting data processing", slog.String("file", path))

	sheet, err := ReadSheet(path, n.opts.Sheet, 0)
	if err != nil {
		return nil, NormalizeReport{}, err
	}

	n.logger.InfoContext(ctx, "Initial data loaded",
		slog.String("sheet", sheet.Name),
		slog.Int("rows", len(sheet.Rows)))

	return n.Normalize(ctx, sheet)
}

// Normalize applies the cleaning steps to an already loaded sheet
func (n *Normalizer) Normalize(ctx context.Context, sheet *Sheet) ([]domain.WageRecord, NormalizeReport, error) {
	records, unparseable, err := ParseWageRows(sheet, n.opts.Sentinels)
	if err != nil {
		return nil, NormalizeReport{}, err
	}

	report := NormalizeReport{RowsRead: len(records), UnparseableCells: unparseable}
	if unparseable > 0 {
		n.logger.WarnContext(ctx, "Numeric cells could not be parsed and were set to null",
			slog.Int("cells", unparseable))
	}

	records = FilterCrossIndustry(records)
	report.CrossIndustry = len(records)

	records = FilterDetailedOrTotal(records)
	report.DetailedOrTotal = len(records)

	records, report.DuplicatesRemoved = DedupeWages(records)
	if report.DuplicatesRemoved > 0 {
		n.logger.WarnContext(ctx, "Removed duplicate (area, occupation) rows",
			slog.Int("duplicates_removed", report.DuplicatesRemoved))
	}

	records, report.DroppedMissing = DropMissing(records, n.opts.NullPolicy)
	report.RowsWritten = len(records)
	report.NullCells = CountNullCells(records)

	for _, r := range records {
		if !IsOccCode(r.OccCode) {
			report.MalformedOccCodes++
		}
	}
	if report.MalformedOccCodes > 0 {
		n.logger.WarnContext(ctx, "Occupation codes do not match the DD-DDDD format",
			slog.Int("rows", report.MalformedOccCodes))
	}

	n.logger.InfoContext(ctx, "Data cleaned",
		slog.Int("rows_read", report.RowsRead),
		slog.Int("cross_industry", report.CrossIndustry),
		slog.Int("detailed_or_total", report.DetailedOrTotal),
		slog.Int("duplicates_removed", report.DuplicatesRemoved),
		slog.Int("dropped_missing", report.DroppedMissing),
		slog.String("null_policy", string(n.opts.NullPolicy)),
		slog.Int("rows_written", report.RowsWritten))

	return records, report, nil
}

// ParseWageRows converts the raw sheet to wage records. Every column honours
// the missing-value sentinels; numeric columns become nullable integers and
// unparseable numbers become null. The count of unparseable cells is returned.
func ParseWageRows(sheet *Sheet, sentinels []string) ([]domain.WageRecord, int, error) {
	cols := sheet.Columns()
	if err := cols.Require(sheet.Source, sheet.Header, domain.RawWageColumns); err != nil {
		return nil, 0, err
	}

	unparseable := 0
	records := make([]domain.WageRecord, 0, len(sheet.Rows))

	for _, row := range sheet.Rows {
		text := func(col string) string {
			return CleanText(cols.Cell(row, col), sentinels)
		}
		num := func(col string) domain.NullInt64 {
			cell := cols.Cell(row, col)
			if IsMissing(cell, sentinels) {
				return domain.NullInt64{}
			}
			v, ok := ParseNullableInt(cell)
			if !ok {
				unparseable++
			}
			return v
		}

		records = append(records, domain.WageRecord{
			IndustryGroup: text(domain.ColIndustryGroup),
			OccGroup:      text(domain.ColOccGroup),
			AreaTitle:     text(domain.ColAreaTitle),
			OccCode:       NormalizeOccCode(text(domain.ColOccCode)),
			OccTitle:      text(domain.ColOccTitle),
			TotEmp:        num(domain.ColTotEmp),
			Pct10:         num(domain.ColPct10),
			Pct25:         num(domain.ColPct25),
			Median:        num(domain.ColMedian),
			Pct75:         num(domain.ColPct75),
			Pct90:         num(domain.ColPct90),
		})
	}

	return records, unparseable, nil
}

// FilterCrossIndustry keeps statistics aggregated across all industries,
// removing the industry-specific breakdowns of the same (area, occupation).
func FilterCrossIndustry(records []domain.WageRecord) []domain.WageRecord {
	out := make([]domain.WageRecord, 0, len(records))
	for _, r := range records {
		if r.IndustryGroup == domain.IndustryGroupCross {
			out = append(out, r)
		}
	}
	return out
}

// FilterDetailedOrTotal keeps detailed occupations plus the per-area
// all-occupations total row.
func FilterDetailedOrTotal(records []domain.WageRecord) []domain.WageRecord {
	out := make([]domain.WageRecord, 0, len(records))
	for _, r := range records {
		if r.OccGroup == domain.OccGroupDetailed || r.IsTotal() {
			out = append(out, r)
		}
	}
	return out
}

// DedupeWages keeps the first row for each (area, occupation code) and
// returns how many later rows were removed.
func DedupeWages(records []domain.WageRecord) ([]domain.WageRecord, int) {
	seen := make(map[domain.WageKey]struct{}, len(records))
	out := make([]domain.WageRecord, 0, len(records))
	for _, r := range records {
		k := r.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out, len(records) - len(out)
}

// DropMissing removes rows lacking total employment and/or median wage
// according to policy, returning the number dropped.
func DropMissing(records []domain.WageRecord, policy NullPolicy) ([]domain.WageRecord, int) {
	out := make([]domain.WageRecord, 0, len(records))
	for _, r := range records {
		missingEmp, missingMedian := r.TotEmp.IsNull(), r.Median.IsNull()

		var drop bool
		switch policy {
		case DropWhenEither:
			drop = missingEmp || missingMedian
		default:
			drop = missingEmp && missingMedian
		}
		if !drop {
			out = append(out, r)
		}
	}
	return out, len(records) - len(out)
}

// CountNullCells counts null numeric cells per column
func CountNullCells(records []domain.WageRecord) map[string]int {
	counts := make(map[string]int, len(domain.NumericWageColumns))
	for _, col := range domain.NumericWageColumns {
		counts[col] = 0
	}
	for _, r := range records {
		for col, v := range numericCells(r) {
			if v.IsNull() {
				counts[col]++
			}
		}
	}
	return counts
}

func numericCells(r domain.WageRecord) map[string]domain.NullInt64 {
	return map[string]domain.NullInt64{
		domain.ColTotEmp: r.TotEmp,
		domain.ColPct10:  r.Pct10,
		domain.ColPct25:  r.Pct25,
		domain.ColMedian: r.Median,
		domain.ColPct75:  r.Pct75,
		domain.ColPct90:  r.Pct90,
	}
}
