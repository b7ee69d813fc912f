package dataprocessing

import (
	"context"
	"log/slog"

	"github.com/ethandillon/DreamJobRealityCheck/internal/validation"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

// EnrichOptions configures where the education table lives in its workbook
type EnrichOptions struct {
	Sheet    string
	SkipRows int
	// ColumnMap selects and renames the education columns, in order
	ColumnMap []domain.ColumnRename

	WageHint      string
	EducationHint string
}

// EnrichReport carries the row counts of each enrichment step
type EnrichReport struct {
	WageRows            int
	EducationRowsRead   int
	EducationDuplicates int
	EducationRows       int
	Matched             int
	Unmatched           int
	RowsWritten         int
}

// Enricher joins the cleaned wage table with education requirements
type Enricher struct {
	opts      EnrichOptions
	logger    *slog.Logger
	validator *validation.FileValidator
}

// NewEnricher creates an enricher
func NewEnricher(opts EnrichOptions, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	if len(opts.ColumnMap) == 0 {
		opts.ColumnMap = domain.EducationColumnMap
	}
	return &Enricher{
		opts:      opts,
		logger:    logger.With(slog.String("component", "enricher")),
		validator: validation.NewFileValidator(logger),
	}
}

// EnrichFiles loads both inputs and returns the combined table. Both files
// are checked before either is read.
func (e *Enricher) EnrichFiles(ctx context.Context, wagePath, educationPath string) ([]domain.CombinedRecord, EnrichReport, error) {
	if err := e.validator.ValidateInputs(
		validation.InputFile{Path: wagePath, Kind: validation.KindCSV, Hint: e.opts.WageHint},
		validation.InputFile{Path: educationPath, Kind: validation.KindExcel, Hint: e.opts.EducationHint},
	); err != nil {
		return nil, EnrichReport{}, err
	}

	e.logger.InfoContext(ctx, "Loading job market data", slog.String("file", wagePath))
	wages, err := ReadWageCSV(wagePath)
	if err != nil {
		return nil, EnrichReport{}, err
	}

	e.logger.InfoContext(ctx, "Loading education data",
		slog.String("file", educationPath),
		slog.String("sheet", e.opts.Sheet),
		slog.Int("skip_rows", e.opts.SkipRows))
	sheet, err := ReadSheet(educationPath, e.opts.Sheet, e.opts.SkipRows)
	if err != nil {
		return nil, EnrichReport{}, err
	}
	e.logger.InfoContext(ctx, "Successfully loaded education sheet",
		slog.String("sheet", sheet.Name),
		slog.Int("rows", len(sheet.Rows)))

	return e.Enrich(ctx, wages, sheet)
}

// Enrich joins wages with the education table held in sheet
func (e *Enricher) Enrich(ctx context.Context, wages []domain.WageRecord, sheet *Sheet) ([]domain.CombinedRecord, EnrichReport, error) {
	report := EnrichReport{WageRows: len(wages)}

	education, err := SelectEducationColumns(sheet, e.opts.ColumnMap)
	if err != nil {
		return nil, report, err
	}
	report.EducationRowsRead = len(education)

	education, report.EducationDuplicates = DedupeEducation(education)
	report.EducationRows = len(education)

	e.logger.InfoContext(ctx, "Education data cleaned and prepared for merging",
		slog.Int("rows_read", report.EducationRowsRead),
		slog.Int("duplicates_removed", report.EducationDuplicates),
		slog.Int("rows", report.EducationRows))

	e.logger.InfoContext(ctx, "Merging job records with education records",
		slog.Int("job_records", report.WageRows),
		slog.Int("education_records", report.EducationRows))

	combined, matched := LeftJoin(wages, education)
	report.Matched = matched
	report.Unmatched = len(combined) - matched
	report.RowsWritten = len(combined)

	e.logger.InfoContext(ctx, "Merge complete",
		slog.Int("rows", report.RowsWritten),
		slog.Int("matched", report.Matched),
		slog.Int("unmatched", report.Unmatched))

	return combined, report, nil
}

// SelectEducationColumns projects the education sheet to the mapped
// columns. Every source column must be present; rows without an
// occupation code are skipped since they cannot join.
func SelectEducationColumns(sheet *Sheet, mapping []domain.ColumnRename) ([]domain.EducationRecord, error) {
	cols := sheet.Columns()

	sources := make([]string, len(mapping))
	targets := make(map[string]string, len(mapping))
	for i, m := range mapping {
		sources[i] = m.Source
		targets[m.Target] = m.Source
	}
	if err := cols.Require(sheet.Source, sheet.Header, sources); err != nil {
		return nil, err
	}

	cell := func(row []string, target string) string {
		src, ok := targets[target]
		if !ok {
			return ""
		}
		return CleanText(cols.Cell(row, src), nil)
	}

	records := make([]domain.EducationRecord, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		code := NormalizeOccCode(cell(row, domain.ColOccCode))
		if code == "" {
			continue
		}
		records = append(records, domain.EducationRecord{
			OccCode:    code,
			Education:  cell(row, domain.ColEducation),
			Experience: cell(row, domain.ColExperience),
		})
	}
	return records, nil
}

// DedupeEducation keeps the first record for each occupation code
func DedupeEducation(records []domain.EducationRecord) ([]domain.EducationRecord, int) {
	seen := make(map[string]struct{}, len(records))
	out := make([]domain.EducationRecord, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.OccCode]; dup {
			continue
		}
		seen[r.OccCode] = struct{}{}
		out = append(out, r)
	}
	return out, len(records) - len(out)
}

// LeftJoin attaches education requirements to every wage row by occupation
// code. Every wage row is kept, in order; rows without a match get null
// education and experience. The number of matched rows is returned.
func LeftJoin(wages []domain.WageRecord, education []domain.EducationRecord) ([]domain.CombinedRecord, int) {
	byCode := make(map[string]domain.EducationRecord, len(education))
	for _, e := range education {
		if _, ok := byCode[e.OccCode]; !ok {
			byCode[e.OccCode] = e
		}
	}

	matched := 0
	out := make([]domain.CombinedRecord, len(wages))
	for i, w := range wages {
		out[i] = domain.CombinedRecord{WageRecord: w}
		e, ok := byCode[NormalizeOccCode(w.OccCode)]
		if !ok {
			continue
		}
		matched++
		out[i].Education = optionalText(e.Education)
		out[i].Experience = optionalText(e.Experience)
	}
	return out, matched
}
