package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

const utf8BOM = "\ufeff"

// csvTable is a CSV file loaded with its header indexed by name
type csvTable struct {
	header []string
	cols   ColumnIndex
	rows   [][]string
}

func readCSVTable(path string, required []string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewMissingFileError(path, "")
		}
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open '%s'", path), err).
			WithContext(apperrors.CtxPath, path)
	}
	defer f.Close()

	t, err := parseCSVTable(f)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read CSV '%s'", path), err).
			WithContext(apperrors.CtxPath, path)
	}
	if err := t.cols.Require(path, t.header, required); err != nil {
		return nil, err
	}
	return t, nil
}

func parseCSVTable(r io.Reader) (*csvTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return &csvTable{cols: ColumnIndex{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return &csvTable{header: header, cols: indexHeader(header), rows: rows}, nil
}

func (t *csvTable) wage(row []string) domain.WageRecord {
	num := func(col string) domain.NullInt64 {
		v, _ := ParseNullableInt(t.cols.Cell(row, col))
		return v
	}
	return domain.WageRecord{
		AreaTitle: strings.TrimSpace(t.cols.Cell(row, domain.ColAreaTitle)),
		// always a string; a code must never round-trip through a number
		OccCode:  NormalizeOccCode(t.cols.Cell(row, domain.ColOccCode)),
		OccTitle: strings.TrimSpace(t.cols.Cell(row, domain.ColOccTitle)),
		TotEmp:   num(domain.ColTotEmp),
		Pct10:    num(domain.ColPct10),
		Pct25:    num(domain.ColPct25),
		Median:   num(domain.ColMedian),
		Pct75:    num(domain.ColPct75),
		Pct90:    num(domain.ColPct90),
	}
}

// ReadWageCSV loads the cleaned wage table written by the normalizer.
// Columns are matched by name, so their order does not matter.
func ReadWageCSV(path string) ([]domain.WageRecord, error) {
	t, err := readCSVTable(path, domain.CleanedWageColumns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.WageRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, t.wage(row))
	}
	return records, nil
}

// ReadCombinedCSV loads the final combined table written by the enricher.
// Empty education or experience cells are null.
func ReadCombinedCSV(path string) ([]domain.CombinedRecord, error) {
	t, err := readCSVTable(path, domain.CombinedColumns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.CombinedRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, domain.CombinedRecord{
			WageRecord: t.wage(row),
			Education:  optionalText(t.cols.Cell(row, domain.ColEducation)),
			Experience: optionalText(t.cols.Cell(row, domain.ColExperience)),
		})
	}
	return records, nil
}

func optionalText(cell string) domain.NullString {
	v := strings.TrimSpace(cell)
	if v == "" {
		return domain.NullString{}
	}
	return domain.String(v)
}
