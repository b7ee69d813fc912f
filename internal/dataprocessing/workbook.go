package dataprocessing

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
)

// Sheet is one worksheet loaded into memory: a header row and the data
// rows beneath it, all as raw cell text.
type Sheet struct {
	Source string
	Name   string
	Header []string
	Rows   [][]string
}

// ReadSheet loads sheetName from the workbook at path. An empty sheetName
// selects the first sheet. skipRows title rows above the header are
// discarded, and fully blank rows are ignored.
func ReadSheet(path, sheetName string, skipRows int) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open workbook '%s'", path), err).
			WithContext(apperrors.CtxPath, path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheetName == "" {
		if len(sheets) == 0 {
			return nil, apperrors.NewMissingSheetError(path, "(first sheet)", sheets)
		}
		sheetName = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, apperrors.NewMissingSheetError(path, sheetName, sheets)
	}

	// Raw values keep numbers free of display formatting such as "50,000"
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet '%s'", sheetName), err).
			WithContext(apperrors.CtxPath, path).
			WithContext(apperrors.CtxSheet, sheetName)
	}

	return newSheet(path, sheetName, rows, skipRows), nil
}

func newSheet(source, name string, rows [][]string, skipRows int) *Sheet {
	s := &Sheet{Source: source, Name: name}
	if skipRows >= len(rows) {
		return s
	}
	rows = rows[skipRows:]

	s.Header = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		s.Header[i] = strings.TrimSpace(h)
	}

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ColumnIndex maps header names to cell positions
type ColumnIndex map[string]int

// Columns indexes the sheet header. The first occurrence of a repeated
// header wins.
func (s *Sheet) Columns() ColumnIndex {
	return indexHeader(s.Header)
}

func indexHeader(header []string) ColumnIndex {
	idx := make(ColumnIndex, len(header))
	for i, h := range header {
		if h == "" {
			continue
		}
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}
	return idx
}

// Require fails with a schema error naming expected and found columns when
// any of names is absent.
func (c ColumnIndex) Require(source string, header []string, names []string) error {
	for _, name := range names {
		if _, ok := c[name]; !ok {
			found := make([]string, 0, len(header))
			for _, h := range header {
				if h != "" {
					found = append(found, h)
				}
			}
			return apperrors.NewMissingColumnsError(source, names, found)
		}
	}
	return nil
}

// Cell returns the value of column name in row, or "" when the row is short
func (c ColumnIndex) Cell(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
