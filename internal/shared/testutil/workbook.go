package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a fixture workbook
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// WriteWorkbook saves sheets, in order, as dir/filename and returns the path.
// Numbers are stored as numeric cells and strings as text, the way the
// published survey workbooks store them.
func WriteWorkbook(t *testing.T, dir, filename string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), s.Name))
		} else {
			_, err := f.NewSheet(s.Name)
			require.NoError(t, err)
		}
		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.Name, cell, &values))
		}
	}

	path := filepath.Join(dir, filename)
	require.NoError(t, f.SaveAs(path))
	return path
}

// Header converts column names into a fixture row
func Header(columns []string) []interface{} {
	row := make([]interface{}, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	return row
}
