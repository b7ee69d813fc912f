package dataprocessing

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
	"github.com/ethandillon/DreamJobRealityCheck/internal/shared/testutil"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

func educationSheet(rows ...[]interface{}) testutil.Sheet {
	all := [][]interface{}{
		{"Table 5.4 Education and training assignments by detailed occupation, 2023"},
		educationHeader(),
	}
	return testutil.Sheet{Name: "Table 5.4", Rows: append(all, rows...)}
}

func enrichOptions() EnrichOptions {
	return EnrichOptions{Sheet: "Table 5.4", SkipRows: 1}
}

func TestEnricher_EnrichFiles(t *testing.T) {
	wagePath := writeCSV(t, "cleaned_oes_data.csv",
		"AREA_TITLE,OCC_CODE,OCC_TITLE,TOT_EMP,A_PCT10,A_PCT25,A_MEDIAN,A_PCT75,A_PCT90\n"+
			"U.S.,00-0000,All Occupations,151853870,29050,36200,48060,77980,115870\n"+
			"U.S.,15-1252,Software Developers,1656880,77020,98220,132270,167540,208620\n"+
			"Ohio,15-1252,Software Developers,40000,,,120000,,\n"+
			"Ohio,29-1141,Registered Nurses,130000,60000,70000,80000,90000,100000\n")

	eduPath := writeWorkbook(t, "education.xlsx", educationSheet(
		educationRow("15-1252", "Bachelor's degree", "None"),
		educationRow("15-1252", "Master's degree", "Less than 5 years"),
		educationRow("29-1141", "Bachelor's degree", ""),
		educationRow("11-1011", "Bachelor's degree", "5 years or more"),
	))

	e := NewEnricher(enrichOptions(), nil)
	combined, report, err := e.EnrichFiles(context.Background(), wagePath, eduPath)
	require.NoError(t, err)

	require.Len(t, combined, 4, "every wage row survives the join")

	assert.Equal(t, "00-0000", combined[0].OccCode)
	assert.True(t, combined[0].Education.IsNull())
	assert.True(t, combined[0].Experience.IsNull())

	assert.Equal(t, domain.String("Bachelor's degree"), combined[1].Education, "first education row wins")
	assert.Equal(t, domain.String("None"), combined[1].Experience)
	assert.Equal(t, domain.String("Bachelor's degree"), combined[2].Education)
	assert.True(t, combined[2].Pct10.IsNull())
	assert.Equal(t, domain.Int64(120000), combined[2].Median)

	assert.Equal(t, domain.String("Bachelor's degree"), combined[3].Education)
	assert.True(t, combined[3].Experience.IsNull())

	assert.Equal(t, EnrichReport{
		WageRows:            4,
		EducationRowsRead:   4,
		EducationDuplicates: 1,
		EducationRows:       3,
		Matched:             3,
		Unmatched:           1,
		RowsWritten:         4,
	}, report)
}

func TestEnricher_MissingSheet(t *testing.T) {
	wagePath := writeCSV(t, "cleaned_oes_data.csv",
		"AREA_TITLE,OCC_CODE,OCC_TITLE,TOT_EMP,A_PCT10,A_PCT25,A_MEDIAN,A_PCT75,A_PCT90\n")
	eduPath := writeWorkbook(t, "education.xlsx",
		testutil.Sheet{Name: "Table 5.3", Rows: [][]interface{}{{"x"}}},
		testutil.Sheet{Name: "Table 5.4 (revised)", Rows: [][]interface{}{{"y"}}},
	)

	combined, _, err := NewEnricher(enrichOptions(), nil).EnrichFiles(context.Background(), wagePath, eduPath)
	require.Error(t, err)
	assert.Nil(t, combined)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrTypeSheet, appErr.Type)
	assert.Equal(t, []string{"Table 5.3", "Table 5.4 (revised)"}, appErr.Context[apperrors.CtxAvailableSheets])
}

func TestEnricher_MissingInputsCheckedFirst(t *testing.T) {
	dir := t.TempDir()
	eduPath := writeWorkbook(t, "education.xlsx", educationSheet())

	e := NewEnricher(EnrichOptions{Sheet: "Table 5.4", SkipRows: 1, WageHint: "run normalize first"}, nil)
	_, _, err := e.EnrichFiles(context.Background(), filepath.Join(dir, "cleaned_oes_data.csv"), eduPath)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
	assert.Equal(t, "run normalize first", appErr.Context[apperrors.CtxHint])

	wagePath := writeCSV(t, "cleaned_oes_data.csv", "AREA_TITLE\n")
	_, _, err = e.EnrichFiles(context.Background(), wagePath, filepath.Join(dir, "education.xlsx"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound),
		"a missing workbook is reported before the wage file is parsed")
}

func TestSelectEducationColumns(t *testing.T) {
	sheet := &Sheet{
		Source: "education.xlsx",
		Header: []string{"Typical education needed for entry", "2023 National Employment Matrix code", "Work experience in a related occupation", "Other"},
		Rows: [][]string{
			{"Doctoral or professional degree", "291141", "None", "x"},
			{"High school diploma or equivalent", "", "None", "x"},
			{" Associate's degree ", "29-2061", " Less than 5 years ", "x"},
		},
	}

	records, err := SelectEducationColumns(sheet, domain.EducationColumnMap)
	require.NoError(t, err)

	assert.Equal(t, []domain.EducationRecord{
		{OccCode: "29-1141", Education: "Doctoral or professional degree", Experience: "None"},
		{OccCode: "29-2061", Education: "Associate's degree", Experience: "Less than 5 years"},
	}, records)
}

func TestSelectEducationColumns_MissingColumn(t *testing.T) {
	sheet := &Sheet{
		Source: "education.xlsx",
		Header: []string{"2023 National Employment Matrix code", "Typical education needed for entry"},
	}

	_, err := SelectEducationColumns(sheet, domain.EducationColumnMap)
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrTypeSchema, appErr.Type)
	assert.Equal(t, []string{domain.EPColOccCode, domain.EPColEducation, domain.EPColExperience},
		appErr.Context[apperrors.CtxExpected])
	assert.Equal(t, sheet.Header, appErr.Context[apperrors.CtxFound])
	assert.Equal(t, []string{domain.EPColExperience}, appErr.Context[apperrors.CtxMissing])
}

func TestDedupeEducation(t *testing.T) {
	records := []domain.EducationRecord{
		{OccCode: "11-1011", Education: "first"},
		{OccCode: "11-1021", Education: "other"},
		{OccCode: "11-1011", Education: "second"},
	}

	got, removed := DedupeEducation(records)
	assert.Equal(t, 1, removed)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Education)
}

func TestLeftJoin(t *testing.T) {
	wages := []domain.WageRecord{
		wage("Ohio", "11-1011", 100, 200),
		wage("U.S.", "99-9999", 1, 2),
		wage("U.S.", "11-1011", 300, 400),
	}
	education := []domain.EducationRecord{
		{OccCode: "11-1011", Education: "Bachelor's degree", Experience: "5 years or more"},
	}

	combined, matched := LeftJoin(wages, education)
	assert.Equal(t, 2, matched)
	require.Len(t, combined, len(wages))

	for i := range wages {
		assert.Equal(t, wages[i], combined[i].WageRecord, "wage fields unchanged at %d", i)
	}
	assert.Equal(t, domain.String("Bachelor's degree"), combined[0].Education)
	assert.True(t, combined[1].Education.IsNull())
	assert.True(t, combined[1].Experience.IsNull())
	assert.Equal(t, domain.String("5 years or more"), combined[2].Experience)
}

func TestLeftJoin_NoEducation(t *testing.T) {
	combined, matched := LeftJoin([]domain.WageRecord{wage("U.S.", "11-1011", 1, 1)}, nil)
	assert.Zero(t, matched)
	require.Len(t, combined, 1)
	assert.True(t, combined[0].Education.IsNull())
}
