package dataprocessing

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
	"github.com/ethandillon/DreamJobRealityCheck/internal/shared/testutil"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

const cross = domain.IndustryGroupCross

func surveySheet(rows ...[]interface{}) testutil.Sheet {
	return testutil.Sheet{Name: "All May 2023 data", Rows: append([][]interface{}{rawHeader()}, rows...)}
}

func TestParseNullPolicy(t *testing.T) {
	p, err := ParseNullPolicy("both")
	require.NoError(t, err)
	assert.Equal(t, DropWhenBoth, p)

	p, err = ParseNullPolicy("either")
	require.NoError(t, err)
	assert.Equal(t, DropWhenEither, p)

	_, err = ParseNullPolicy("any")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestNormalizer_NormalizeFile(t *testing.T) {
	path := writeWorkbook(t, "all_data_M_2023.xlsx", surveySheet(
		rawRow(cross, "total", "U.S.", "00-0000", "All Occupations", 151853870, 29050, 36200, 48060, 77980, 115870),
		rawRow(cross, "major", "U.S.", "13-0000", "Business and Financial Operations", 10087550, 48000, 60000, 79050, 100000, 130000),
		rawRow(cross, "detailed", "U.S.", "13-1020", "Buyers and Purchasing Agents", 480000, 44000, 55000, 70000, 90000, 110000),
		rawRow(cross, "detailed", "U.S.", "13-1020", "Buyers (duplicate)", 1, 1, 1, 1, 1, 1),
		rawRow("sector", "detailed", "U.S.", "15-1252", "Software Developers", 5000, 1, 1, 1, 1, 1),
		rawRow(cross, "detailed", "U.S.", "15-1252", "Software Developers", 1656880, 77020, 98220, 132270, 167540, 208620),
		rawRow(cross, "detailed", "Alabama", "27-2011", "Actors", "**", "*", "*", "#", "*", "*"),
		rawRow(cross, "detailed", "Alabama", "29-1141", "Registered Nurses", 50000, "*", 60000, 70000, "#", 90000),
	))

	n := NewNormalizer(NormalizeOptions{Sentinels: testSentinels}, nil)
	records, report, err := n.NormalizeFile(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, records, 4)

	assert.Equal(t, "00-0000", records[0].OccCode, "all-occupations total survives")
	assert.Equal(t, int64(151853870), records[0].TotEmp.Value)

	assert.Equal(t, "13-1020", records[1].OccCode)
	assert.Equal(t, "Buyers and Purchasing Agents", records[1].OccTitle, "first duplicate wins")
	assert.Equal(t, domain.Int64(70000), records[1].Median)

	assert.Equal(t, "15-1252", records[2].OccCode)
	assert.Equal(t, domain.Int64(1656880), records[2].TotEmp, "cross-industry row kept, sector row removed")

	nurse := records[3]
	assert.Equal(t, "Alabama", nurse.AreaTitle)
	assert.True(t, nurse.Pct10.IsNull())
	assert.True(t, nurse.Pct75.IsNull())
	assert.Equal(t, domain.Int64(90000), nurse.Pct90)

	assert.Equal(t, NormalizeReport{
		RowsRead:          8,
		CrossIndustry:     7,
		DetailedOrTotal:   6,
		DuplicatesRemoved: 1,
		DroppedMissing:    1,
		RowsWritten:       4,
		NullCells: map[string]int{
			domain.ColTotEmp: 0,
			domain.ColPct10:  1,
			domain.ColPct25:  0,
			domain.ColMedian: 0,
			domain.ColPct75:  1,
			domain.ColPct90:  0,
		},
	}, report)
}

func TestNormalizer_KeysAreUnique(t *testing.T) {
	path := writeWorkbook(t, "survey.xlsx", surveySheet(
		rawRow(cross, "detailed", "U.S.", "11-1011", "Chief Executives", 200000, 1, 2, 3, 4, 5),
		rawRow(cross, "detailed", "Ohio", "11-1011", "Chief Executives", 7000, 1, 2, 3, 4, 5),
		rawRow(cross, "detailed", "U.S.", "11-1011", "Chief Executives", 9, 9, 9, 9, 9, 9),
		rawRow(cross, "detailed", "Ohio", "11-1011", "Chief Executives", 9, 9, 9, 9, 9, 9),
		rawRow(cross, "detailed", "Ohio", "11-1021", "General and Operations Managers", 90000, 1, 2, 3, 4, 5),
	))

	logger, logs := testutil.NewTestLogger(t)
	records, report, err := NewNormalizer(NormalizeOptions{Sentinels: testSentinels}, logger).
		NormalizeFile(context.Background(), path)
	require.NoError(t, err)

	testutil.AssertLogContains(t, logs, slog.LevelWarn, "Removed duplicate")
	testutil.AssertLogAttr(t, logs, "component", "normalizer")
	testutil.AssertNoErrors(t, logs)

	seen := map[domain.WageKey]bool{}
	for _, r := range records {
		assert.False(t, seen[r.Key()], "duplicate key %v", r.Key())
		seen[r.Key()] = true
		assert.Equal(t, cross, r.IndustryGroup)
	}
	assert.Len(t, records, 3)
	assert.Equal(t, 2, report.DuplicatesRemoved)
}

func TestNormalizer_MalformedOccCodes(t *testing.T) {
	path := writeWorkbook(t, "survey.xlsx", surveySheet(
		rawRow(cross, "detailed", "U.S.", "151252", "Software Developers", 1656880, 1, 2, 3, 4, 5),
		rawRow(cross, "detailed", "U.S.", "15-12XX", "Placeholder", 10, 1, 2, 3, 4, 5),
	))

	logger, logs := testutil.NewTestLogger(t)
	records, report, err := NewNormalizer(NormalizeOptions{Sentinels: testSentinels}, logger).
		NormalizeFile(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "15-1252", records[0].OccCode, "numeric code is normalized")
	assert.Equal(t, 1, report.MalformedOccCodes)
	testutil.AssertLogContains(t, logs, slog.LevelWarn, "DD-DDDD")
}

func TestNormalizer_MissingInput(t *testing.T) {
	n := NewNormalizer(NormalizeOptions{InputHint: "download the survey"}, nil)
	path := filepath.Join(t.TempDir(), "all_data_M_2023.xlsx")

	_, _, err := n.NormalizeFile(context.Background(), path)
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
	assert.Equal(t, path, appErr.Context[apperrors.CtxPath])
	assert.Equal(t, "download the survey", appErr.Context[apperrors.CtxHint])
}

func TestNormalizer_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, "survey.xlsx", testutil.Sheet{Name: "data", Rows: [][]interface{}{
		{"AREA_TITLE", "OCC_CODE"},
		{"U.S.", "00-0000"},
	}})

	_, _, err := NewNormalizer(NormalizeOptions{}, nil).NormalizeFile(context.Background(), path)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
}

func TestNormalizer_UnparseableCells(t *testing.T) {
	sheet := &Sheet{
		Source: "inline",
		Header: domain.RawWageColumns,
		Rows: [][]string{
			{cross, "detailed", "U.S.", "15-1252", "Software Developers", "lots", "1", "2", "3", "4", "5"},
		},
	}

	records, report, err := NewNormalizer(NormalizeOptions{Sentinels: testSentinels}, nil).
		Normalize(context.Background(), sheet)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].TotEmp.IsNull())
	assert.Equal(t, 1, report.UnparseableCells)
}

func TestFilterDetailedOrTotal(t *testing.T) {
	records := []domain.WageRecord{
		{OccCode: "00-0000", OccGroup: "total"},
		{OccCode: "11-0000", OccGroup: "major"},
		{OccCode: "11-1000", OccGroup: "minor"},
		{OccCode: "11-1010", OccGroup: "broad"},
		{OccCode: "11-1011", OccGroup: "detailed"},
	}

	got := FilterDetailedOrTotal(records)
	require.Len(t, got, 2)
	assert.Equal(t, "00-0000", got[0].OccCode)
	assert.Equal(t, "11-1011", got[1].OccCode)
}

func TestDropMissing(t *testing.T) {
	both := wage("U.S.", "11-1011", 1, 1)
	noEmp := wage("U.S.", "11-1021", 0, 1)
	noEmp.TotEmp = domain.NullInt64{}
	noMedian := wage("U.S.", "11-2011", 1, 0)
	noMedian.Median = domain.NullInt64{}
	neither := wage("U.S.", "11-2021", 0, 0)
	neither.TotEmp, neither.Median = domain.NullInt64{}, domain.NullInt64{}

	records := []domain.WageRecord{both, noEmp, noMedian, neither}

	tests := []struct {
		policy  NullPolicy
		want    []string
		dropped int
	}{
		{policy: DropWhenBoth, want: []string{"11-1011", "11-1021", "11-2011"}, dropped: 1},
		{policy: DropWhenEither, want: []string{"11-1011"}, dropped: 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			got, dropped := DropMissing(records, tt.policy)
			assert.Equal(t, tt.dropped, dropped)

			codes := make([]string, len(got))
			for i, r := range got {
				codes[i] = r.OccCode
			}
			assert.Equal(t, tt.want, codes)
		})
	}
}

func TestCountNullCells(t *testing.T) {
	r := wage("U.S.", "11-1011", 10, 20)
	counts := CountNullCells([]domain.WageRecord{r, r})

	assert.Equal(t, 0, counts[domain.ColTotEmp])
	assert.Equal(t, 0, counts[domain.ColMedian])
	assert.Equal(t, 2, counts[domain.ColPct10])
	assert.Equal(t, 2, counts[domain.ColPct90])
}
