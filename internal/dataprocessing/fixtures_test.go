package dataprocessing

import (
	"testing"

	"github.com/ethandillon/DreamJobRealityCheck/internal/shared/testutil"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

var testSentinels = []string{"*", "**", "#"}

func writeWorkbook(t *testing.T, filename string, sheets ...testutil.Sheet) string {
	t.Helper()
	return testutil.WriteWorkbook(t, t.TempDir(), filename, sheets...)
}

func rawHeader() []interface{} {
	return testutil.Header(domain.RawWageColumns)
}

// rawRow builds a survey row in RawWageColumns order:
// I_GROUP, O_GROUP, AREA_TITLE, OCC_CODE, OCC_TITLE, TOT_EMP, A_PCT10, A_PCT25, A_MEDIAN, A_PCT75, A_PCT90
func rawRow(iGroup, oGroup, area, code, title string, nums ...interface{}) []interface{} {
	row := []interface{}{iGroup, oGroup, area, code, title}
	for len(nums) < 6 {
		nums = append(nums, "")
	}
	return append(row, nums...)
}

func educationHeader() []interface{} {
	return []interface{}{
		domain.EPColOccCode,
		"2023 National Employment Matrix title",
		domain.EPColEducation,
		domain.EPColExperience,
		"Typical on-the-job training needed to attain competency in the occupation",
	}
}

func educationRow(code, education, experience string) []interface{} {
	return []interface{}{code, "title", education, experience, "None"}
}

func wage(area, code string, emp, median int64) domain.WageRecord {
	return domain.WageRecord{
		AreaTitle:     area,
		OccCode:       code,
		OccTitle:      "Occupation " + code,
		IndustryGroup: domain.IndustryGroupCross,
		OccGroup:      domain.OccGroupDetailed,
		TotEmp:        domain.Int64(emp),
		Median:        domain.Int64(median),
	}
}
