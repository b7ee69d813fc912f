package domain

const (
	// TotalOccCode is the reserved "all occupations" aggregate code
	TotalOccCode = "00-0000"

	// IndustryGroupCross tags statistics aggregated across all industries
	IndustryGroupCross = "cross-industry"

	// OccGroupDetailed tags the finest-grained occupation level
	OccGroupDetailed = "detailed"
)

// WageKey identifies a wage row within a cleaned table
type WageKey struct {
	AreaTitle string
	OccCode   string
}

// WageRecord is one (area, occupation) row of the occupational employment
// and wage survey. Wage percentiles are annual amounts.
type WageRecord struct {
	AreaTitle     string    `json:"area_title"`
	OccCode       string    `json:"occ_code"`
	OccTitle      string    `json:"occ_title"`
	IndustryGroup string    `json:"i_group,omitempty"`
	OccGroup      string    `json:"o_group,omitempty"`
	TotEmp        NullInt64 `json:"tot_emp"`
	Pct10         NullInt64 `json:"a_pct10"`
	Pct25         NullInt64 `json:"a_pct25"`
	Median        NullInt64 `json:"a_median"`
	Pct75         NullInt64 `json:"a_pct75"`
	Pct90         NullInt64 `json:"a_pct90"`
}

// Key returns the (area, occupation code) pair
func (r WageRecord) Key() WageKey {
	return WageKey{AreaTitle: r.AreaTitle, OccCode: r.OccCode}
}

// IsTotal reports whether the row is the per-area all-occupations aggregate
func (r WageRecord) IsTotal() bool {
	return r.OccCode == TotalOccCode
}

// EducationRecord holds the typical entry requirements of one occupation
type EducationRecord struct {
	OccCode    string `json:"occ_code"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
}

// CombinedRecord is a wage row enriched with education requirements.
// Education and Experience are null when the occupation had no match.
type CombinedRecord struct {
	WageRecord
	Education  NullString `json:"education"`
	Experience NullString `json:"experience"`
}
