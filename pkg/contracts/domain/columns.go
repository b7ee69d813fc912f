package domain

// Raw occupational employment and wage survey columns
const (
	ColIndustryGroup = "I_GROUP"
	ColOccGroup      = "O_GROUP"
	ColAreaTitle     = "AREA_TITLE"
	ColOccCode       = "OCC_CODE"
	ColOccTitle      = "OCC_TITLE"
	ColTotEmp        = "TOT_EMP"
	ColPct10         = "A_PCT10"
	ColPct25         = "A_PCT25"
	ColMedian        = "A_MEDIAN"
	ColPct75         = "A_PCT75"
	ColPct90         = "A_PCT90"
)

// Canonical names of the education columns after renaming
const (
	ColEducation  = "Education"
	ColExperience = "Experience"
)

// Source column names in the employment projections education table
const (
	EPColOccCode    = "2023 National Employment Matrix code"
	EPColEducation  = "Typical education needed for entry"
	EPColExperience = "Work experience in a related occupation"
)

// RawWageColumns lists every column the normalizer reads from the survey workbook
var RawWageColumns = []string{
	ColIndustryGroup,
	ColOccGroup,
	ColAreaTitle,
	ColOccCode,
	ColOccTitle,
	ColTotEmp,
	ColPct10,
	ColPct25,
	ColMedian,
	ColPct75,
	ColPct90,
}

// NumericWageColumns are coerced to nullable integers
var NumericWageColumns = []string{
	ColTotEmp,
	ColPct10,
	ColPct25,
	ColMedian,
	ColPct75,
	ColPct90,
}

// CleanedWageColumns is the column order of the intermediate file
var CleanedWageColumns = []string{
	ColAreaTitle,
	ColOccCode,
	ColOccTitle,
	ColTotEmp,
	ColPct10,
	ColPct25,
	ColMedian,
	ColPct75,
	ColPct90,
}

// CombinedColumns is the column order of the final combined file
var CombinedColumns = []string{
	ColAreaTitle,
	ColOccCode,
	ColOccTitle,
	ColEducation,
	ColExperience,
	ColTotEmp,
	ColMedian,
	ColPct10,
	ColPct25,
	ColPct75,
	ColPct90,
}

// ColumnRename maps one source column to its canonical name
type ColumnRename struct {
	Source string
	Target string
}

// EducationColumnMap is the ordered selection applied to the education sheet
var EducationColumnMap = []ColumnRename{
	{Source: EPColOccCode, Target: ColOccCode},
	{Source: EPColEducation, Target: ColEducation},
	{Source: EPColExperience, Target: ColExperience},
}
