package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

// EducationLadder orders the typical entry education values from least to
// most schooling. A minimum education selection admits every rung up to it.
var EducationLadder = []string{
	"No formal educational credential",
	"High school diploma or equivalent",
	"Associate degree",
	"Bachelor's degree",
	"Master's degree",
	"Doctoral or professional degree",
}

// PostsecondaryNondegree sits outside the ladder and only matches itself
const PostsecondaryNondegree = "Postsecondary nondegree award"

// ExperienceLadder orders the related work experience values
var ExperienceLadder = []string{
	"None",
	"Less than 5 years",
	"5 years or more",
}

// OpportunityFilter narrows the career table. Empty fields and "Any" match
// everything.
type OpportunityFilter struct {
	Location   string
	Occupation string
	Education  string
	Experience string
	MinSalary  int64
}

// Opportunities summarizes how many jobs match a filter
type Opportunities struct {
	MatchingJobs int64

	// TotalJobs is the national all-occupations employment
	TotalJobs domain.NullInt64

	// RegionJobs is the all-occupations employment of the filtered location
	RegionJobs domain.NullInt64

	Percentage       float64
	RegionPercentage float64

	// Wage percentiles averaged over the matching rows
	Median domain.NullInt64
	Pct10  domain.NullInt64
	Pct25  domain.NullInt64
	Pct75  domain.NullInt64
	Pct90  domain.NullInt64

	MinSalaryMet bool
}

// AllowedEducation expands a minimum education selection into the values
// it admits. Unknown selections return nil.
func AllowedEducation(selection string) []string {
	if selection == PostsecondaryNondegree {
		return []string{PostsecondaryNondegree}
	}
	switch strings.ToLower(selection) {
	case "no formal education":
		selection = EducationLadder[0]
	case "high school diploma":
		selection = EducationLadder[1]
	}
	for i, v := range EducationLadder {
		if v == selection {
			return EducationLadder[:i+1]
		}
	}
	return nil
}

// AllowedExperience expands an experience selection into the values it
// admits. Unknown selections return nil.
func AllowedExperience(selection string) []string {
	for i, v := range ExperienceLadder {
		if v == selection {
			return ExperienceLadder[:i+1]
		}
	}
	return nil
}

// buildOpportunityQuery returns the aggregate over detailed occupations
// matching f. Area total rows never count as matches.
func buildOpportunityQuery(f OpportunityFilter) (string, []interface{}) {
	var b strings.Builder
	fmt.Fprintf(&b, `SELECT SUM(tot_emp), AVG(a_median), AVG(a_pct10), AVG(a_pct25), AVG(a_pct75), AVG(a_pct90)
FROM %s
WHERE occ_code <> ?`, config.CareerTableName)
	args := []interface{}{domain.TotalOccCode}

	if f.Location != "" {
		b.WriteString(` AND area_title LIKE ?`)
		args = append(args, "%"+f.Location+"%")
	}
	if f.Occupation != "" {
		b.WriteString(` AND occ_title LIKE ?`)
		args = append(args, "%"+f.Occupation+"%")
	}

	if f.Education != "" && f.Education != "Any" {
		allowed := AllowedEducation(f.Education)
		b.WriteString(` AND education IN (` + placeholders(len(allowed)) + `)`)
		for _, v := range allowed {
			args = append(args, v)
		}
	}

	if f.Experience != "" && f.Experience != "Any" {
		allowed := AllowedExperience(f.Experience)
		in := `experience IN (` + placeholders(len(allowed)) + `)`
		// "None" also covers occupations with no experience value at all
		if len(allowed) > 0 && allowed[0] == ExperienceLadder[0] {
			in = `(experience IS NULL OR ` + in + `)`
		}
		b.WriteString(` AND ` + in)
		for _, v := range allowed {
			args = append(args, v)
		}
	}

	if f.MinSalary > 0 {
		b.WriteString(` AND (a_median >= ? OR a_pct75 >= ? OR a_pct90 >= ?)`)
		args = append(args, f.MinSalary, f.MinSalary, f.MinSalary)
	}

	b.WriteString(`;`)
	return b.String(), args
}

// placeholders returns n comma separated bind markers. Zero yields NULL so
// an unknown selection matches nothing.
func placeholders(n int) string {
	if n == 0 {
		return "NULL"
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// Opportunities counts the jobs matching f against the national and
// regional totals.
func (d *DB) Opportunities(ctx context.Context, f OpportunityFilter) (*Opportunities, error) {
	query, args := buildOpportunityQuery(f)

	var (
		matching                   sql.NullInt64
		median, p10, p25, p75, p90 sql.NullFloat64
	)
	if err := d.Pool.QueryRowContext(ctx, query, args...).Scan(&matching, &median, &p10, &p25, &p75, &p90); err != nil {
		return nil, storageError(d.path, "failed to query matching jobs", err)
	}

	total, err := d.TotalEmployment(ctx)
	if err != nil {
		return nil, err
	}

	out := &Opportunities{
		MatchingJobs: matching.Int64,
		TotalJobs:    total,
		Median:       roundAvg(median),
		Pct10:        roundAvg(p10),
		Pct25:        roundAvg(p25),
		Pct75:        roundAvg(p75),
		Pct90:        roundAvg(p90),
	}

	if f.Location != "" {
		if out.RegionJobs, err = d.areaEmployment(ctx, f.Location); err != nil {
			return nil, err
		}
	} else {
		out.RegionJobs = total
	}

	if total.Valid && total.Value > 0 {
		out.Percentage = float64(out.MatchingJobs) / float64(total.Value) * 100
	}
	if out.RegionJobs.Valid && out.RegionJobs.Value > 0 {
		out.RegionPercentage = float64(out.MatchingJobs) / float64(out.RegionJobs.Value) * 100
	}
	if f.MinSalary > 0 && out.Median.Valid {
		out.MinSalaryMet = out.Median.Value >= f.MinSalary
	}
	return out, nil
}

// areaEmployment returns the all-occupations employment of one area
func (d *DB) areaEmployment(ctx context.Context, area string) (domain.NullInt64, error) {
	var emp sql.NullInt64
	err := d.Pool.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT tot_emp FROM %s WHERE occ_code = ? AND area_title = ? LIMIT 1;`,
		config.CareerTableName), domain.TotalOccCode, area).Scan(&emp)
	if err == sql.ErrNoRows {
		return domain.NullInt64{}, nil
	}
	if err != nil {
		return domain.NullInt64{}, storageError(d.path, "failed to read regional employment", err)
	}
	return fromSQLInt(emp), nil
}

func roundAvg(v sql.NullFloat64) domain.NullInt64 {
	return domain.NullInt64{Value: int64(math.Round(v.Float64)), Valid: v.Valid}
}
