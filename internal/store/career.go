package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

// careerColumns follows domain.CombinedColumns, lower-cased
var careerColumns = []string{
	"area_title",
	"occ_code",
	"occ_title",
	"education",
	"experience",
	"tot_emp",
	"a_median",
	"a_pct10",
	"a_pct25",
	"a_pct75",
	"a_pct90",
}

// Migrate creates the career table and its lookup indexes
func (d *DB) Migrate(ctx context.Context) error {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return storageError(d.path, "failed to begin migration", err)
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		return storageError(d.path, "failed to read schema version", err)
	}

	if v >= 1 {
		return tx.Commit()
	}

	stmts := []string{
		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  area_title TEXT NOT NULL,
  occ_code TEXT NOT NULL,
  occ_title TEXT NOT NULL,
  education TEXT,
  experience TEXT,
  tot_emp INTEGER,
  a_median INTEGER,
  a_pct10 INTEGER,
  a_pct25 INTEGER,
  a_pct75 INTEGER,
  a_pct90 INTEGER
);`, config.CareerTableName),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_occ_code ON %[1]s(occ_code);`, config.CareerTableName),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_area_title ON %[1]s(area_title);`, config.CareerTableName),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_occ_title ON %[1]s(occ_title);`, config.CareerTableName),
		`PRAGMA user_version = 1;`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return storageError(d.path, "failed to migrate schema", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError(d.path, "failed to commit migration", err)
	}
	return nil
}

// ReplaceCareerData swaps the table contents for records in one
// transaction. Readers see either the old rows or the new rows.
func (d *DB) ReplaceCareerData(ctx context.Context, records []domain.CombinedRecord) (int, error) {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageError(d.path, "failed to begin load", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s;`, config.CareerTableName)); err != nil {
		return 0, storageError(d.path, "failed to clear career data", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
INSERT INTO %s (%s)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`, config.CareerTableName, strings.Join(careerColumns, ", ")))
	if err != nil {
		return 0, storageError(d.path, "failed to prepare insert", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx,
			r.AreaTitle,
			r.OccCode,
			r.OccTitle,
			nullString(r.Education),
			nullString(r.Experience),
			nullInt(r.TotEmp),
			nullInt(r.Median),
			nullInt(r.Pct10),
			nullInt(r.Pct25),
			nullInt(r.Pct75),
			nullInt(r.Pct90),
		); err != nil {
			return 0, storageError(d.path, fmt.Sprintf("failed to insert row %d", i+1), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, storageError(d.path, "failed to commit load", err)
	}
	return len(records), nil
}

// CountCareerData returns the number of rows in the career table
func (d *DB) CountCareerData(ctx context.Context) (int, error) {
	var n int
	err := d.Pool.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, config.CareerTableName)).Scan(&n)
	if err != nil {
		return 0, storageError(d.path, "failed to count career data", err)
	}
	return n, nil
}

// TotalEmployment returns the national all-occupations employment. Every
// area has a total row, so the largest one is the nation's.
func (d *DB) TotalEmployment(ctx context.Context) (domain.NullInt64, error) {
	var total sql.NullInt64
	err := d.Pool.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT tot_emp FROM %s WHERE occ_code = ? AND tot_emp IS NOT NULL ORDER BY tot_emp DESC LIMIT 1;`,
		config.CareerTableName), domain.TotalOccCode).Scan(&total)
	if err == sql.ErrNoRows {
		return domain.NullInt64{}, nil
	}
	if err != nil {
		return domain.NullInt64{}, storageError(d.path, "failed to read total employment", err)
	}
	return domain.NullInt64{Value: total.Int64, Valid: total.Valid}, nil
}

// LoadCareerData reads back every row in insertion order
func (d *DB) LoadCareerData(ctx context.Context) ([]domain.CombinedRecord, error) {
	rows, err := d.Pool.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM %s ORDER BY id;`,
		strings.Join(careerColumns, ", "), config.CareerTableName))
	if err != nil {
		return nil, storageError(d.path, "failed to query career data", err)
	}
	defer rows.Close()

	var out []domain.CombinedRecord
	for rows.Next() {
		var (
			r                     domain.CombinedRecord
			education, experience sql.NullString
			emp, median           sql.NullInt64
			p10, p25, p75, p90    sql.NullInt64
		)
		if err := rows.Scan(&r.AreaTitle, &r.OccCode, &r.OccTitle, &education, &experience,
			&emp, &median, &p10, &p25, &p75, &p90); err != nil {
			return nil, storageError(d.path, "failed to scan career data", err)
		}
		r.Education = domain.NullString{Value: education.String, Valid: education.Valid}
		r.Experience = domain.NullString{Value: experience.String, Valid: experience.Valid}
		r.TotEmp = fromSQLInt(emp)
		r.Median = fromSQLInt(median)
		r.Pct10 = fromSQLInt(p10)
		r.Pct25 = fromSQLInt(p25)
		r.Pct75 = fromSQLInt(p75)
		r.Pct90 = fromSQLInt(p90)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(d.path, "failed to read career data", err)
	}
	return out, nil
}

func nullInt(v domain.NullInt64) sql.NullInt64 {
	return sql.NullInt64{Int64: v.Value, Valid: v.Valid}
}

func nullString(v domain.NullString) sql.NullString {
	return sql.NullString{String: v.Value, Valid: v.Valid}
}

func fromSQLInt(v sql.NullInt64) domain.NullInt64 {
	return domain.NullInt64{Value: v.Int64, Valid: v.Valid}
}
