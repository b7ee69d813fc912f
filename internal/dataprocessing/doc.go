// Package dataprocessing implements the two transforms of the career data
// pipeline.
//
// # Architecture
//
//  1. Normalizer: reads the occupational employment and wage survey
//     workbook, keeps cross-industry rows for detailed occupations plus the
//     per-area all-occupations total, removes duplicate (area, occupation)
//     pairs and coerces the wage columns to nullable integers.
//  2. Enricher: reads the cleaned wage table and the education requirements
//     sheet, renames the three education columns and left-joins them onto
//     the wages by occupation code.
//
// Both are built from pure functions over record slices (FilterCrossIndustry,
// DedupeWages, DropMissing, SelectEducationColumns, DedupeEducation,
// LeftJoin) so each step can be tested on its own.
//
// # Data Flow
//
//	survey.xlsx → ReadSheet → ParseWageRows → filters → DedupeWages → DropMissing → []WageRecord
//	[]WageRecord + education.xlsx → SelectEducationColumns → DedupeEducation → LeftJoin → []CombinedRecord
//
// # Error Handling
//
// Missing files, sheets and columns are returned as typed errors from
// internal/errors so the caller can print a precise diagnostic and stop
// before anything is written. Unparseable numbers are not errors: they
// become null cells and are counted in the stage report.
package dataprocessing
