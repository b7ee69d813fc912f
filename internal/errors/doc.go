// Package errors defines the typed errors returned by the pipeline stages and
// the top-level handler that turns them into operator diagnostics.
//
// Unrecoverable conditions (missing input file, missing sheet, missing
// columns) are returned as *AppError values up to main, which passes them to
// ErrorHandler.Report and exits without writing output. Unparseable numeric
// cells are not errors; they become null values in place.
package errors
