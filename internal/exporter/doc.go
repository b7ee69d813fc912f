// Package exporter writes the pipeline's CSV outputs.
//
// CSVWriter is the low level writer: a header row and string records,
// written atomically through files.Manager so that a failed run leaves any
// previous output untouched. A UTF-8 byte order mark can be requested for
// spreadsheet tools that need one; it is off by default.
//
// TableExporter renders domain records in their fixed column order. Null
// measures are written as empty cells, so every value survives a read back
// through dataprocessing.ReadWageCSV or dataprocessing.ReadCombinedCSV.
//
// Example usage:
//
//	exp := exporter.NewTableExporter(files.NewManager(paths.WorkDir, logger), logger)
//	err := exp.WriteCombined(ctx, paths.CombinedFile, combined)
package exporter
