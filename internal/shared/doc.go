// Package shared holds helpers used across packages that belong to no
// single stage.
//
// The testutil subpackage provides:
//
//   - BufferedSlogHandler, which captures log records for assertions
//   - WriteWorkbook, which builds .xlsx fixtures with excelize
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, logs := testutil.NewTestLogger(t)
//	    path := testutil.WriteWorkbook(t, t.TempDir(), "in.xlsx",
//	        testutil.Sheet{Name: "Data", Rows: [][]interface{}{{"A"}, {1}}})
//	    ...
//	    testutil.AssertLogContains(t, logs, slog.LevelInfo, "Data cleaned")
//	}
package shared
