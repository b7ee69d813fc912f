package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// ErrorHandler is the single place a failed run is turned into a diagnostic.
// Stages return errors upward; main hands them here and stops.
type ErrorHandler struct {
	logger *slog.Logger
	out    io.Writer
}

// NewErrorHandler creates a new error handler writing human diagnostics to out
func NewErrorHandler(logger *slog.Logger, out io.Writer) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
		out:    out,
	}
}

// Report logs err with its context and prints the diagnostic lines
func (h *ErrorHandler) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	attrs := []any{slog.String("error", err.Error())}
	if appErr, ok := As(err); ok {
		attrs = append(attrs, slog.String("error_type", string(appErr.Type)))
		for _, k := range sortedKeys(appErr.Context) {
			attrs = append(attrs, slog.Any(k, appErr.Context[k]))
		}
	}
	h.logger.ErrorContext(ctx, "run failed", attrs...)

	if h.out != nil {
		fmt.Fprint(h.out, Diagnostic(err))
	}
}

// Diagnostic renders err as operator-facing text, one fact per line
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	appErr, ok := As(err)
	if !ok {
		fmt.Fprintf(&b, "Error: %v\n", err)
		return b.String()
	}

	fmt.Fprintf(&b, "Error: %s\n", appErr.Message)
	if appErr.Cause != nil {
		fmt.Fprintf(&b, "Cause: %v\n", appErr.Cause)
	}

	switch appErr.Type {
	case ErrTypeNotFound:
		if hint, ok := appErr.Context[CtxHint].(string); ok && hint != "" {
			fmt.Fprintln(&b, hint)
		}
	case ErrTypeSheet:
		if sheets, ok := appErr.Context[CtxAvailableSheets].([]string); ok {
			fmt.Fprintf(&b, "Available sheets: %s\n", quoteList(sheets))
		}
		if sheet, ok := appErr.Context[CtxSheet].(string); ok {
			fmt.Fprintf(&b, "Please ensure the file is correct and the sheet is named exactly '%s'.\n", sheet)
		}
	case ErrTypeSchema:
		if expected, ok := appErr.Context[CtxExpected].([]string); ok {
			fmt.Fprintf(&b, "Expected columns: %s\n", quoteList(expected))
		}
		if found, ok := appErr.Context[CtxFound].([]string); ok {
			fmt.Fprintf(&b, "Found columns: %s\n", quoteList(found))
		}
	}
	return b.String()
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
