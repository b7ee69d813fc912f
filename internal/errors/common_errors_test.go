package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "not found error type", errType: ErrTypeNotFound, expected: "NOT_FOUND"},
		{name: "sheet error type", errType: ErrTypeSheet, expected: "SHEET"},
		{name: "schema error type", errType: ErrTypeSchema, expected: "SCHEMA"},
		{name: "parsing error type", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "storage error type", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "config error type", errType: ErrTypeConfig, expected: "CONFIG"},
		{name: "conflict error type", errType: ErrTypeConflict, expected: "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeNotFound,
				Message: "education.xlsx not found",
			},
			wantMessage: "[NOT_FOUND] education.xlsx not found",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeParsing,
				Message: "failed to open workbook",
				Cause:   fmt.Errorf("zip: not a valid zip file"),
			},
			wantMessage: "[PARSING] failed to open workbook: zip: not a valid zip file",
		},
		{
			name: "error with empty message",
			appError: &AppError{
				Type: ErrTypeConfig,
			},
			wantMessage: "[CONFIG] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("failed to write output", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, NewMissingFileError("x.csv", "").Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrTypeSchema, Message: "bad columns"}
	require.Nil(t, err.Context)

	got := err.WithContext("rows", 3).WithContext("sheet", "Table 5.4")

	assert.Same(t, err, got)
	assert.Equal(t, 3, err.Context["rows"])
	assert.Equal(t, "Table 5.4", err.Context["sheet"])
}

func TestNewMissingFileError(t *testing.T) {
	err := NewMissingFileError("cleaned_oes_data.csv", "Run the normalize stage first.")

	assert.Equal(t, ErrTypeNotFound, err.Type)
	assert.Contains(t, err.Message, "cleaned_oes_data.csv")
	assert.Equal(t, "cleaned_oes_data.csv", err.Context[CtxPath])
	assert.Equal(t, "Run the normalize stage first.", err.Context[CtxHint])
}

func TestNewMissingSheetError(t *testing.T) {
	err := NewMissingSheetError("education.xlsx", "Table 5.4", []string{"Table 1.1", "Table 5.3"})

	assert.Equal(t, ErrTypeSheet, err.Type)
	assert.Equal(t, "Table 5.4", err.Context[CtxSheet])
	assert.Equal(t, []string{"Table 1.1", "Table 5.3"}, err.Context[CtxAvailableSheets])
}

func TestNewMissingColumnsError(t *testing.T) {
	expected := []string{"A", "B", "C"}
	found := []string{"A", "X"}

	err := NewMissingColumnsError("education.xlsx", expected, found)

	assert.Equal(t, ErrTypeSchema, err.Type)
	assert.Equal(t, expected, err.Context[CtxExpected])
	assert.Equal(t, found, err.Context[CtxFound])
	assert.Equal(t, []string{"B", "C"}, err.Context[CtxMissing])
	assert.Contains(t, err.Message, "missing: B, C")
}

func TestIsType(t *testing.T) {
	wrapped := fmt.Errorf("enrich: %w", NewMissingSheetError("f.xlsx", "Table 5.4", nil))

	assert.True(t, IsType(wrapped, ErrTypeSheet))
	assert.False(t, IsType(wrapped, ErrTypeSchema))
	assert.False(t, IsType(errors.New("plain"), ErrTypeSheet))
	assert.False(t, IsType(nil, ErrTypeSheet))
}

func TestAs(t *testing.T) {
	appErr := NewConflictError("another run holds the lock", nil)
	got, ok := As(fmt.Errorf("wrap: %w", appErr))
	require.True(t, ok)
	assert.Same(t, appErr, got)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
