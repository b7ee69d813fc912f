package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

func TestFileValidator_ValidateInput(t *testing.T) {
	dir := t.TempDir()
	xlsx := touch(t, filepath.Join(dir, "education.xlsx"))
	csv := touch(t, filepath.Join(dir, "cleaned_oes_data.csv"))
	lockFile := touch(t, filepath.Join(dir, "~$education.xlsx"))

	tests := []struct {
		name     string
		input    InputFile
		wantType apperrors.ErrorType
	}{
		{
			name:  "existing workbook",
			input: InputFile{Path: xlsx, Kind: KindExcel},
		},
		{
			name:  "existing csv",
			input: InputFile{Path: csv, Kind: KindCSV},
		},
		{
			name:     "missing file",
			input:    InputFile{Path: filepath.Join(dir, "nope.xlsx"), Kind: KindExcel, Hint: "download it"},
			wantType: apperrors.ErrTypeNotFound,
		},
		{
			name:     "directory instead of file",
			input:    InputFile{Path: dir, Kind: KindCSV},
			wantType: apperrors.ErrTypeParsing,
		},
		{
			name:     "csv passed as workbook",
			input:    InputFile{Path: csv, Kind: KindExcel},
			wantType: apperrors.ErrTypeParsing,
		},
		{
			name:     "workbook passed as csv",
			input:    InputFile{Path: xlsx, Kind: KindCSV},
			wantType: apperrors.ErrTypeParsing,
		},
		{
			name:     "excel lock file",
			input:    InputFile{Path: lockFile, Kind: KindExcel},
			wantType: apperrors.ErrTypeParsing,
		},
	}

	v := NewFileValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateInput(tt.input)
			if tt.wantType == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType), "got %v", err)
		})
	}
}

func TestFileValidator_ValidateInputs_ReportsHint(t *testing.T) {
	dir := t.TempDir()
	present := touch(t, filepath.Join(dir, "cleaned_oes_data.csv"))
	missing := filepath.Join(dir, "education.xlsx")

	err := NewFileValidator(nil).ValidateInputs(
		InputFile{Path: present, Kind: KindCSV},
		InputFile{Path: missing, Kind: KindExcel, Hint: "Download it from BLS."},
	)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
	assert.Equal(t, missing, appErr.Context[apperrors.CtxPath])
	assert.Equal(t, "Download it from BLS.", appErr.Context[apperrors.CtxHint])
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, NewFileValidator(nil).ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileValidator_ValidateFile(t *testing.T) {
	v := NewFileValidator(nil)

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, v.ValidateFile(touch(t, filepath.Join(t.TempDir(), "ok.csv"))))
}
