package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
)

// FileKind is the expected format of an input file
type FileKind string

const (
	KindExcel FileKind = "excel"
	KindCSV   FileKind = "csv"
)

// InputFile describes one file a stage cannot run without
type InputFile struct {
	Path string
	Kind FileKind
	// Hint tells the operator how to produce or obtain the file
	Hint string
}

// FileValidator provides common file validation functions for all executables
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger.With(slog.String("component", "file_validator")),
	}
}

// ValidateInputs checks every input before any of them is read, so a
// stage never does partial work when one file is missing.
func (v *FileValidator) ValidateInputs(inputs ...InputFile) error {
	for _, in := range inputs {
		if err := v.ValidateInput(in); err != nil {
			return err
		}
	}

	v.logger.Info("All required files found", slog.Int("files", len(inputs)))
	return nil
}

// ValidateInput checks a single input exists, is a readable file, and has
// the extension its kind requires.
func (v *FileValidator) ValidateInput(in InputFile) error {
	v.logger.Info("Looking for input file", slog.String("file", in.Path))

	if err := v.ValidateFile(in.Path); err != nil {
		if os.IsNotExist(err) {
			return apperrors.NewMissingFileError(in.Path, in.Hint)
		}
		return apperrors.NewParsingError(fmt.Sprintf("cannot read '%s'", in.Path), err).
			WithContext(apperrors.CtxPath, in.Path)
	}

	switch in.Kind {
	case KindExcel:
		return v.ValidateExcelFile(in.Path)
	case KindCSV:
		return v.ValidateCSVFile(in.Path)
	}
	return nil
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to create output directory %s", dir), err).
			WithContext(apperrors.CtxPath, dir)
	}

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

// ValidateFile checks if a specific file exists and is readable.
// A missing file yields an error satisfying os.IsNotExist.
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return err
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateExcelFile checks the extension of a workbook input
func (v *FileValidator) ValidateExcelFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".xlsm" {
		v.logger.Error("File is not an Excel workbook",
			slog.String("file", path),
			slog.String("extension", ext))
		return apperrors.NewParsingError(
			fmt.Sprintf("file %s is not an Excel workbook (extension: %s)", path, ext), nil).
			WithContext(apperrors.CtxPath, path)
	}

	if strings.HasPrefix(filepath.Base(path), "~$") {
		return apperrors.NewParsingError(fmt.Sprintf("file %s is a temporary Excel lock file", path), nil).
			WithContext(apperrors.CtxPath, path)
	}

	return nil
}

// ValidateCSVFile checks the extension of a CSV input
func (v *FileValidator) ValidateCSVFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" {
		v.logger.Error("File is not a CSV file",
			slog.String("file", path),
			slog.String("extension", ext))
		return apperrors.NewParsingError(
			fmt.Sprintf("file %s is not a CSV file (extension: %s)", path, ext), nil).
			WithContext(apperrors.CtxPath, path)
	}
	return nil
}
