package files

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
)

// Manager provides file management operations
type Manager struct {
	workDir string
	logger  *slog.Logger
}

// NewManager creates a new file manager rooted at workDir
func NewManager(workDir string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		workDir: workDir,
		logger:  logger.With(slog.String("component", "file_manager")),
	}
}

// FileExists checks if a file exists at the given path
func (m *Manager) FileExists(path string) bool {
	fullPath := m.Resolve(path)
	_, err := os.Stat(fullPath)
	exists := err == nil

	m.logger.Debug("FileExists check",
		slog.String("path", path),
		slog.String("full_path", fullPath),
		slog.Bool("exists", exists))

	return exists
}

// CreateDirectory creates a directory with all parent directories
func (m *Manager) CreateDirectory(path string) error {
	fullPath := m.Resolve(path)

	m.logger.Debug("Creating directory",
		slog.String("path", path),
		slog.String("full_path", fullPath))

	return os.MkdirAll(fullPath, 0755)
}

// WriteAtomic writes the file at path through write. The content lands in
// a temporary file in the same directory and replaces path with a rename
// once write, flush and sync have all succeeded. On any error the
// temporary file is removed and an existing file at path is untouched.
func (m *Manager) WriteAtomic(path string, write func(w io.Writer) error) (err error) {
	fullPath := m.Resolve(path)
	dir := filepath.Dir(fullPath)

	if err := m.CreateDirectory(filepath.Dir(path)); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create directory %s", dir), err).
			WithContext(apperrors.CtxPath, fullPath)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create temporary file for %s", fullPath), err).
			WithContext(apperrors.CtxPath, fullPath)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return err
	}
	if err = buf.Flush(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write %s", fullPath), err).
			WithContext(apperrors.CtxPath, fullPath)
	}
	if err = tmp.Sync(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to sync %s", fullPath), err).
			WithContext(apperrors.CtxPath, fullPath)
	}
	if err = tmp.Close(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to close %s", fullPath), err).
			WithContext(apperrors.CtxPath, fullPath)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to set permissions on %s", fullPath), err).
			WithContext(apperrors.CtxPath, fullPath)
	}
	if err = os.Rename(tmpPath, fullPath); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to replace %s", fullPath), err).
			WithContext(apperrors.CtxPath, fullPath)
	}

	m.logger.Debug("File written", slog.String("path", fullPath))
	return nil
}

// GetFileSize returns the size of a file in bytes
func (m *Manager) GetFileSize(path string) (int64, error) {
	info, err := os.Stat(m.Resolve(path))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Resolve returns path unchanged when absolute, otherwise joined to the
// working directory
func (m *Manager) Resolve(path string) string {
	if filepath.IsAbs(path) || m.workDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(m.workDir, path)
}
