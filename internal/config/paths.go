package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains every resolved file path a run touches.
// This is the single source of truth for file locations.
type Paths struct {
	WorkDir string
	LogsDir string

	RawWageFile     string
	CleanedWageFile string
	EducationFile   string
	CombinedFile    string
	CareerDB        string
}

// ResolvePaths resolves the configured file names against the working
// directory. The work directory is made absolute first, so every returned
// path is absolute and later joins leave it unchanged.
func (c *Config) ResolvePaths() *Paths {
	workDir := c.Paths.WorkDir
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}
	resolve := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(workDir, name)
	}

	return &Paths{
		WorkDir:         workDir,
		LogsDir:         resolve(c.Paths.LogsDir),
		RawWageFile:     resolve(c.Paths.RawWageFile),
		CleanedWageFile: resolve(c.Paths.CleanedWageFile),
		EducationFile:   resolve(c.Paths.EducationFile),
		CombinedFile:    resolve(c.Paths.CombinedFile),
		CareerDB:        resolve(c.Paths.CareerDB),
	}
}

// FileExists reports whether path names an existing regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// GetLogPath returns the path to a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetLockPath returns the run lock file guarding output
func (p *Paths) GetLockPath(output string) string {
	return output + LockSuffix
}

// EnsureDirectories creates the directories outputs are written into
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.LogsDir,
		filepath.Dir(p.CleanedWageFile),
		filepath.Dir(p.CombinedFile),
		filepath.Dir(p.CareerDB),
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// LogPathResolution logs detailed path resolution information for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.Group("directories",
			slog.String("work", p.WorkDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("files",
			slog.String("raw_wage", p.RawWageFile),
			slog.String("cleaned_wage", p.CleanedWageFile),
			slog.String("education", p.EducationFile),
			slog.String("combined", p.CombinedFile),
			slog.String("career_db", p.CareerDB),
		))
}
