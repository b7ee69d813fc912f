package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
	"github.com/ethandillon/DreamJobRealityCheck/internal/files"
	"github.com/ethandillon/DreamJobRealityCheck/internal/infrastructure"
	"github.com/ethandillon/DreamJobRealityCheck/internal/validation"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts"
)

// Stage is one pipeline step run by a command binary
type Stage struct {
	Name string
	// Output picks the file the stage writes; it is guarded by a run lock
	Output func(*config.Paths) string
	Run    func(ctx context.Context, rt *Runtime) error
}

// Runtime carries what a running stage needs
type Runtime struct {
	Config  *config.Config
	Paths   *config.Paths
	Logger  *slog.Logger
	Metrics *infrastructure.RunMetrics
	Files   *files.Manager
}

// Main loads the configuration, applies override (typically command line
// flags), executes stage and returns the process exit status.
func Main(ctx context.Context, configFile string, override func(*config.Config), stage Stage) int {
	cfg, err := LoadConfig(ctx, configFile, override, os.Stderr)
	if err != nil {
		return 1
	}

	if err := Execute(ctx, cfg, stage, os.Stderr); err != nil {
		return 1
	}
	return 0
}

// LoadConfig loads the configuration and applies override. A failure is
// reported to stderr before being returned.
func LoadConfig(ctx context.Context, configFile string, override func(*config.Config), stderr io.Writer) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		err = apperrors.NewConfigError("failed to load configuration", err)
		apperrors.NewErrorHandler(slog.Default(), stderr).Report(ctx, err)
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	return cfg, nil
}

// Execute runs stage with cfg. Failures are reported to stderr and the
// stage log before being returned.
func Execute(ctx context.Context, cfg *config.Config, stage Stage, stderr io.Writer) (err error) {
	paths := cfg.ResolvePaths()
	if err := paths.EnsureDirectories(); err != nil {
		err = apperrors.NewStorageError("failed to create required directories", err)
		apperrors.NewErrorHandler(slog.Default(), stderr).Report(ctx, err)
		return err
	}

	logger, logErr := infrastructure.ReplaceLogger(infrastructure.StageLoggingConfig(cfg.Logging, paths, stage.Name))
	if logErr != nil {
		slog.Warn("Failed to initialize logger, using default", "error", logErr)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.NewRunContext(ctx)
	logger = infrastructure.WithComponent(logger, stage.Name)
	handler := apperrors.NewErrorHandler(logger, stderr)

	logger.InfoContext(ctx, fmt.Sprintf("Starting %s stage", stage.Name),
		slog.String("app", config.AppName),
		slog.String("version", contracts.Version),
		slog.String("work_dir", paths.WorkDir))
	paths.LogPathResolution(logger)

	metrics := infrastructure.NewRunMetrics(stage.Name)
	start := time.Now()

	defer func() {
		metrics.Finish(start, err)
		if werr := metrics.WriteTextfile(cfg.Metrics.TextfilePath); werr != nil {
			logger.WarnContext(ctx, "Failed to write metrics textfile",
				slog.String("path", cfg.Metrics.TextfilePath),
				slog.String("error", werr.Error()))
		}
		if err != nil {
			handler.Report(ctx, err)
			return
		}
		logger.InfoContext(ctx, fmt.Sprintf("%s stage completed", stage.Name),
			slog.Duration("duration", time.Since(start)))
	}()

	output := stage.Output(paths)
	if err := validation.NewFileValidator(logger).ValidateOutputDirectory(filepath.Dir(output)); err != nil {
		return err
	}

	lock, err := files.AcquireRunLock(paths.GetLockPath(output))
	if err != nil {
		return err
	}
	defer lock.Release()
	logger.DebugContext(ctx, "Run lock acquired", slog.String("lock", lock.Path()))

	rt := &Runtime{
		Config:  cfg,
		Paths:   paths,
		Logger:  logger,
		Metrics: metrics,
		Files:   files.NewManager(paths.WorkDir, logger),
	}
	return stage.Run(ctx, rt)
}
