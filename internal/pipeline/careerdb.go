package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethandillon/DreamJobRealityCheck/internal/app"
	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
	"github.com/ethandillon/DreamJobRealityCheck/internal/dataprocessing"
	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
	"github.com/ethandillon/DreamJobRealityCheck/internal/store"
	"github.com/ethandillon/DreamJobRealityCheck/internal/validation"
)

// CareerDB loads the combined CSV into the career_data table
func CareerDB() app.Stage {
	return app.Stage{
		Name:   "careerdb",
		Output: func(p *config.Paths) string { return p.CareerDB },
		Run:    runCareerDB,
	}
}

func runCareerDB(ctx context.Context, rt *app.Runtime) error {
	err := validation.NewFileValidator(rt.Logger).ValidateInput(validation.InputFile{
		Path: rt.Paths.CombinedFile,
		Kind: validation.KindCSV,
		Hint: config.CombinedFileHint,
	})
	if err != nil {
		return err
	}

	records, err := dataprocessing.ReadCombinedCSV(rt.Paths.CombinedFile)
	if err != nil {
		return err
	}
	rt.Metrics.SetRows("read", len(records))
	rt.Logger.InfoContext(ctx, "Combined data loaded",
		slog.String("file", rt.Paths.CombinedFile),
		slog.Int("rows", len(records)))

	db, err := store.Open(rt.Paths.CareerDB)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	loaded, err := db.ReplaceCareerData(ctx, records)
	if err != nil {
		return err
	}

	count, err := db.CountCareerData(ctx)
	if err != nil {
		return err
	}
	if count != len(records) {
		return apperrors.NewStorageError(
			fmt.Sprintf("career_data holds %d rows after loading %d", count, len(records)), nil).
			WithContext(apperrors.CtxPath, db.Path())
	}
	rt.Metrics.SetRows("written", count)

	// unfiltered: every detailed occupation against the national total
	summary, err := db.Opportunities(ctx, store.OpportunityFilter{})
	if err != nil {
		return err
	}

	rt.Logger.InfoContext(ctx, "Career database loaded",
		slog.String("database", db.Path()),
		slog.Int("rows", loaded),
		slog.String("national_total_employment", summary.TotalJobs.String()),
		slog.Int64("occupation_employment", summary.MatchingJobs),
		slog.Float64("occupation_coverage_pct", summary.Percentage))
	return nil
}
