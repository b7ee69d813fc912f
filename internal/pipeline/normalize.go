package pipeline

import (
	"context"

	"github.com/ethandillon/DreamJobRealityCheck/internal/app"
	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
	"github.com/ethandillon/DreamJobRealityCheck/internal/dataprocessing"
	"github.com/ethandillon/DreamJobRealityCheck/internal/exporter"
)

// Normalize cleans the wage survey workbook into the cleaned wage CSV
func Normalize() app.Stage {
	return app.Stage{
		Name:   "normalize",
		Output: func(p *config.Paths) string { return p.CleanedWageFile },
		Run:    runNormalize,
	}
}

func runNormalize(ctx context.Context, rt *app.Runtime) error {
	policy, err := dataprocessing.ParseNullPolicy(rt.Config.Pipeline.NullPolicy)
	if err != nil {
		return err
	}

	normalizer := dataprocessing.NewNormalizer(dataprocessing.NormalizeOptions{
		Sheet:      rt.Config.Pipeline.RawWageSheet,
		Sentinels:  config.MissingValueSentinels,
		NullPolicy: policy,
		InputHint:  config.RawWageFileHint,
	}, rt.Logger)

	records, report, err := normalizer.NormalizeFile(ctx, rt.Paths.RawWageFile)
	if err != nil {
		return err
	}

	rt.Metrics.SetRows("read", report.RowsRead)
	rt.Metrics.SetRows("cross_industry", report.CrossIndustry)
	rt.Metrics.SetRows("detailed_or_total", report.DetailedOrTotal)
	rt.Metrics.SetRows("duplicates_removed", report.DuplicatesRemoved)
	rt.Metrics.SetRows("dropped_missing", report.DroppedMissing)
	rt.Metrics.SetRows("written", report.RowsWritten)
	rt.Metrics.SetRows("malformed_occ_codes", report.MalformedOccCodes)
	for col, n := range report.NullCells {
		rt.Metrics.SetNullCells(col, n)
	}

	return exporter.NewTableExporter(rt.Files, rt.Logger).
		WithBOM(rt.Config.Pipeline.CSVBOM).
		WriteWages(ctx, rt.Paths.CleanedWageFile, records)
}
