package pipeline

import (
	"context"

	"github.com/ethandillon/DreamJobRealityCheck/internal/app"
	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
	"github.com/ethandillon/DreamJobRealityCheck/internal/dataprocessing"
	"github.com/ethandillon/DreamJobRealityCheck/internal/exporter"
)

// Enrich joins the cleaned wages with the education workbook
func Enrich() app.Stage {
	return app.Stage{
		Name:   "enrich",
		Output: func(p *config.Paths) string { return p.CombinedFile },
		Run:    runEnrich,
	}
}

func runEnrich(ctx context.Context, rt *app.Runtime) error {
	enricher := dataprocessing.NewEnricher(dataprocessing.EnrichOptions{
		Sheet:         rt.Config.Pipeline.EducationSheet,
		SkipRows:      rt.Config.Pipeline.EducationSkipRows,
		WageHint:      config.CleanedWageHint,
		EducationHint: config.EducationFileHint,
	}, rt.Logger)

	combined, report, err := enricher.EnrichFiles(ctx, rt.Paths.CleanedWageFile, rt.Paths.EducationFile)
	if err != nil {
		return err
	}

	rt.Metrics.SetRows("wages", report.WageRows)
	rt.Metrics.SetRows("education_read", report.EducationRowsRead)
	rt.Metrics.SetRows("education_duplicates", report.EducationDuplicates)
	rt.Metrics.SetRows("education", report.EducationRows)
	rt.Metrics.SetRows("matched", report.Matched)
	rt.Metrics.SetRows("unmatched", report.Unmatched)
	rt.Metrics.SetRows("written", report.RowsWritten)

	return exporter.NewTableExporter(rt.Files, rt.Logger).
		WithBOM(rt.Config.Pipeline.CSVBOM).
		WriteCombined(ctx, rt.Paths.CombinedFile, combined)
}
