// Command enrich joins cleaned_oes_data.csv with the typical entry
// education and experience from the employment projections workbook,
// producing combined_career_data.csv.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ethandillon/DreamJobRealityCheck/internal/app"
	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
	"github.com/ethandillon/DreamJobRealityCheck/internal/pipeline"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts"
)

func main() {
	configFile := flag.String("config", "", "path to config file (defaults to djrc.yaml or config.yaml if present)")
	wages := flag.String("wages", "", "cleaned wage CSV (defaults to "+config.CleanedWageFileName+")")
	education := flag.String("education", "", "education workbook (defaults to "+config.EducationFileName+")")
	out := flag.String("out", "", "combined CSV (defaults to "+config.CombinedFileName+")")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	os.Exit(app.Main(context.Background(), *configFile, overrides(*wages, *education, *out), pipeline.Enrich()))
}

func overrides(wages, education, out string) func(*config.Config) {
	return func(cfg *config.Config) {
		if wages != "" {
			cfg.Paths.CleanedWageFile = wages
		}
		if education != "" {
			cfg.Paths.EducationFile = education
		}
		if out != "" {
			cfg.Paths.CombinedFile = out
		}
	}
}
