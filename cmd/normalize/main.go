// Command normalize cleans the OEWS wage survey workbook into
// cleaned_oes_data.csv: cross-industry, detailed occupations plus the
// all-occupations total, one row per (area, occupation).
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
	in := flag.String("in", "", "raw wage survey workbook (defaults to "+config.RawWageFileName+")")
	out := flag.String("out", "", "cleaned wage CSV (defaults to "+config.CleanedWageFileName+")")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	os.Exit(app.Main(context.Background(), *configFile, overrides(*in, *out), pipeline.Normalize()))
}

func overrides(in, out string) func(*config.Config) {
	return func(cfg *config.Config) {
		if in != "" {
			cfg.Paths.RawWageFile = in
		}
		if out != "" {
			cfg.Paths.CleanedWageFile = out
		}
	}
}
