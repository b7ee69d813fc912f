// Command careerdb loads combined_career_data.csv into the career_data
// table of the SQLite database served to the dashboard.
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
	in := flag.String("in", "", "combined CSV (defaults to "+config.CombinedFileName+")")
	db := flag.String("db", "", "SQLite database (defaults to "+config.CareerDBFileName+")")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	os.Exit(app.Main(context.Background(), *configFile, overrides(*in, *db), pipeline.CareerDB()))
}

func overrides(in, db string) func(*config.Config) {
	return func(cfg *config.Config) {
		if in != "" {
			cfg.Paths.CombinedFile = in
		}
		if db != "" {
			cfg.Paths.CareerDB = db
		}
	}
}
