package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ethandillon/DreamJobRealityCheck/internal/app"
	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
	"github.com/ethandillon/DreamJobRealityCheck/internal/pipeline"
	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts"
)

// pathFlag binds a command line flag to one of the configured paths
type pathFlag struct {
	name   string
	usage  string
	target func(*config.PathsConfig) *string
	value  string
}

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:     "djrc",
		Short:   "Build the Dream Job Reality Check career database",
		Version: contracts.Version,
		Long: `djrc turns the OEWS wage survey and the employment projections education
table into combined_career_data.csv and the career_data SQLite table.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"path to config file (defaults to djrc.yaml or config.yaml if present)")

	rootCmd.AddCommand(
		stageCmd(&configFile, pipeline.Normalize(), "Clean the wage survey workbook into "+config.CleanedWageFileName,
			&pathFlag{name: "in", usage: "raw wage survey workbook", target: func(p *config.PathsConfig) *string { return &p.RawWageFile }},
			&pathFlag{name: "out", usage: "cleaned wage CSV", target: func(p *config.PathsConfig) *string { return &p.CleanedWageFile }},
		),
		stageCmd(&configFile, pipeline.Enrich(), "Join cleaned wages with education requirements into "+config.CombinedFileName,
			&pathFlag{name: "wages", usage: "cleaned wage CSV", target: func(p *config.PathsConfig) *string { return &p.CleanedWageFile }},
			&pathFlag{name: "education", usage: "education workbook", target: func(p *config.PathsConfig) *string { return &p.EducationFile }},
			&pathFlag{name: "out", usage: "combined CSV", target: func(p *config.PathsConfig) *string { return &p.CombinedFile }},
		),
		stageCmd(&configFile, pipeline.CareerDB(), "Load "+config.CombinedFileName+" into the career database",
			&pathFlag{name: "in", usage: "combined CSV", target: func(p *config.PathsConfig) *string { return &p.CombinedFile }},
			&pathFlag{name: "db", usage: "SQLite database", target: func(p *config.PathsConfig) *string { return &p.CareerDB }},
		),
		allCmd(&configFile),
		versionCmd(),
	)
	return rootCmd
}

func stageCmd(configFile *string, stage app.Stage, short string, flags ...*pathFlag) *cobra.Command {
	cmd := &cobra.Command{
		Use:   stage.Name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			silenceReported(cmd)
			ctx := cmd.Context()
			cfg, err := app.LoadConfig(ctx, *configFile, applyPathFlags(flags), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return app.Execute(ctx, cfg, stage, cmd.ErrOrStderr())
		},
	}
	for _, f := range flags {
		cmd.Flags().StringVar(&f.value, f.name, "", f.usage+" (defaults to the configured path)")
	}
	return cmd
}

func allCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run normalize, enrich and careerdb in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			silenceReported(cmd)
			ctx := cmd.Context()
			cfg, err := app.LoadConfig(ctx, *configFile, nil, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return pipeline.RunAll(ctx, cfg, cmd.ErrOrStderr())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), contracts.GetFullVersionString())
		},
	}
}

func applyPathFlags(flags []*pathFlag) func(*config.Config) {
	return func(cfg *config.Config) {
		for _, f := range flags {
			if f.value != "" {
				*f.target(&cfg.Paths) = f.value
			}
		}
	}
}

// silenceReported stops cobra from printing errors and usage once flags
// have parsed; from then on failures are reported by the stage runner.
func silenceReported(cmd *cobra.Command) {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
}
