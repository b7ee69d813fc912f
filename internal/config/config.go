package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
// Precedence: environment (DJRC_*) over config file over Default().
type Config struct {
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Metrics  MetricsConfig  `yaml:"metrics" envconfig:"METRICS"`
}

// PathsConfig names the files each stage reads and writes.
// Relative names resolve against WorkDir.
type PathsConfig struct {
	WorkDir         string `yaml:"work_dir" envconfig:"WORK_DIR" validate:"required"`
	RawWageFile     string `yaml:"raw_wage_file" envconfig:"RAW_WAGE_FILE" validate:"required"`
	CleanedWageFile string `yaml:"cleaned_wage_file" envconfig:"CLEANED_WAGE_FILE" validate:"required"`
	EducationFile   string `yaml:"education_file" envconfig:"EDUCATION_FILE" validate:"required"`
	CombinedFile    string `yaml:"combined_file" envconfig:"COMBINED_FILE" validate:"required"`
	CareerDB        string `yaml:"career_db" envconfig:"CAREER_DB" validate:"required"`
	LogsDir         string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// PipelineConfig contains the transform settings
type PipelineConfig struct {
	// NullPolicy selects which rows the normalizer drops:
	// "both" drops rows missing total employment and median wage,
	// "either" drops rows missing either of them.
	NullPolicy string `yaml:"null_policy" envconfig:"NULL_POLICY" validate:"oneof=both either"`

	// RawWageSheet is the survey sheet; empty means the first sheet
	RawWageSheet string `yaml:"raw_wage_sheet" envconfig:"RAW_WAGE_SHEET"`

	EducationSheet    string `yaml:"education_sheet" envconfig:"EDUCATION_SHEET" validate:"required"`
	EducationSkipRows int    `yaml:"education_skip_rows" envconfig:"EDUCATION_SKIP_ROWS" validate:"min=0"`

	// CSVBOM starts the written CSV files with a UTF-8 byte order mark for Excel
	CSVBOM bool `yaml:"csv_bom" envconfig:"CSV_BOM"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// MetricsConfig controls the per-run metrics textfile
type MetricsConfig struct {
	// TextfilePath, when set, receives the run's counters in Prometheus text format
	TextfilePath string `yaml:"textfile_path" envconfig:"TEXTFILE_PATH"`
}

// Load builds the configuration from defaults, an optional YAML file and
// the environment. An empty configFile searches the usual locations.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Only variables that are actually set override; the struct carries no
	// default tags so envconfig leaves everything else untouched.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML keys present in filePath onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	// JSON is the only log format
	c.Logging.Format = "json"

	if err := validator.New().Struct(c); err != nil {
		return err
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"djrc.yaml",
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if FileExists(location) {
			return location
		}
	}

	return ""
}

// Default returns the configuration used with no file and no environment:
// the fixed file names in the working directory.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			WorkDir:         ".",
			RawWageFile:     RawWageFileName,
			CleanedWageFile: CleanedWageFileName,
			EducationFile:   EducationFileName,
			CombinedFile:    CombinedFileName,
			CareerDB:        CareerDBFileName,
			LogsDir:         DefaultLogsDir,
		},
		Pipeline: PipelineConfig{
			NullPolicy:        NullPolicyBoth,
			EducationSheet:    EducationSheetName,
			EducationSkipRows: EducationSkipRows,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: "json",
			Output: "both",
		},
	}
}
