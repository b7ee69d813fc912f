package config

import "time"

// Application constants
const (
	AppName = "Dream Job Reality Check"

	// EnvPrefix namespaces environment overrides, e.g. DJRC_PIPELINE_NULL_POLICY
	EnvPrefix = "DJRC"

	// Input and output files, relative to the working directory
	RawWageFileName     = "all_data_M_2023.xlsx"
	CleanedWageFileName = "cleaned_oes_data.csv"
	EducationFileName   = "education.xlsx"
	CombinedFileName    = "combined_career_data.csv"
	CareerDBFileName    = "career_data.db"

	// Education workbook layout
	EducationSheetName = "Table 5.4"
	EducationSkipRows  = 1

	// Null-drop policies for rows missing total employment / median wage
	NullPolicyBoth   = "both"
	NullPolicyEither = "either"

	DefaultLogsDir  = "logs"
	DefaultLogLevel = "info"

	// SQLite
	CareerTableName   = "career_data"
	SQLiteBusyTimeout = 5 * time.Second
	SQLitePingTimeout = 2 * time.Second

	// LockSuffix is appended to an output path to form its run lock file
	LockSuffix = ".lock"
)

// MissingValueSentinels are the survey's markers for suppressed or unavailable cells
var MissingValueSentinels = []string{"*", "**", "#"}

// Hints printed when an input file is absent
const (
	RawWageFileHint   = "Please download it from the BLS OEWS website and place it here."
	CleanedWageHint   = "Please run the normalize stage first to generate this file."
	EducationFileHint = "Please download it from the BLS Employment Projections page and place it here."
	CombinedFileHint  = "Please run the enrich stage first to generate this file."
)
