// Package config provides configuration for the career data pipeline.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//  1. Environment variables (highest priority)
//  2. YAML configuration file (djrc.yaml, config.yaml or configs/config.yaml)
//  3. Default values (lowest priority)
//
// With neither a file nor environment variables every stage reads and writes
// the fixed file names in the working directory.
//
// # Environment Variables
//
// All environment variables follow the pattern DJRC_*:
//
//	DJRC_PATHS_WORK_DIR=/data/bls
//	DJRC_PIPELINE_NULL_POLICY=either
//	DJRC_LOGGING_LEVEL=debug
//	DJRC_METRICS_TEXTFILE_PATH=/var/lib/node_exporter/djrc.prom
package config
