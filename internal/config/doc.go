// Package config provides centralized configuration and path management for
// the ranking tools.
//
// # Configuration Sources
//
// Ambient configuration (logging, telemetry) is loaded from the following
// sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML file named by RANKCLI_CONFIG_FILE, or rankcli.yaml in the working directory
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern RANKCLI_*:
//
//	RANKCLI_LOGGING_LEVEL=debug
//	RANKCLI_LOGGING_OUTPUT=both
//	RANKCLI_TELEMETRY_TRACE_EXPORTER=stdout
//	RANKCLI_TELEMETRY_METRICS_TEXTFILE=/var/lib/node_exporter/rankfill.prom
//
// # Fixed Values
//
// The sheet locations, the academic-year dates and the column names are
// constants (see constants.go). They are not configurable.
//
// # Path Management
//
// Paths resolves every file location against the working directory:
//
//	paths, err := config.GetPaths()
//	input := paths.RankingCSV
//	output := paths.CompletedCSV
package config
