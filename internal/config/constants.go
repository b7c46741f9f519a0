package config

// Application constants - all hardcoded values for the ranking tools
const (
	// Application Info
	AppName = "rankcli"

	// Environment variable prefix used by Load
	EnvPrefix = "RANKCLI"

	// Config file looked up in the working directory when RANKCLI_CONFIG_FILE is unset
	DefaultConfigFile = "rankcli.yaml"

	// Academic year stamped onto every completed row
	AcademicYearStart = "2024-09-01"
	AcademicYearEnd   = "2025-06-30"

	// Ranking sheet columns
	ColumnRank       = "Rank"
	ColumnRanking    = "Ranking"
	ColumnUniversity = "University"
	ColumnCode       = "Code"
	ColumnCountry    = "Country"
	ColumnScore      = "Score"
	ColumnRegion     = "Region"
	ColumnStartDate  = "Start Date"
	ColumnEndDate    = "End Date"

	// ScorePlaceholder marks a score that is not known yet
	ScorePlaceholder = "-"

	// UnknownCountry groups rows without a Country value in exports
	UnknownCountry = "Unknown"

	// File Paths (relative to the working directory)
	DefaultAssetsDir      = "assets"
	RankingInputFile      = "assets/Ranking - Sheet1.csv"
	RankingOutputFile     = "assets/Ranking - Sheet1-completed.csv"
	DefaultCountryDataDir = "data/university_data"
	DefaultLogsDir        = "logs"
	CountrySummaryFile    = "summary.json"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	// Export Settings
	ExportWorkers      = 4
	SummarySheetName   = "Summary"
	MaxSheetNameLength = 31
)
