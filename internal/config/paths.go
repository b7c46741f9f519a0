package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the application paths
// This is the single source of truth for ALL file paths in the application
type Paths struct {
	BaseDir        string
	AssetsDir      string
	DataDir        string
	CountryDataDir string
	LogsDir        string

	// Well-known files
	RankingCSV         string
	CompletedCSV       string
	CountrySummaryJSON string
}

// GetPaths returns the application paths relative to the working directory.
// The ranking sheet lives next to the project, not next to the binary, so
// the tools are expected to be run from the project root.
func GetPaths() (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewPaths(wd), nil
}

// NewPaths builds the path layout rooted at baseDir.
// Directory structure:
//
//	<base>/
//	  ├── assets/
//	  │   ├── Ranking - Sheet1.csv            (input sheet)
//	  │   └── Ranking - Sheet1-completed.csv  (completed sheet)
//	  ├── data/
//	  │   └── university_data/                (per-country JSON)
//	  └── logs/
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	countryDir := filepath.Join(baseDir, filepath.FromSlash(DefaultCountryDataDir))

	return &Paths{
		BaseDir:            baseDir,
		AssetsDir:          filepath.Join(baseDir, DefaultAssetsDir),
		DataDir:            dataDir,
		CountryDataDir:     countryDir,
		LogsDir:            filepath.Join(baseDir, DefaultLogsDir),
		RankingCSV:         filepath.Join(baseDir, filepath.FromSlash(RankingInputFile)),
		CompletedCSV:       filepath.Join(baseDir, filepath.FromSlash(RankingOutputFile)),
		CountrySummaryJSON: filepath.Join(countryDir, CountrySummaryFile),
	}
}

// EnsureDirectories creates the directories every tool writes into
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.AssetsDir,
		p.LogsDir,
	}

	logger := slog.Default()
	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		logger.Debug("Ensured directory exists", slog.String("directory", dir))
	}

	return nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetAssetPath returns the path for a file in the assets directory
func (p *Paths) GetAssetPath(filename string) string {
	return filepath.Join(p.AssetsDir, filename)
}

// GetCountryFilePath returns the path of a per-country JSON file
func (p *Paths) GetCountryFilePath(filename string) string {
	return filepath.Join(p.CountryDataDir, filename)
}

// LogPathResolution logs the resolved layout for debugging
func (p *Paths) LogPathResolution() {
	slog.Default().Info("Path resolution summary",
		slog.Group("directories",
			slog.String("base", p.BaseDir),
			slog.String("assets", p.AssetsDir),
			slog.String("country_data", p.CountryDataDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("files",
			slog.String("ranking_csv", p.RankingCSV),
			slog.String("completed_csv", p.CompletedCSV),
			slog.String("country_summary", p.CountrySummaryJSON),
		))
}
