package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetPaths tests working-directory based path resolution
func TestGetPaths(t *testing.T) {
	t.Run("basic path resolution", func(t *testing.T) {
		paths, err := GetPaths()
		require.NoError(t, err)
		require.NotNil(t, paths)

		wd, err := os.Getwd()
		require.NoError(t, err)

		assert.Equal(t, wd, paths.BaseDir)
		assert.True(t, filepath.IsAbs(paths.RankingCSV), "RankingCSV should be absolute")
		assert.True(t, filepath.IsAbs(paths.CompletedCSV), "CompletedCSV should be absolute")
	})

	t.Run("consistent calls return same paths", func(t *testing.T) {
		paths1, err1 := GetPaths()
		require.NoError(t, err1)

		paths2, err2 := GetPaths()
		require.NoError(t, err2)

		assert.Equal(t, paths1, paths2)
	})
}

func TestNewPaths(t *testing.T) {
	base := t.TempDir()
	paths := NewPaths(base)

	assert.Equal(t, filepath.Join(base, "assets"), paths.AssetsDir)
	assert.Equal(t, filepath.Join(base, "assets", "Ranking - Sheet1.csv"), paths.RankingCSV)
	assert.Equal(t, filepath.Join(base, "assets", "Ranking - Sheet1-completed.csv"), paths.CompletedCSV)
	assert.Equal(t, filepath.Join(base, "data", "university_data"), paths.CountryDataDir)
	assert.Equal(t, filepath.Join(base, "data", "university_data", "summary.json"), paths.CountrySummaryJSON)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir)

	// Input and output live side by side
	assert.Equal(t, filepath.Dir(paths.RankingCSV), filepath.Dir(paths.CompletedCSV))
}

// TestEnsureDirectories tests directory creation functionality
func TestEnsureDirectories(t *testing.T) {
	paths := NewPaths(t.TempDir())

	t.Run("creates all directories", func(t *testing.T) {
		require.NoError(t, paths.EnsureDirectories())

		assert.DirExists(t, paths.AssetsDir)
		assert.DirExists(t, paths.LogsDir)
	})

	t.Run("idempotent - can be called multiple times", func(t *testing.T) {
		require.NoError(t, paths.EnsureDirectories())
		require.NoError(t, paths.EnsureDirectories())

		assert.DirExists(t, paths.AssetsDir)
	})

	t.Run("fails when a file blocks the directory", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "assets"), []byte("x"), 0644))

		err := NewPaths(base).EnsureDirectories()
		assert.Error(t, err)
	})
}

// TestPathHelperMethods tests various path helper methods
func TestPathHelperMethods(t *testing.T) {
	paths := NewPaths("/base")

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"log path", paths.GetLogPath("rankfill.log"), filepath.Join("/base", "logs", "rankfill.log")},
		{"asset path", paths.GetAssetPath("x.csv"), filepath.Join("/base", "assets", "x.csv")},
		{"country file", paths.GetCountryFilePath("Japan.json"), filepath.Join("/base", "data", "university_data", "Japan.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

// TestFileExists tests the FileExists function
func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	existing := filepath.Join(tempDir, "exists.csv")
	require.NoError(t, os.WriteFile(existing, []byte("a,b\n"), 0644))

	assert.True(t, FileExists(existing))
	assert.True(t, FileExists(tempDir))
	assert.False(t, FileExists(filepath.Join(tempDir, "missing.csv")))
}
