package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankcli/internal/config"
	"rankcli/internal/errors"
)

func setRuntimeEnv(t *testing.T, dir string) {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("RANKCLI_CONFIG_FILE", "")
	t.Setenv("RANKCLI_LOGGING_OUTPUT", "file")
	t.Setenv("RANKCLI_LOGGING_FILE_PATH", "logs/run.log")
	t.Setenv("RANKCLI_TELEMETRY_TRACE_EXPORTER", "none")
	t.Setenv("RANKCLI_TELEMETRY_METRICS_TEXTFILE", "metrics/run.prom")
	ResetLoggerForTesting()
	t.Cleanup(ResetLoggerForTesting)
}

func TestStart(t *testing.T) {
	dir := t.TempDir()
	setRuntimeEnv(t, dir)
	paths := config.NewPaths(dir)

	rt, err := Start(context.Background(), "rankfill", paths)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "logs", "run.log"), rt.Config.Logging.FilePath)
	assert.Equal(t, filepath.Join(dir, "metrics", "run.prom"), rt.Config.Telemetry.MetricsTextfile)
	assert.NotNil(t, rt.Telemetry.Tracer)
	assert.NotNil(t, rt.Metrics)

	rt.Logger.Info("Runtime started")
	rt.Close()

	logData, err := os.ReadFile(filepath.Join(dir, "logs", "run.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"tool":"rankfill"`)
	assert.FileExists(t, filepath.Join(dir, "metrics", "run.prom"))
}

func TestStart_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	setRuntimeEnv(t, dir)
	t.Setenv("RANKCLI_LOGGING_LEVEL", "loud")

	rt, err := Start(context.Background(), "rankfill", config.NewPaths(dir))
	require.Error(t, err)
	assert.Nil(t, rt)
	assert.True(t, errors.IsType(err, errors.ErrTypeConfig), "got %v", err)
}

func TestAnchor(t *testing.T) {
	paths := config.NewPaths(filepath.Join(string(filepath.Separator), "project"))
	abs := filepath.Join(string(filepath.Separator), "var", "log", "x.log")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"absolute unchanged", abs, abs},
		{"relative anchored", "logs/x.log", filepath.Join(paths.BaseDir, "logs", "x.log")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, anchor(paths, tt.in))
		})
	}
}
