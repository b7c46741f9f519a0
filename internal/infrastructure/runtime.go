package infrastructure

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"rankcli/internal/config"
	"rankcli/internal/errors"
	"rankcli/pkg/contracts"
)

// Runtime is the ambient state of one tool run: configuration, the global
// logger and telemetry
type Runtime struct {
	Config    *config.Config
	Logger    *slog.Logger
	Telemetry *OTelProviders
	Metrics   *RunMetrics
}

// Start loads configuration and starts logging and telemetry for the named
// tool. Relative log, trace and metrics paths are anchored at paths.BaseDir.
func Start(ctx context.Context, tool string, paths *config.Paths) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.NewConfigError("invalid configuration", err)
	}
	cfg.Logging.FilePath = anchor(paths, cfg.Logging.FilePath)
	cfg.Telemetry.TraceFile = anchor(paths, cfg.Telemetry.TraceFile)
	cfg.Telemetry.MetricsTextfile = anchor(paths, cfg.Telemetry.MetricsTextfile)

	logger, err := InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, errors.NewConfigError("failed to initialize logger", err)
	}
	logger = logger.With(slog.String("tool", tool))
	logger.Debug("Starting",
		slog.String("app", config.AppName),
		slog.String("version", contracts.Version))
	paths.LogPathResolution()

	telemetry, err := InitializeOTel(ctx, cfg.Telemetry, logger)
	if err != nil {
		_ = CloseLogFile()
		return nil, errors.NewConfigError("failed to initialize telemetry", err)
	}

	metrics, err := NewRunMetrics(telemetry.Meter)
	if err != nil {
		_ = telemetry.Shutdown(ctx)
		_ = CloseLogFile()
		return nil, errors.NewConfigError("failed to create metrics", err)
	}

	return &Runtime{Config: cfg, Logger: logger, Telemetry: telemetry, Metrics: metrics}, nil
}

// Close flushes telemetry and closes the log file
func (r *Runtime) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Telemetry.Shutdown(ctx); err != nil {
		r.Logger.Warn("Telemetry shutdown failed", ErrorAttr(err))
	}
	_ = CloseLogFile()
}

// anchor joins a relative configured path onto the project base directory
func anchor(paths *config.Paths, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(paths.BaseDir, path)
}
