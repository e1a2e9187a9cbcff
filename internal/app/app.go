package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/specialistvlad/almanac/internal/config"
	"github.com/specialistvlad/almanac/internal/metrics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loader  config.Loader
	metrics *metrics.Metrics
	runID   string

	httpServer *http.Server
}

// NewApp is the constructor for the main application. Answers are written to
// outW and logs to logW. Every App gets its own logger, metrics registry and
// run id.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", runID)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loader:  loader,
		metrics: metrics.New(),
		runID:   runID,
	}
}

// RunID returns the identifier attached to this run's logs and published results.
func (a *App) RunID() string {
	return a.runID
}

// Metrics returns the application's metrics. This is primarily for testing.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}
