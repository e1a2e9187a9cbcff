package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/almanac/internal/almanac"
	"github.com/specialistvlad/almanac/internal/loader"
)

// DefaultPublishEvent is the Socket.IO event used when none is configured.
const DefaultPublishEvent = "almanac:result"

// ErrInvalidConfig is returned by NewConfig for every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	AlmanacPaths []string // text, hcl or yaml files, or directories of them
	Format       string
	Modes        []almanac.Mode
	Workers      int
	// Export, when set, writes the loaded almanac in this format instead of
	// answering queries.
	Export string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	// Serve keeps the HTTP query API running until the run context ends.
	Serve bool

	PublishURL   string
	PublishEvent string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.AlmanacPaths) == 0 {
		return nil, fmt.Errorf("%w: at least one almanac path is required", ErrInvalidConfig)
	}
	if cfg.Format == "" {
		cfg.Format = string(loader.FormatAuto)
	}
	if _, err := loader.ParseFormat(cfg.Format); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Export != "" {
		f, err := loader.ParseFormat(cfg.Export)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if f == loader.FormatAuto {
			return nil, fmt.Errorf("%w: export needs a concrete format", ErrInvalidConfig)
		}
	}
	if len(cfg.Modes) == 0 {
		return nil, fmt.Errorf("%w: at least one query mode is required", ErrInvalidConfig)
	}
	for _, m := range cfg.Modes {
		if _, err := almanac.ParseMode(string(m)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if _, ok := parseLevel(cfg.LogLevel); !ok && cfg.LogLevel != "" {
		return nil, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, cfg.LogLevel)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("%w: healthcheck port %d out of range", ErrInvalidConfig, cfg.HealthcheckPort)
	}
	if cfg.Serve && cfg.HealthcheckPort == 0 {
		return nil, fmt.Errorf("%w: serving requires a healthcheck port", ErrInvalidConfig)
	}
	if cfg.PublishURL != "" && cfg.PublishEvent == "" {
		cfg.PublishEvent = DefaultPublishEvent
	}
	return &cfg, nil
}
