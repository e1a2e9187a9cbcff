package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/almanac/internal/almanac"
	"github.com/specialistvlad/almanac/internal/app"
)

// Exit codes returned through ExitError.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Failure wraps a run error so the process exits with ExitFailure.
func Failure(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// parseModes expands the -mode flag value.
func parseModes(s string) ([]almanac.Mode, error) {
	switch s {
	case "both":
		return []almanac.Mode{almanac.ModePoints, almanac.ModeRanges}, nil
	}
	m, err := almanac.ParseMode(s)
	if err != nil {
		return nil, err
	}
	return []almanac.Mode{m}, nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("almanac", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
almanac - Find the lowest location reachable from an almanac's seeds.

Usage:
  almanac [options] ALMANAC_PATH...

Arguments:
  ALMANAC_PATH
    Path to an almanac file (.txt, .almanac, .hcl, .yaml, .yml) or a
    directory containing such files. Several paths are merged.

Options:
`)
		flagSet.PrintDefaults()
	}

	modeFlag := flagSet.String("mode", "both", "Query to answer. Options: 'points', 'ranges' or 'both'.")
	formatFlag := flagSet.String("format", "auto", "Almanac format. Options: 'auto', 'text', 'hcl' or 'yaml'.")
	exportFlag := flagSet.String("export", "", "Write the loaded almanac in this format ('text', 'hcl' or 'yaml') instead of answering queries.")
	workersFlag := flagSet.Int("workers", 1, "Number of seed ranges traversed concurrently.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health, metrics and query server. 0 is disabled.")
	serveFlag := flagSet.Bool("serve", false, "Keep serving the HTTP query API until interrupted. Requires -healthcheck-port.")
	publishURLFlag := flagSet.String("publish-url", "", "Socket.IO server URL that receives the results. Empty is disabled.")
	publishEventFlag := flagSet.String("publish-event", app.DefaultPublishEvent, "Socket.IO event name for published results.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	paths := flagSet.Args()
	if len(paths) == 0 {
		slog.Debug("No almanac path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	modes, err := parseModes(strings.ToLower(*modeFlag))
	if err != nil {
		return nil, false, usageError("invalid mode: must be 'points', 'ranges' or 'both'")
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if *workersFlag < 1 {
		return nil, false, usageError("invalid workers: must be at least 1")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		AlmanacPaths:    paths,
		Format:          strings.ToLower(*formatFlag),
		Modes:           modes,
		Workers:         *workersFlag,
		Export:          strings.ToLower(*exportFlag),
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
		Serve:           *serveFlag,
		PublishURL:      *publishURLFlag,
		PublishEvent:    *publishEventFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
