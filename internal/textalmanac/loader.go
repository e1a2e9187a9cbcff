package textalmanac

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/almanac/internal/config"
	"github.com/specialistvlad/almanac/internal/ctxlog"
)

// Loader is the plain-text implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new plain-text almanac loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every file and merges them into one definition.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Definition, error) {
	logger := ctxlog.FromContext(ctx)
	def := &config.Definition{}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open almanac %s: %w", path, err)
		}
		parsed, err := Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse almanac %s: %w", path, err)
		}
		if err := def.Merge(parsed); err != nil {
			return nil, fmt.Errorf("failed to merge almanac %s: %w", path, err)
		}
		logger.Debug("Parsed text almanac.", "path", path, "seeds", len(parsed.Seeds), "stages", len(parsed.Stages))
	}
	return def, nil
}
