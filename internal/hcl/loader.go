package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/almanac/internal/config"
	"github.com/specialistvlad/almanac/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	converter *Converter
}

// NewLoader creates a new HCL almanac loader.
func NewLoader() *Loader {
	return &Loader{converter: NewConverter()}
}

// Load parses every file and merges them into one definition. Stages may be
// spread across files; seeds must be declared exactly once.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Definition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	parser := hclparse.NewParser()
	def := &config.Definition{}

	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		parsed, err := l.decodeBody(ctx, file.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, err)
		}
		if err := def.Merge(parsed); err != nil {
			return nil, fmt.Errorf("failed to merge HCL file %s: %w", path, err)
		}
	}

	logger.Debug("HCL loading complete.", "seeds", len(def.Seeds), "seed_ranges", len(def.SeedRanges), "stages", len(def.Stages))
	return def, nil
}

// Parse decodes an in-memory HCL document. The filename only labels diagnostics.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Definition, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL %s: %w", filename, diags)
	}
	return l.decodeBody(ctx, file.Body)
}

func (l *Loader) decodeBody(ctx context.Context, body hcl.Body) (*config.Definition, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, diags
	}
	return l.translateRoot(ctx, &root)
}
