// Package loader picks the almanac loader that matches a path and format,
// and expands directories into the files that loader understands.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/almanac/internal/config"
	"github.com/specialistvlad/almanac/internal/ctxlog"
	"github.com/specialistvlad/almanac/internal/fsutil"
	"github.com/specialistvlad/almanac/internal/hcl"
	"github.com/specialistvlad/almanac/internal/textalmanac"
	"github.com/specialistvlad/almanac/internal/yamlalmanac"
)

// Format names an almanac input format.
type Format string

const (
	// FormatAuto picks the format of each file from its extension.
	FormatAuto Format = "auto"
	// FormatText is the plain-text almanac (.txt, .almanac).
	FormatText Format = "text"
	// FormatHCL is the HCL almanac (.hcl).
	FormatHCL Format = "hcl"
	// FormatYAML is the YAML almanac (.yaml, .yml).
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat indicates a format name or file extension no loader handles.
	ErrUnknownFormat = errors.New("unknown almanac format")

	// ErrNoFiles indicates that the given paths expanded to no almanac files.
	ErrNoFiles = errors.New("no almanac files found")
)

var extensions = map[Format][]string{
	FormatText: {".txt", ".almanac"},
	FormatHCL:  {".hcl"},
	FormatYAML: {".yaml", ".yml"},
}

// ordered fixes the merge order when a directory mixes formats.
var ordered = []Format{FormatText, FormatHCL, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if f == FormatAuto {
		return f, nil
	}
	if _, ok := extensions[f]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ForFormat returns the loader of a concrete format.
func ForFormat(f Format) (config.Loader, error) {
	switch f {
	case FormatText:
		return textalmanac.NewLoader(), nil
	case FormatHCL:
		return hcl.NewLoader(), nil
	case FormatYAML:
		return yamlalmanac.NewLoader(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Detect infers the format of a file from its extension.
func Detect(path string) (Format, error) {
	for _, f := range ordered {
		if fsutil.HasExtension(path, extensions[f]...) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: cannot infer format of %s", ErrUnknownFormat, path)
}

// Loader implements config.Loader over every supported format.
type Loader struct {
	Format Format
}

// New creates a loader for the given format; FormatAuto dispatches on file extensions.
func New(f Format) *Loader {
	return &Loader{Format: f}
}

// Load expands every path, groups the files by format and merges the results.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Definition, error) {
	logger := ctxlog.FromContext(ctx)

	groups, err := l.group(paths)
	if err != nil {
		return nil, err
	}

	def := &config.Definition{}
	found := 0
	for _, f := range ordered {
		files := groups[f]
		if len(files) == 0 {
			continue
		}
		found += len(files)
		logger.Debug("Loading almanac files.", "format", f, "count", len(files))

		fl, err := ForFormat(f)
		if err != nil {
			return nil, err
		}
		part, err := fl.Load(ctx, files...)
		if err != nil {
			return nil, err
		}
		if err := def.Merge(part); err != nil {
			return nil, err
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}

	logger.Info("Almanac loaded.", "files", found, "seeds", len(def.Seeds), "stages", len(def.Stages))
	return def, nil
}

func (l *Loader) group(paths []string) (map[Format][]string, error) {
	groups := make(map[Format][]string)
	for _, path := range paths {
		if l.Format != FormatAuto && l.Format != "" {
			exts, ok := extensions[l.Format]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, l.Format)
			}
			files, err := fsutil.Resolve(path, exts...)
			if err != nil {
				return nil, err
			}
			groups[l.Format] = append(groups[l.Format], files...)
			continue
		}

		var all []string
		for _, f := range ordered {
			all = append(all, extensions[f]...)
		}
		files, err := fsutil.Resolve(path, all...)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			f, err := Detect(file)
			if err != nil {
				return nil, err
			}
			groups[f] = append(groups[f], file)
		}
	}
	return groups, nil
}

// Encode renders def in a concrete format.
func Encode(f Format, def *config.Definition) ([]byte, error) {
	switch f {
	case FormatText:
		var buf bytes.Buffer
		if err := textalmanac.Write(&buf, def); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatHCL:
		return hcl.Encode(def), nil
	case FormatYAML:
		return yamlalmanac.Encode(def)
	}
	return nil, fmt.Errorf("%w: cannot encode %q", ErrUnknownFormat, f)
}
