// Package yamlalmanac reads almanacs written as YAML documents:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - from: seed
//	    to: soil
//	    mappings:
//	      - [50, 98, 2]
//	      - [52, 50, 48]
package yamlalmanac

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/almanac/internal/config"
	"github.com/specialistvlad/almanac/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRow is returned for a mapping row that is not a [destination, source, length] triple.
var ErrInvalidRow = errors.New("invalid mapping row")

type document struct {
	Seeds      []uint64        `yaml:"seeds,flow,omitempty"`
	SeedRanges []rangeDocument `yaml:"seed_ranges,omitempty"`
	Stages     []stageDocument `yaml:"stages,omitempty"`
}

type rangeDocument struct {
	Start  uint64 `yaml:"start"`
	Length uint64 `yaml:"length"`
}

type stageDocument struct {
	From     string     `yaml:"from"`
	To       string     `yaml:"to"`
	Mappings [][]uint64 `yaml:"mappings,flow,omitempty"`
}

// Parse decodes a single YAML almanac. Unknown keys are rejected.
func Parse(r io.Reader) (*config.Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &config.Definition{}, nil
		}
		return nil, err
	}

	def := &config.Definition{Seeds: doc.Seeds}
	for _, rd := range doc.SeedRanges {
		def.SeedRanges = append(def.SeedRanges, config.RangeDefinition{Start: rd.Start, Length: rd.Length})
	}
	for _, sd := range doc.Stages {
		stage := &config.StageDefinition{Source: sd.From, Destination: sd.To}
		for i, row := range sd.Mappings {
			if len(row) != 3 {
				return nil, fmt.Errorf("stage %s-to-%s: %w %d: want 3 values, got %d", sd.From, sd.To, ErrInvalidRow, i, len(row))
			}
			stage.Mappings = append(stage.Mappings, config.MappingDefinition{
				DestinationStart: row[0],
				SourceStart:      row[1],
				Length:           row[2],
			})
		}
		def.Stages = append(def.Stages, stage)
	}
	return def, nil
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML almanac loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every file and merges them into one definition.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Definition, error) {
	logger := ctxlog.FromContext(ctx)
	def := &config.Definition{}

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}
		parsed, err := Parse(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
		}
		if err := def.Merge(parsed); err != nil {
			return nil, fmt.Errorf("failed to merge YAML file %s: %w", path, err)
		}
		logger.Debug("Parsed YAML almanac.", "path", path, "stages", len(parsed.Stages))
	}
	return def, nil
}
