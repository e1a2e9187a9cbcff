package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/almanac/internal/config"
)

// translateRoot converts one decoded file into the agnostic definition.
func (l *Loader) translateRoot(ctx context.Context, root *fileRoot) (*config.Definition, error) {
	def := &config.Definition{}

	if _, err := l.converter.DecodeExpression(ctx, root.Seeds, &def.Seeds, nil); err != nil {
		return nil, fmt.Errorf("invalid seeds: %w", err)
	}
	for _, sr := range root.SeedRanges {
		def.SeedRanges = append(def.SeedRanges, config.RangeDefinition{Start: sr.Start, Length: sr.Length})
	}

	for _, sb := range root.Stages {
		sd, err := l.translateStage(ctx, sb)
		if err != nil {
			return nil, err
		}
		def.Stages = append(def.Stages, sd)
	}
	return def, nil
}

// translateStage converts a stage block, short-hand rows first.
func (l *Loader) translateStage(ctx context.Context, sb *stageBlock) (*config.StageDefinition, error) {
	sd := &config.StageDefinition{Source: sb.Source, Destination: sb.Destination}

	var rows [][]uint64
	if _, err := l.converter.DecodeExpression(ctx, sb.Mapping, &rows, nil); err != nil {
		return nil, fmt.Errorf("stage %q %q: invalid mapping: %w", sb.Source, sb.Destination, err)
	}
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("stage %q %q: mapping row %d: want [destination, source, length], got %d values", sb.Source, sb.Destination, i, len(row))
		}
		sd.Mappings = append(sd.Mappings, config.MappingDefinition{
			DestinationStart: row[0],
			SourceStart:      row[1],
			Length:           row[2],
		})
	}

	for _, rb := range sb.Ranges {
		sd.Mappings = append(sd.Mappings, config.MappingDefinition{
			DestinationStart: rb.DestinationStart,
			SourceStart:      rb.SourceStart,
			Length:           rb.Length,
		})
	}
	return sd, nil
}
