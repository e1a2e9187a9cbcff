package config

import "errors"

// ErrConflictingSeeds is returned when merging two definitions that both declare seeds.
var ErrConflictingSeeds = errors.New("seeds declared more than once")

// Definition is the unified, format-agnostic representation of an almanac.
type Definition struct {
	// Seeds are the discrete seed values, in declaration order.
	Seeds []uint64
	// SeedRanges are explicit (start, length) declarations. When empty, the
	// seeds are read pairwise instead.
	SeedRanges []RangeDefinition
	Stages     []*StageDefinition
}

// RangeDefinition is a (start, length) seed range.
type RangeDefinition struct {
	Start  uint64
	Length uint64
}

// StageDefinition is the format-agnostic representation of one map block.
type StageDefinition struct {
	Source      string
	Destination string
	Mappings    []MappingDefinition
}

// MappingDefinition is one "destination source length" row.
type MappingDefinition struct {
	DestinationStart uint64
	SourceStart      uint64
	Length           uint64
}

// HasSeeds reports whether any seed data was declared.
func (d *Definition) HasSeeds() bool {
	return len(d.Seeds) > 0 || len(d.SeedRanges) > 0
}

// Merge folds other into d. Stages accumulate; seeds may come from one file only.
func (d *Definition) Merge(other *Definition) error {
	if other == nil {
		return nil
	}
	if d.HasSeeds() && other.HasSeeds() {
		return ErrConflictingSeeds
	}
	d.Seeds = append(d.Seeds, other.Seeds...)
	d.SeedRanges = append(d.SeedRanges, other.SeedRanges...)
	d.Stages = append(d.Stages, other.Stages...)
	return nil
}
