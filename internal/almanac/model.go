package almanac

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/almanac/internal/config"
	"github.com/specialistvlad/almanac/internal/ctxlog"
	"github.com/specialistvlad/almanac/internal/rangemap"
	"github.com/specialistvlad/almanac/internal/stagegraph"
	"github.com/specialistvlad/almanac/internal/traversal"
)

// Categories every query travels between.
const (
	SeedCategory     = "seed"
	LocationCategory = "location"
)

// Mode selects how the seed line is read.
type Mode string

const (
	// ModePoints reads every seed as a discrete value.
	ModePoints Mode = "points"
	// ModeRanges reads seeds as (start, length) ranges.
	ModeRanges Mode = "ranges"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePoints, ModeRanges:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Model is the parsed almanac. It is immutable once built and safe for
// concurrent queries.
type Model struct {
	points    []uint64
	ranges    rangemap.RangeSet
	rangesErr error
	graph     *stagegraph.Graph
	path      stagegraph.Path
	traverser traversal.Traverser
}

// Option customises a Model.
type Option func(*Model)

// WithWorkers lets range queries traverse up to n initial ranges concurrently.
func WithWorkers(n int) Option {
	return func(m *Model) { m.traverser.Workers = n }
}

// WithRecorder attaches a stage observer to every query.
func WithRecorder(r traversal.Recorder) Option {
	return func(m *Model) { m.traverser.Recorder = r }
}

// New builds a model and resolves the seed-to-location path up front, so a
// malformed chain is reported here rather than by every query.
func New(points []uint64, ranges rangemap.RangeSet, graph *stagegraph.Graph, opts ...Option) (*Model, error) {
	path, err := graph.Resolve(SeedCategory, LocationCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s-to-%s chain: %w", SeedCategory, LocationCategory, err)
	}

	m := &Model{
		points: append([]uint64(nil), points...),
		ranges: append(rangemap.RangeSet(nil), ranges...),
		graph:  graph,
		path:   path,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// FromDefinition translates a loaded definition into a model. Explicit seed
// ranges take precedence; otherwise the seed values are read pairwise.
func FromDefinition(def *config.Definition, opts ...Option) (*Model, error) {
	graph := stagegraph.New()
	for _, sd := range def.Stages {
		mappings := make([]rangemap.SubMapping, 0, len(sd.Mappings))
		for i, md := range sd.Mappings {
			sm, err := rangemap.NewSubMapping(md.DestinationStart, md.SourceStart, md.Length)
			if err != nil {
				return nil, fmt.Errorf("stage %s-to-%s mapping %d: %w", sd.Source, sd.Destination, i, err)
			}
			mappings = append(mappings, sm)
		}
		if err := graph.Add(rangemap.NewStage(sd.Source, sd.Destination, mappings...)); err != nil {
			return nil, err
		}
	}

	var (
		ranges    rangemap.RangeSet
		rangesErr error
	)
	if len(def.SeedRanges) > 0 {
		for i, rd := range def.SeedRanges {
			if rd.Length == 0 {
				continue
			}
			iv, err := rangemap.NewInterval(rd.Start, rd.Length)
			if err != nil {
				return nil, fmt.Errorf("seed range %d: %w", i, err)
			}
			ranges = append(ranges, iv)
		}
	} else {
		ranges, rangesErr = rangemap.PairRanges(def.Seeds)
		if rangesErr != nil && !errors.Is(rangesErr, rangemap.ErrOddSeedCount) {
			return nil, rangesErr
		}
	}

	m, err := New(def.Seeds, ranges, graph, opts...)
	if err != nil {
		return nil, err
	}
	m.rangesErr = rangesErr
	return m, nil
}

// Path returns the resolved seed-to-location path.
func (m *Model) Path() stagegraph.Path { return m.path }

// Graph returns the stage graph the model was built from.
func (m *Model) Graph() *stagegraph.Graph { return m.graph }

// Points returns a copy of the seed values.
func (m *Model) Points() []uint64 { return append([]uint64(nil), m.points...) }

// Ranges returns a copy of the seed ranges.
func (m *Model) Ranges() rangemap.RangeSet { return append(rangemap.RangeSet(nil), m.ranges...) }

// Locations maps every seed value to its location, in seed order.
func (m *Model) Locations(ctx context.Context) ([]uint64, error) {
	if len(m.points) == 0 {
		return nil, ErrEmptyInput
	}
	return m.traverser.Points(ctx, m.path, m.points)
}

// LowestLocationFromPoints returns the lowest location any seed value reaches.
func (m *Model) LowestLocationFromPoints(ctx context.Context) (uint64, error) {
	locations, err := m.Locations(ctx)
	if err != nil {
		return 0, err
	}
	lowest, _ := rangemap.Values(locations).Min()
	ctxlog.FromContext(ctx).Debug("Lowest location from points resolved.", "seeds", len(m.points), "location", lowest)
	return lowest, nil
}

// LowestLocationFromRanges returns the lowest location any seed range reaches.
func (m *Model) LowestLocationFromRanges(ctx context.Context) (uint64, error) {
	if len(m.ranges) == 0 {
		if m.rangesErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrEmptyInput, m.rangesErr)
		}
		return 0, ErrEmptyInput
	}
	out, err := m.traverser.Ranges(ctx, m.path, m.ranges)
	if err != nil {
		return 0, err
	}
	lowest, ok := out.Min()
	if !ok {
		return 0, ErrEmptyInput
	}
	ctxlog.FromContext(ctx).Debug("Lowest location from ranges resolved.", "ranges", len(m.ranges), "fragments", len(out), "location", lowest)
	return lowest, nil
}

// Lowest dispatches to the query selected by mode.
func (m *Model) Lowest(ctx context.Context, mode Mode) (uint64, error) {
	switch mode {
	case ModePoints:
		return m.LowestLocationFromPoints(ctx)
	case ModeRanges:
		return m.LowestLocationFromRanges(ctx)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}
