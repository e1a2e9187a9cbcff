package traversal

import (
	"context"
	"fmt"

	"github.com/specialistvlad/almanac/internal/ctxlog"
	"github.com/specialistvlad/almanac/internal/rangemap"
	"github.com/specialistvlad/almanac/internal/stagegraph"
	"golang.org/x/sync/errgroup"
)

// Recorder observes every stage application. Implementations must be safe for
// concurrent use when the Traverser runs with more than one worker.
type Recorder interface {
	ObserveStage(stage string, in, out int)
}

// Traverser applies a path to range sets or value lists.
type Traverser struct {
	// Workers bounds how many initial ranges are traversed concurrently.
	// Values below 2 keep the traversal on the calling goroutine.
	Workers int

	// Recorder is optional.
	Recorder Recorder
}

// Traverse resolves the path between two categories and maps the ranges along it.
func Traverse(ctx context.Context, g *stagegraph.Graph, ranges rangemap.RangeSet, from, to string) (rangemap.RangeSet, error) {
	path, err := g.Resolve(from, to)
	if err != nil {
		return nil, err
	}
	return (&Traverser{}).Ranges(ctx, path, ranges)
}

// TraversePoints resolves the path between two categories and maps each value along it.
func TraversePoints(ctx context.Context, g *stagegraph.Graph, values []uint64, from, to string) ([]uint64, error) {
	path, err := g.Resolve(from, to)
	if err != nil {
		return nil, err
	}
	return (&Traverser{}).Points(ctx, path, values)
}

// Ranges maps every interval through every stage of the path. Fragments of
// different initial ranges never interact, so with Workers > 1 each initial
// range travels on its own goroutine and the results are concatenated.
func (t *Traverser) Ranges(ctx context.Context, path stagegraph.Path, ranges rangemap.RangeSet) (rangemap.RangeSet, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Range traversal started.", "path", path.String(), "ranges", len(ranges), "workers", t.Workers)

	if t.Workers < 2 || len(ranges) < 2 {
		return t.walk(ctx, path, ranges)
	}

	parts := make([]rangemap.RangeSet, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.Workers)
	for i, r := range ranges {
		g.Go(func() error {
			out, err := t.walk(gctx, path, rangemap.RangeSet{r})
			if err != nil {
				return fmt.Errorf("range %v: %w", r, err)
			}
			parts[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged rangemap.RangeSet
	for _, p := range parts {
		merged = append(merged, p...)
	}
	logger.Debug("Range traversal finished.", "fragments", len(merged))
	return merged, nil
}

func (t *Traverser) walk(ctx context.Context, path stagegraph.Path, current rangemap.RangeSet) (rangemap.RangeSet, error) {
	logger := ctxlog.FromContext(ctx)
	for _, s := range path.Stages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := current.Map(s)
		logger.Debug("Stage applied.", "stage", s.Name(), "in", len(current), "out", len(next))
		if t.Recorder != nil {
			t.Recorder.ObserveStage(s.Name(), len(current), len(next))
		}
		current = next
	}
	return current, nil
}

// Points maps each value through every stage of the path, preserving order.
func (t *Traverser) Points(ctx context.Context, path stagegraph.Path, values []uint64) ([]uint64, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Point traversal started.", "path", path.String(), "values", len(values))

	current := append(rangemap.Values(nil), values...)
	for _, s := range path.Stages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current = current.Map(s)
		if t.Recorder != nil {
			t.Recorder.ObserveStage(s.Name(), len(current), len(current))
		}
	}
	return current, nil
}
