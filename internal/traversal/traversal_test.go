package traversal

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/almanac/internal/rangemap"
	"github.com/specialistvlad/almanac/internal/stagegraph"
	"github.com/specialistvlad/almanac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sortIntervals = cmpopts.SortSlices(func(a, b rangemap.Interval) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.Length < b.Length
})

func canonicalRanges() rangemap.RangeSet {
	return rangemap.RangeSet{{Start: 79, Length: 14}, {Start: 55, Length: 13}}
}

func TestTraverse_Canonical(t *testing.T) {
	g := testutil.CanonicalGraph(t)

	out, err := Traverse(context.Background(), g, canonicalRanges(), "seed", "location")
	require.NoError(t, err)

	lowest, ok := out.Min()
	require.True(t, ok)
	assert.Equal(t, uint64(46), lowest)
	assert.Equal(t, "27", out.TotalLength().String())
}

func TestTraversePoints_Canonical(t *testing.T) {
	g := testutil.CanonicalGraph(t)

	out, err := TraversePoints(context.Background(), g, testutil.CanonicalSeeds, "seed", "location")
	require.NoError(t, err)
	assert.Equal(t, testutil.CanonicalLocations, out)
}

func TestTraverse_TwoStageChain(t *testing.T) {
	g := testutil.GraphOf(t,
		rangemap.NewStage("seed", "soil",
			rangemap.SubMapping{SourceStart: 98, DestinationStart: 50, Length: 2},
			rangemap.SubMapping{SourceStart: 50, DestinationStart: 52, Length: 48},
		),
		rangemap.NewStage("soil", "location"),
	)

	out, err := Traverse(context.Background(), g, canonicalRanges(), "seed", "location")
	require.NoError(t, err)

	want := rangemap.RangeSet{{Start: 81, Length: 14}, {Start: 57, Length: 13}}
	if diff := cmp.Diff(want, out, sortIntervals); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTraverse_NoCoverageKeepsValues(t *testing.T) {
	g := testutil.GraphOf(t,
		rangemap.NewStage("seed", "soil", rangemap.SubMapping{SourceStart: 1000, DestinationStart: 0, Length: 10}),
		rangemap.NewStage("soil", "location", rangemap.SubMapping{SourceStart: 5000, DestinationStart: 1, Length: 10}),
	)

	points, err := TraversePoints(context.Background(), g, []uint64{79, 14, 55}, "seed", "location")
	require.NoError(t, err)
	assert.Equal(t, []uint64{79, 14, 55}, points)

	ranges, err := Traverse(context.Background(), g, canonicalRanges(), "seed", "location")
	require.NoError(t, err)
	lowest, _ := ranges.Min()
	assert.Equal(t, uint64(55), lowest)
}

func TestTraverse_Failures(t *testing.T) {
	stages := testutil.CanonicalStages()

	t.Run("missing location stage", func(t *testing.T) {
		g := testutil.GraphOf(t, stages[:6]...)
		_, err := Traverse(context.Background(), g, canonicalRanges(), "seed", "location")
		assert.ErrorIs(t, err, stagegraph.ErrTargetUnreachable)

		_, err = TraversePoints(context.Background(), g, testutil.CanonicalSeeds, "seed", "location")
		assert.ErrorIs(t, err, stagegraph.ErrTargetUnreachable)
	})

	t.Run("missing middle stage", func(t *testing.T) {
		g := testutil.GraphOf(t, append(stages[:2:2], stages[3:]...)...)
		_, err := Traverse(context.Background(), g, canonicalRanges(), "seed", "location")
		assert.ErrorIs(t, err, stagegraph.ErrChainBroken)

		_, err = TraversePoints(context.Background(), g, testutil.CanonicalSeeds, "seed", "location")
		assert.ErrorIs(t, err, stagegraph.ErrChainBroken)
	})
}

func TestTraverser_CancelledContext(t *testing.T) {
	g := testutil.CanonicalGraph(t)
	path, err := g.Resolve("seed", "location")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = (&Traverser{}).Ranges(ctx, path, canonicalRanges())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = (&Traverser{Workers: 4}).Ranges(ctx, path, canonicalRanges())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = (&Traverser{}).Points(ctx, path, testutil.CanonicalSeeds)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTraverser_ParallelMatchesSequential(t *testing.T) {
	g := testutil.CanonicalGraph(t)
	path, err := g.Resolve("seed", "location")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	var ranges rangemap.RangeSet
	for i := 0; i < 40; i++ {
		ranges = append(ranges, rangemap.Interval{
			Start:  uint64(rng.Int63n(120)),
			Length: uint64(1 + rng.Int63n(60)),
		})
	}

	seq, err := (&Traverser{}).Ranges(context.Background(), path, ranges)
	require.NoError(t, err)

	rec := &testutil.StageRecorder{}
	par, err := (&Traverser{Workers: 8, Recorder: rec}).Ranges(context.Background(), path, ranges)
	require.NoError(t, err)

	if diff := cmp.Diff(seq, par, sortIntervals); diff != "" {
		t.Errorf("parallel traversal differs (-seq +par):\n%s", diff)
	}
	assert.Equal(t, ranges.TotalLength().String(), par.TotalLength().String())
	assert.Equal(t, len(ranges), rec.Calls("seed-to-soil"))
	assert.Equal(t, path.Len(), rec.Stages())
}

func TestTraverse_OrderIndependentMinimum(t *testing.T) {
	g := testutil.CanonicalGraph(t)
	ranges := rangemap.RangeSet{
		{Start: 79, Length: 14},
		{Start: 55, Length: 13},
		{Start: 0, Length: 5},
		{Start: 90, Length: 30},
	}

	base, err := Traverse(context.Background(), g, ranges, "seed", "location")
	require.NoError(t, err)
	want, _ := base.Min()

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		shuffled := append(rangemap.RangeSet(nil), ranges...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		out, err := Traverse(context.Background(), g, shuffled, "seed", "location")
		require.NoError(t, err)
		got, _ := out.Min()
		assert.Equal(t, want, got)
	}
}

func TestTraverse_MatchesPointwiseBruteForce(t *testing.T) {
	g := testutil.CanonicalGraph(t)
	ranges := canonicalRanges()

	var seeds []uint64
	for _, r := range ranges {
		for v := r.Start; v < r.End(); v++ {
			seeds = append(seeds, v)
		}
	}
	points, err := TraversePoints(context.Background(), g, seeds, "seed", "location")
	require.NoError(t, err)

	out, err := Traverse(context.Background(), g, ranges, "seed", "location")
	require.NoError(t, err)

	for _, p := range points {
		assert.True(t, out.Contains(p), "location %d missing from range result", p)
	}
	wantMin, _ := rangemap.Values(points).Min()
	gotMin, _ := out.Min()
	assert.Equal(t, wantMin, gotMin)
}

func TestTraversePoints_DoesNotAliasInput(t *testing.T) {
	g := testutil.GraphOf(t, rangemap.NewStage("seed", "location"))
	in := []uint64{5, 6}
	out, err := TraversePoints(context.Background(), g, in, "seed", "seed")
	require.NoError(t, err)
	out[0] = 99
	assert.Equal(t, uint64(5), in[0])
}
