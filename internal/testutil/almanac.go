// Package testutil holds fixtures and helpers shared by the package tests.
package testutil

import (
	"testing"

	"github.com/specialistvlad/almanac/internal/rangemap"
	"github.com/specialistvlad/almanac/internal/stagegraph"
	"github.com/stretchr/testify/require"
)

// CanonicalText is the small reference almanac. Its seeds reach location 35
// when read as values and 46 when read as (start, length) pairs.
const CanonicalText = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// CanonicalSeeds are the seed values of CanonicalText.
var CanonicalSeeds = []uint64{79, 14, 55, 13}

// CanonicalLocations are the locations of CanonicalSeeds, in seed order.
var CanonicalLocations = []uint64{82, 43, 86, 35}

// canonicalTriples lists (destination, source, length) rows per stage.
var canonicalTriples = []struct {
	from, to string
	rows     [][3]uint64
}{
	{"seed", "soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil", "fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer", "water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water", "light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light", "temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature", "humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity", "location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

// CanonicalStages returns fresh copies of the stages of CanonicalText.
func CanonicalStages() []*rangemap.Stage {
	stages := make([]*rangemap.Stage, 0, len(canonicalTriples))
	for _, st := range canonicalTriples {
		mappings := make([]rangemap.SubMapping, 0, len(st.rows))
		for _, row := range st.rows {
			mappings = append(mappings, rangemap.SubMapping{
				DestinationStart: row[0],
				SourceStart:      row[1],
				Length:           row[2],
			})
		}
		stages = append(stages, rangemap.NewStage(st.from, st.to, mappings...))
	}
	return stages
}

// GraphOf builds a graph from stages, failing the test on duplicates.
func GraphOf(t *testing.T, stages ...*rangemap.Stage) *stagegraph.Graph {
	t.Helper()
	g := stagegraph.New()
	for _, s := range stages {
		require.NoError(t, g.Add(s))
	}
	return g
}

// CanonicalGraph returns the graph of CanonicalText.
func CanonicalGraph(t *testing.T) *stagegraph.Graph {
	t.Helper()
	return GraphOf(t, CanonicalStages()...)
}
