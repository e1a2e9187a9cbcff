package yamlalmanac

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/almanac/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoStages = `
seeds: [79, 14, 55, 13]
stages:
  - from: seed
    to: soil
    mappings:
      - [50, 98, 2]
      - [52, 50, 48]
  - from: soil
    to: location
`

func TestParse(t *testing.T) {
	def, err := Parse(strings.NewReader(twoStages))
	require.NoError(t, err)

	want := &config.Definition{
		Seeds: []uint64{79, 14, 55, 13},
		Stages: []*config.StageDefinition{
			{
				Source:      "seed",
				Destination: "soil",
				Mappings: []config.MappingDefinition{
					{DestinationStart: 50, SourceStart: 98, Length: 2},
					{DestinationStart: 52, SourceStart: 50, Length: 48},
				},
			},
			{Source: "soil", Destination: "location"},
		},
	}
	if diff := cmp.Diff(want, def); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SeedRanges(t *testing.T) {
	def, err := Parse(strings.NewReader("seed_ranges:\n  - {start: 79, length: 14}\n"))
	require.NoError(t, err)
	assert.Equal(t, []config.RangeDefinition{{Start: 79, Length: 14}}, def.SeedRanges)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader("stages:\n  - from: a\n    to: b\n    mappings: [[1, 2]]\n"))
	assert.ErrorIs(t, err, ErrInvalidRow)

	_, err = Parse(strings.NewReader("seeds: [-1]\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("seedz: [1]\n"))
	assert.ErrorContains(t, err, "seedz")
}

func TestParse_EmptyDocument(t *testing.T) {
	def, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.False(t, def.HasSeeds())
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "almanac.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoStages), 0644))

	def, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, def.Stages, 2)

	_, err = NewLoader().Load(context.Background(), filepath.Join(dir, "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
