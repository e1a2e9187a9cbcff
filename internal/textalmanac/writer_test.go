package textalmanac

import (
	"bytes"
	"strings"
	"testing"

	"github.com/specialistvlad/almanac/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_ParsesBack(t *testing.T) {
	def := &config.Definition{
		Seeds: []uint64{79, 14, 55, 13},
		Stages: []*config.StageDefinition{{
			Source:      "seed",
			Destination: "location",
			Mappings:    []config.MappingDefinition{{DestinationStart: 50, SourceStart: 98, Length: 2}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, def))
	got, err := Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestWrite_SeedsAndRangesRejected(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &config.Definition{
		Seeds:      []uint64{79, 14, 55},
		SeedRanges: []config.RangeDefinition{{Start: 5, Length: 1}},
	})
	assert.ErrorIs(t, err, ErrUnrepresentable)
	assert.Empty(t, buf.String())
}
