package textalmanac

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/almanac/internal/config"
	"github.com/specialistvlad/almanac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Canonical(t *testing.T) {
	def, err := Parse(strings.NewReader(testutil.CanonicalText))
	require.NoError(t, err)

	assert.Equal(t, testutil.CanonicalSeeds, def.Seeds)
	require.Len(t, def.Stages, 7)
	assert.Equal(t, "seed", def.Stages[0].Source)
	assert.Equal(t, "soil", def.Stages[0].Destination)
	assert.Equal(t, []config.MappingDefinition{
		{DestinationStart: 50, SourceStart: 98, Length: 2},
		{DestinationStart: 52, SourceStart: 50, Length: 48},
	}, def.Stages[0].Mappings)
	assert.Equal(t, "location", def.Stages[6].Destination)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr error
		contains  string
	}{
		{
			name:      "empty document",
			input:     "\n\n",
			expectErr: ErrMissingSeeds,
		},
		{
			name:      "map before seeds",
			input:     "seed-to-soil map:\n1 2 3\n",
			expectErr: ErrMissingSeeds,
		},
		{
			name:      "negative seed",
			input:     "seeds: 1 -2\n",
			expectErr: ErrInvalidSeed,
			contains:  "line 1",
		},
		{
			name:      "map name without to",
			input:     "seeds: 1\n\nseed-soil map:\n1 2 3\n",
			expectErr: ErrInvalidMapName,
			contains:  "line 3",
		},
		{
			name:      "map name with empty category",
			input:     "seeds: 1\n\n-to-soil map:\n",
			expectErr: ErrInvalidMapName,
		},
		{
			name:      "row outside a map",
			input:     "seeds: 1\n1 2 3\n",
			expectErr: ErrInvalidMapName,
			contains:  "expected a map header",
		},
		{
			name:      "short row",
			input:     "seeds: 1\nseed-to-soil map:\n1 2\n",
			expectErr: ErrInvalidRange,
			contains:  "want 3 numbers",
		},
		{
			name:      "non numeric row",
			input:     "seeds: 1\nseed-to-soil map:\n1 x 3\n",
			expectErr: ErrInvalidRange,
			contains:  "line 3",
		},
		{
			name:      "value beyond uint64",
			input:     "seeds: 18446744073709551616\n",
			expectErr: ErrInvalidSeed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectErr)
			if tc.contains != "" {
				assert.ErrorContains(t, err, tc.contains)
			}
		})
	}
}

func TestParse_LargeValuesAndEmptyMap(t *testing.T) {
	input := "seeds: 18446744073709551615 0\n\nseed-to-location map:\n\n"
	def, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []uint64{18446744073709551615, 0}, def.Seeds)
	require.Len(t, def.Stages, 1)
	assert.Empty(t, def.Stages[0].Mappings)
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "almanac.txt")
	require.NoError(t, os.WriteFile(path, []byte(testutil.CanonicalText), 0644))

	def, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, def.Stages, 7)

	_, err = NewLoader().Load(context.Background(), path, path)
	assert.ErrorIs(t, err, config.ErrConflictingSeeds)

	_, err = NewLoader().Load(context.Background(), filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
