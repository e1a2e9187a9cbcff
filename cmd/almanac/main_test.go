package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/almanac/internal/cli"
	"github.com/specialistvlad/almanac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.almanac")
	require.NoError(t, os.WriteFile(path, []byte(testutil.CanonicalText), 0o644))

	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"-mode", "both", path})
	require.NoError(t, err)
	assert.Equal(t, "lowest location (points): 35\nlowest location (ranges): 46\n", out.String())
}

func TestRun_ExitCodes(t *testing.T) {
	t.Run("usage", func(t *testing.T) {
		err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-mode", "nope", "x.txt"})
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, cli.ExitUsage, exitErr.Code)
	})

	t.Run("run failure", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.txt")
		err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{missing})
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, cli.ExitFailure, exitErr.Code)
	})

	t.Run("help", func(t *testing.T) {
		var out bytes.Buffer
		assert.NoError(t, run(context.Background(), &out, &bytes.Buffer{}, []string{"-h"}))
		assert.Contains(t, out.String(), "almanac [options]")
	})
}
