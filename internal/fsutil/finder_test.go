package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}
	return root
}

func TestFindFilesByExtension(t *testing.T) {
	root := writeTree(t, "b.hcl", "a.HCL", "nested/c.hcl", "notes.txt", "d.yaml")

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.HCL"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)

	files, err = FindFilesByExtension(root, ".yaml", ".yml")
	require.NoError(t, err)
	assert.Len(t, files, 1)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root) })
}

func TestResolve(t *testing.T) {
	root := writeTree(t, "x.txt", "sub/y.txt", "sub/z.hcl")

	files, err := Resolve(filepath.Join(root, "sub", "z.hcl"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "sub", "z.hcl")}, files)

	files, err = Resolve(root, ".txt")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	_, err = Resolve(filepath.Join(root, "missing"), ".txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
