package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"a.v", "b.txt", "sub/c.v"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	files, err := FindFilesByExtension(dir, ".v")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.v"),
		filepath.Join(dir, "sub", "c.v"),
	}, files)
}

func TestFilterByExtension(t *testing.T) {
	files := []string{"top.v", "pkg.vhd", "core.sv", "README.md", "alu.vhdl"}

	t.Run("preserves input order", func(t *testing.T) {
		got := FilterByExtension(files, ".v", ".sv", ".vhd", ".vhdl")
		assert.Equal(t, []string{"top.v", "pkg.vhd", "core.sv", "alu.vhdl"}, got)
	})

	t.Run("single extension", func(t *testing.T) {
		got := FilterByExtension(files, ".sv")
		assert.Equal(t, []string{"core.sv"}, got)
	})

	t.Run("no match yields nil", func(t *testing.T) {
		assert.Nil(t, FilterByExtension(files, ".xdc"))
	})
}
