package toolchain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInstall lays out just enough of an Efinity tree for discovery.
func fakeInstall(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "bin"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(home, "python3.8", "bin"), 0o755))
	for _, tool := range []string{"efx_map", "efx_pnr", "efx_pgm"} {
		require.NoError(t, os.WriteFile(filepath.Join(home, "bin", tool), []byte("#!/bin/sh\n"), 0o755))
	}
	return home
}

func TestDiscover(t *testing.T) {
	t.Run("missing variable is a configuration error", func(t *testing.T) {
		t.Setenv(EnvHome, "")
		_, err := Discover()
		assert.ErrorIs(t, err, ErrHomeNotSet)
	})

	t.Run("nonexistent directory is rejected", func(t *testing.T) {
		t.Setenv(EnvHome, filepath.Join(t.TempDir(), "nope"))
		_, err := Discover()
		assert.Error(t, err)
	})

	t.Run("valid installation resolves", func(t *testing.T) {
		home := fakeInstall(t)
		t.Setenv(EnvHome, home)
		tc, err := Discover()
		require.NoError(t, err)
		assert.Equal(t, home, tc.Home)
	})
}

func TestTool(t *testing.T) {
	tc := &Toolchain{Home: fakeInstall(t)}

	path, err := tc.Tool("efx_map")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tc.Home, "bin", "efx_map"), path)

	_, err = tc.Tool("efx_missing")
	assert.ErrorContains(t, err, "efx_missing")
}

func TestPython(t *testing.T) {
	tc := &Toolchain{Home: fakeInstall(t)}

	python, err := tc.Python()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tc.Home, "python3.8", "bin", "python"), python)

	empty := &Toolchain{Home: t.TempDir()}
	_, err = empty.Python()
	assert.ErrorContains(t, err, "no bundled python")
}

func TestPlatformEnv(t *testing.T) {
	tc := &Toolchain{Home: fakeInstall(t)}
	t.Setenv("PYTHONHOME", "/usr/lib/python-original")

	env, err := tc.PlatformEnv()
	require.NoError(t, err)

	lookup := func(key string) (string, int) {
		var value string
		count := 0
		for _, e := range env {
			if v, ok := strings.CutPrefix(e, key+"="); ok {
				value = v
				count++
			}
		}
		return value, count
	}

	pythonHome, n := lookup("PYTHONHOME")
	assert.Equal(t, 1, n, "override must replace, not duplicate")
	assert.Equal(t, filepath.Join(tc.Home, "python3.8"), pythonHome)

	for key, want := range map[string]string{
		"EFXPT_HOME":  filepath.Join(tc.Home, "pt"),
		"EFXPGM_HOME": filepath.Join(tc.Home, "pgm"),
		"EFXDBG_HOME": filepath.Join(tc.Home, "debugger"),
	} {
		got, n := lookup(key)
		assert.Equal(t, 1, n, key)
		assert.Equal(t, want, got, key)
	}

	// The caller's environment must stay untouched.
	assert.Equal(t, "/usr/lib/python-original", os.Getenv("PYTHONHOME"))
}

func TestOverrideEnv(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/root"}
	got := overrideEnv(base, []envVar{{"PATH", "/opt/bin"}, {"NEW", "1"}})

	assert.Equal(t, []string{"PATH=/opt/bin", "HOME=/root", "NEW=1"}, got)
	assert.Equal(t, []string{"PATH=/usr/bin", "HOME=/root"}, base, "base slice must not be mutated")
}
