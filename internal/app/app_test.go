package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/efxbuild/internal/hcl"
	"github.com/vk/efxbuild/internal/pipeline"
	"github.com/vk/efxbuild/internal/platform"
	"github.com/vk/efxbuild/internal/toolchain"
)

const testDesign = `
design {
  name          = "blinky"
  sources       = ["top.v"]
  default_clock = "clk"
}

device {
  family  = "Trion"
  name    = "T20"
  package = "F256"
  speed   = "4"
}

resource "clk" {
  direction = "input"
  pins      = ["H12"]
  clock     = true
}

resource "led" {
  direction = "output"
  pins      = ["A3"]

  attributes = {
    drive_strength = "4mA"
  }
}

clock "clk" {
  port      = "clk"
  frequency = 25000000
}
`

func writeTestDesign(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "design.hcl"), []byte(content), 0o644))
	return dir
}

type recordingRunner struct {
	ran []string
}

func (r *recordingRunner) Run(ctx context.Context, step pipeline.Step) error {
	r.ran = append(r.ran, step.Name)
	return nil
}

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	validated, err := NewConfig(cfg)
	require.NoError(t, err)
	return NewApp(io.Discard, validated, hcl.NewLoader())
}

func TestRunGenerateOnly(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "build")
	a := newTestApp(t, Config{
		DesignPath:   writeTestDesign(t, testDesign),
		OutDir:       outDir,
		GenerateOnly: true,
		LogLevel:     "error",
	})

	require.NoError(t, a.Run(context.Background()))

	for _, name := range []string{"blinky.xml", "blinky.peri.xml", "blinky.sdc", "run_platform_tool.py"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	peri, err := os.ReadFile(filepath.Join(outDir, "blinky.peri.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(peri), `gpio_def="led" mode="output"`)
	assert.Contains(t, string(peri), `conn_type="gclk"`)
}

func TestRunFullPipeline(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "bin"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(home, "python3.8", "bin"), 0o755))
	for _, tool := range []string{"efx_map", "efx_pnr", "efx_pgm"} {
		require.NoError(t, os.WriteFile(filepath.Join(home, "bin", tool), []byte("#!/bin/sh\n"), 0o755))
	}
	t.Setenv(toolchain.EnvHome, home)

	a := newTestApp(t, Config{
		DesignPath: writeTestDesign(t, testDesign),
		OutDir:     filepath.Join(t.TempDir(), "build"),
		LogLevel:   "error",
	})
	runner := &recordingRunner{}
	a.runner = runner

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []string{"map", "platform-tool", "pnr", "bitstream"}, runner.ran)
}

func TestRunMissingToolchain(t *testing.T) {
	t.Setenv(toolchain.EnvHome, "")

	a := newTestApp(t, Config{
		DesignPath: writeTestDesign(t, testDesign),
		OutDir:     filepath.Join(t.TempDir(), "build"),
		LogLevel:   "error",
	})
	err := a.Run(context.Background())
	assert.ErrorIs(t, err, toolchain.ErrHomeNotSet)
}

func TestRunRejectsOscillatorDomain(t *testing.T) {
	const oscintDesign = `
design {
  name          = "tiny"
  default_clock = "oscint"
}

device {
  family  = "Trion"
  name    = "T8"
  package = "F81"
  speed   = "4"
}
`
	a := newTestApp(t, Config{
		DesignPath:   writeTestDesign(t, oscintDesign),
		OutDir:       filepath.Join(t.TempDir(), "build"),
		GenerateOnly: true,
		LogLevel:     "error",
	})
	err := a.Run(context.Background())
	assert.ErrorIs(t, err, platform.ErrOscillatorUnsupported)
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{OutDir: "build"})
	assert.ErrorContains(t, err, "DesignPath")

	_, err = NewConfig(Config{DesignPath: "design.hcl"})
	assert.ErrorContains(t, err, "OutDir")

	cfg, err := NewConfig(Config{DesignPath: "design.hcl", OutDir: "build"})
	require.NoError(t, err)
	assert.Equal(t, "design.hcl", cfg.DesignPath)
}
