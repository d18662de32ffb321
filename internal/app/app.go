package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/efxbuild/internal/constraint"
	"github.com/vk/efxbuild/internal/ctxlog"
	"github.com/vk/efxbuild/internal/design"
	"github.com/vk/efxbuild/internal/pinmap"
	"github.com/vk/efxbuild/internal/pipeline"
	"github.com/vk/efxbuild/internal/platform"
	"github.com/vk/efxbuild/internal/render"
	"github.com/vk/efxbuild/internal/toolchain"
)

// App encapsulates one build's dependencies and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader design.Loader

	// runner overrides the process runner; tests inject a fake here.
	runner pipeline.Runner
}

// NewApp constructs the application with its own isolated logger.
func NewApp(outW io.Writer, cfg *Config, loader design.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Run executes one build end to end: load the design, enumerate pin
// constraints, write the toolchain artifacts, and unless configured
// generate-only, drive the external tool pipeline to a bitstream.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger

	model, err := a.loader.Load(ctx, a.config.DesignPath)
	if err != nil {
		return fmt.Errorf("loading design: %w", err)
	}
	logger.Info("📐 Design loaded.", "name", model.Name, "device", model.Device.Part())

	var pins *pinmap.Map
	if a.config.PinMapPath != "" {
		pins, err = pinmap.Load(a.config.PinMapPath)
		if err != nil {
			return err
		}
		logger.Debug("Board pin map loaded.", "connectors", len(pins.Connectors))
	}

	plat := platform.NewEfinix(model, pins)
	if err := plat.ValidateDefaultClock(); err != nil {
		return err
	}
	if _, err := plat.DefaultClockConstraint(); err != nil {
		return err
	}

	records, err := constraint.Enumerate(model.Bindings, plat.ResolvePins)
	if err != nil {
		return err
	}
	logger.Debug("Pin constraints enumerated.", "records", len(records))

	input := render.Input{
		Name:        model.Name,
		Device:      model.Device,
		Records:     records,
		Clocks:      model.Clocks,
		SourceFiles: plat.SourceFiles(plat.SourceExtensions()...),
	}
	if input.HDL, err = readOptional(a.config.HDLPath); err != nil {
		return err
	}
	if input.DebugHDL, err = readOptional(a.config.DebugHDLPath); err != nil {
		return err
	}

	renderer := &render.Renderer{OutDir: a.config.OutDir}
	written, err := renderer.WriteAll(input)
	if err != nil {
		return fmt.Errorf("writing artifacts: %w", err)
	}
	logger.Info("📝 Artifacts written.", "count", len(written), "dir", a.config.OutDir)

	if a.config.GenerateOnly {
		logger.Info("✅ Generate-only build complete.")
		return nil
	}

	tc, err := toolchain.Discover()
	if err != nil {
		return err
	}
	steps, err := pipeline.Plan(tc, model.Device, model.Name)
	if err != nil {
		return err
	}

	runner := a.runner
	if runner == nil {
		runner = &pipeline.ExecRunner{Dir: a.config.OutDir, Verbose: a.config.Verbose}
	}
	if err := pipeline.Run(ctx, steps, runner); err != nil {
		return err
	}
	logger.Info("✅ Build complete.", "bitstream", model.Name+".hex")
	return nil
}

// readOptional reads a file when a path is configured; an empty path reads
// as empty content.
func readOptional(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(raw), nil
}
