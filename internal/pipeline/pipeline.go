package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/efxbuild/internal/ctxlog"
	"github.com/vk/efxbuild/internal/design"
	"github.com/vk/efxbuild/internal/toolchain"
)

// Plan resolves the fixed Efinity build sequence for one design. Every
// binary and environment is resolved up front so a broken installation
// fails here, before any process is spawned.
func Plan(tc *toolchain.Toolchain, dev *design.Device, name string) ([]Step, error) {
	efxMap, err := tc.Tool("efx_map")
	if err != nil {
		return nil, err
	}
	efxPnr, err := tc.Tool("efx_pnr")
	if err != nil {
		return nil, err
	}
	efxPgm, err := tc.Tool("efx_pgm")
	if err != nil {
		return nil, err
	}
	python, err := tc.Python()
	if err != nil {
		return nil, err
	}
	platformEnv, err := tc.PlatformEnv()
	if err != nil {
		return nil, err
	}

	return []Step{
		{
			Name: "map",
			Command: Command{
				Path: efxMap,
				Args: []string{
					"--project", name,
					"--root", name,
					"--write-efx-verilog", name + ".map.v",
					"--write-premap-module", name + ".elab.vdb",
					"--binary-db", name + ".vdb",
					"--device", dev.Name,
					"--family", dev.Family,
					"--work-dir", "./work",
					"--output-dir", "./outflow",
					"--project-xml", name + ".xml",
					"--I", ".",
				},
			},
		},
		{
			// Rewrites the abstract peripheral constraints into
			// device-tile-addressed routing constraints. Runs inside the
			// interface designer's own Python environment.
			Name: "platform-tool",
			Command: Command{
				Path: python,
				Args: []string{
					filepath.Join(tc.Home, "scripts", "efx_run_pt.py"),
					name,
					dev.Family,
					dev.Part(),
				},
				Env: platformEnv,
			},
		},
		{
			Name: "pnr",
			Command: Command{
				Path: efxPnr,
				Args: []string{
					"--circuit", name,
					"--family", dev.Family,
					"--device", dev.Part(),
					"--operating_conditions", dev.TimingModel(),
					"--pack",
					"--place",
					"--route",
					"--vdb_file", filepath.Join("work", name+".vdb"),
					"--use_vdb_file", "on",
					"--place_file", filepath.Join("outflow", name+".place"),
					"--route_file", filepath.Join("outflow", name+".route"),
					"--sync_file", filepath.Join("outflow", name+".interface.csv"),
					"--seed", "1",
					"--placer_effort_level", "2",
					"--max_threads", "-1",
					"--work_dir", "work",
					"--output_dir", "out",
					"--timing_analysis", "on",
					"--load_delay_matrix",
				},
			},
		},
		{
			Name: "bitstream",
			Command: Command{
				Path: efxPgm,
				Args: []string{
					"--source", filepath.Join("work", name+".lbf"),
					"--dest", name + ".hex",
					"--device", dev.Part(),
					"--family", dev.Family,
					"--periph", filepath.Join("outflow", name+".lpf"),
					"--interface_designer_settings", filepath.Join("outflow", name+"_or.ini"),
					"--enable_external_master_clock", "off",
					"--oscillator_clock_divider", "DIV8",
					"--active_capture_clk_edge", "posedge",
					"--spi_low_power_mode", "on",
					"--io_weak_pullup", "on",
					"--enable_roms", "smart",
					"--mode", "active",
					"--width", "1",
					"--release_tri_then_reset", "on",
				},
			},
		},
	}, nil
}

// Run drives the steps strictly in order, halting on the first failure.
// A failed step aborts the whole build; nothing after it runs.
func Run(ctx context.Context, steps []Step, r Runner) error {
	logger := ctxlog.FromContext(ctx)
	for i, step := range steps {
		logger.Info("▶️ Running pipeline step.", "step", step.Name, "index", i+1, "total", len(steps))
		if err := r.Run(ctx, step); err != nil {
			logger.Error("Pipeline step failed.", "step", step.Name, "error", err)
			return fmt.Errorf("pipeline step %q failed: %w", step.Name, err)
		}
		logger.Debug("Pipeline step finished.", "step", step.Name)
	}
	logger.Info("✅ Pipeline complete.", "steps", len(steps))
	return nil
}
