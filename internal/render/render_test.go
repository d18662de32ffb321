package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/efxbuild/internal/constraint"
	"github.com/vk/efxbuild/internal/design"
)

func testInput() Input {
	return Input{
		Name: "blinky",
		Device: &design.Device{
			Family:  "Trion",
			Name:    "T20",
			Package: "F256",
			Speed:   "4",
		},
		SourceFiles: []string{"top.v", "alu.sv"},
		Clocks: []*design.ClockConstraint{
			{Net: "clk", Port: "clk", Frequency: 25e6},
			{Net: "pll_out", Frequency: 100e6}, // internal, no port
		},
	}
}

func TestProject(t *testing.T) {
	out, err := Project(testInput())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, `<efx:family name="Trion"/>`)
	assert.Contains(t, text, `<efx:device name="T20F256"/>`)
	assert.Contains(t, text, `<efx:timing_model name="C4"/>`)
	assert.Contains(t, text, `<efx:top_module name="blinky"/>`)
	assert.Contains(t, text, `<efx:sdc_file name="blinky.sdc"/>`)

	// Source files keep their declared order.
	top := strings.Index(text, `name="top.v"`)
	alu := strings.Index(text, `name="alu.sv"`)
	require.GreaterOrEqual(t, top, 0)
	require.GreaterOrEqual(t, alu, 0)
	assert.Less(t, top, alu)
}

func record(pin, port string, mode constraint.Mode) constraint.Record {
	return constraint.Record{
		PinName:  pin,
		PortName: port,
		Mode:     mode,
		Buckets: constraint.Buckets{
			Pin:          map[string]string{},
			Input:        map[string]string{"conn_type": "normal"},
			Output:       map[string]string{},
			OutputEnable: map[string]string{},
		},
	}
}

func TestPeripheral(t *testing.T) {
	t.Run("input mode emits only the input block", func(t *testing.T) {
		in := testInput()
		in.Records = []constraint.Record{record("H12", "btn", constraint.ModeInput)}

		out, err := Peripheral(in)
		require.NoError(t, err)
		text := string(out)

		assert.Contains(t, text, `<efxpt:gpio name="H12" gpio_def="btn" mode="input">`)
		assert.Contains(t, text, `<efxpt:input_config name="H12" conn_type="normal"/>`)
		assert.NotContains(t, text, "output_config")
		assert.NotContains(t, text, "output_enable_config")
	})

	t.Run("output mode emits only the output block", func(t *testing.T) {
		rec := record("A3", "led", constraint.ModeOutput)
		rec.Buckets.Output["drive_strength"] = "4mA"
		in := testInput()
		in.Records = []constraint.Record{rec}

		out, err := Peripheral(in)
		require.NoError(t, err)
		text := string(out)

		assert.Contains(t, text, `<efxpt:output_config name="A3" drive_strength="4mA"/>`)
		assert.NotContains(t, text, "input_config")
		assert.NotContains(t, text, "output_enable_config")
	})

	t.Run("inout emits all three blocks, oe keyed by port name", func(t *testing.T) {
		in := testInput()
		in.Records = []constraint.Record{record("B1", "data[0]", constraint.ModeInout)}

		out, err := Peripheral(in)
		require.NoError(t, err)
		text := string(out)

		assert.Contains(t, text, `<efxpt:input_config name="B1"`)
		assert.Contains(t, text, `<efxpt:output_config name="B1"`)
		assert.Contains(t, text, `<efxpt:output_enable_config name="data[0]"/>`)
	})

	t.Run("pin attributes appear on the gpio element", func(t *testing.T) {
		rec := record("H12", "clk", constraint.ModeInput)
		rec.Buckets.Pin["io_standard"] = "3.3 V LVTTL / LVCMOS"
		in := testInput()
		in.Records = []constraint.Record{rec}

		out, err := Peripheral(in)
		require.NoError(t, err)
		assert.Contains(t, string(out),
			`<efxpt:gpio name="H12" gpio_def="clk" mode="input" io_standard="3.3 V LVTTL / LVCMOS">`)
	})

	t.Run("boilerplate survives", func(t *testing.T) {
		out, err := Peripheral(testInput())
		require.NoError(t, err)
		text := string(out)
		assert.Contains(t, text, `<efxpt:global_unused_config state="input with weak pullup"/>`)
		assert.Contains(t, text, "<efxpt:pll_info/>")
	})
}

func TestTiming(t *testing.T) {
	out, err := Timing(testInput())
	require.NoError(t, err)
	text := string(out)

	// 100000000 / 25 MHz = 4.
	assert.Contains(t, text, "create_clock -period 4 clk")
	// Unbound constraints are skipped.
	assert.NotContains(t, text, "pll_out")
	assert.Equal(t, 1, strings.Count(text, "create_clock"))
}

func TestSource(t *testing.T) {
	out, err := Source("module blinky();\nendmodule")
	require.NoError(t, err)
	text := string(out)
	assert.True(t, strings.HasPrefix(text, "/* Automatically generated"))
	assert.Contains(t, text, "module blinky();")
}

func TestAsciiEscape(t *testing.T) {
	assert.Equal(t, "clk", asciiEscape("clk"))
	assert.Equal(t, "data_5b_0_5d_", asciiEscape("data[0]"))
	assert.Equal(t, "a_24_b", asciiEscape("a$b"))
}

func TestClockPeriod(t *testing.T) {
	assert.Equal(t, "4", clockPeriod(25e6))
	assert.Equal(t, "10000", clockPeriod(10e3))
}

func TestSortedAttrs(t *testing.T) {
	attrs := sortedAttrs(map[string]string{"pull_option": "weak pullup", "conn_type": "gclk"})
	require.Len(t, attrs, 2)
	assert.Equal(t, "conn_type", attrs[0].Key)
	assert.Equal(t, "pull_option", attrs[1].Key)
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	r := &Renderer{OutDir: filepath.Join(dir, "build")}

	in := testInput()
	in.HDL = "module blinky();\nendmodule"

	written, err := r.WriteAll(in)
	require.NoError(t, err)

	var names []string
	for _, p := range written {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{
		"blinky.xml", "blinky.peri.xml", "blinky.sdc", "run_platform_tool.py", "blinky.v",
	}, names)

	for _, p := range written {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), p)
	}

	helper, err := os.ReadFile(filepath.Join(r.OutDir, "run_platform_tool.py"))
	require.NoError(t, err)
	assert.Contains(t, string(helper), "EFINITY_HOME")

	t.Run("debug variant is written when provided", func(t *testing.T) {
		in.DebugHDL = "// debug"
		written, err := r.WriteAll(in)
		require.NoError(t, err)
		assert.Contains(t, filepath.Base(written[len(written)-1]), "blinky.debug.v")
	})
}
