package render

import "text/template"

// generatedMarker is stamped into every emitted artifact.
const generatedMarker = "Automatically generated by efxbuild. Do not edit."

var tmplFuncs = template.FuncMap{
	"asciiEscape": asciiEscape,
	"period":      clockPeriod,
	"attrs":       sortedAttrs,
}

var (
	// The Efinity project descriptor.
	projectTpl = template.Must(template.New("project").Funcs(tmplFuncs).Parse(
		`<?xml version="1.0" encoding="UTF-8"?>
<!-- {{.Marker}} -->
<efx:project name="{{.Name}}" description="" last_change_date="at January 1 1970 00:00:00" location="." sw_version="2023.1.150" last_run_state="" last_run_tool="" last_run_flow="" config_result_in_sync="true" design_ood="sync" place_ood="" route_ood="sync" xmlns:efx="http://www.efinixinc.com/enf_proj" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.efinixinc.com/enf_proj enf_proj.xsd">
    <efx:device_info>
        <efx:family name="{{.Family}}"/>
        <efx:device name="{{.Part}}"/>
        <efx:timing_model name="{{.Timing}}"/>
    </efx:device_info>
    <efx:design_info def_veri_version="sv_09" def_vhdl_version="vhdl_2008">
        <efx:top_module name="{{.Name}}"/>
        <efx:design_file name="{{.Name}}.v" version="default" library="default"/>
{{- range .SourceFiles}}
        <efx:design_file name="{{.}}" version="default" library="default"/>
{{- end}}
        <efx:top_vhdl_arch name=""/>
    </efx:design_info>
    <efx:constraint_info>
        <efx:sdc_file name="{{.Name}}.sdc"/>
        <efx:inter_file name=""/>
    </efx:constraint_info>
</efx:project>
`))

	// The peripheral (pin) constraint file. Input and output configurations
	// are keyed by pin name, the output-enable configuration by port name;
	// the interface designer wants it that way.
	peripheralTpl = template.Must(template.New("peripheral").Funcs(tmplFuncs).Parse(
		`<?xml version="1.0" encoding="UTF-8"?>
<!-- {{.Marker}} -->
<efxpt:design_db name="{{.Name}}" device_def="{{.Part}}" location="." version="2023.1.150" db_version="20231999" xmlns:efxpt="http://www.efinixinc.com/peri_design_db" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.efinixinc.com/peri_design_db peri_design_db.xsd ">
    <efxpt:gpio_info device_def="{{.Part}}">
{{- range .Records}}
        <efxpt:gpio name="{{.PinName}}" gpio_def="{{.PortName}}" mode="{{.Mode}}"{{range attrs .Buckets.Pin}} {{.Key}}="{{.Value}}"{{end}}>
{{- if or (eq .Mode "input") (eq .Mode "inout")}}
            <efxpt:input_config name="{{.PinName}}"{{range attrs .Buckets.Input}} {{.Key}}="{{.Value}}"{{end}}/>
{{- end}}
{{- if or (eq .Mode "output") (eq .Mode "inout")}}
            <efxpt:output_config name="{{.PinName}}"{{range attrs .Buckets.Output}} {{.Key}}="{{.Value}}"{{end}}/>
{{- end}}
{{- if eq .Mode "inout"}}
            <efxpt:output_enable_config name="{{.PortName}}"{{range attrs .Buckets.OutputEnable}} {{.Key}}="{{.Value}}"{{end}}/>
{{- end}}
        </efxpt:gpio>
{{- end}}
        <efxpt:global_unused_config state="input with weak pullup"/>
    </efxpt:gpio_info>
    <efxpt:pll_info/>
    <efxpt:lvds_info/>
    <efxpt:jtag_info/>
</efxpt:design_db>
`))

	// Clock constraints. Constraints without a bound external port restrict
	// internal timing only and have no place in this file.
	timingTpl = template.Must(template.New("timing").Funcs(tmplFuncs).Parse(
		`# {{.Marker}}
{{- range .Clocks}}
{{- if .Port}}
create_clock -period {{period .Frequency}} {{asciiEscape .Port}}
{{- end}}
{{- end}}
`))

	// Wrapper around externally generated HDL.
	sourceTpl = template.Must(template.New("source").Parse(
		`/* {{.Marker}} */
{{.HDL}}
`))
)

// platformToolHelper bridges into the Efinity sub-environment: it locates
// the toolchain's own Python installation under EFINITY_HOME and re-runs the
// requested script with the interface designer's environment, leaving the
// caller's environment untouched.
const platformToolHelper = `# Automatically generated wrapper. Do not edit.
import os
import sys
import glob
import subprocess

efinity_home = os.environ['EFINITY_HOME']

# Find the PYTHONHOME and the Python interpreter we need to target.
python_glob       = os.path.join(efinity_home, "python*")
target_pythonhome = glob.glob(python_glob)[0]
target_python     = os.path.join(target_pythonhome, "bin", "python")

# Build the necessary environment for the script to run.
target_env = os.environ.copy()
target_env["PYTHONHOME"]  = target_pythonhome
target_env["EFXPT_HOME"]  = os.path.join(efinity_home, "pt")
target_env["EFXPGM_HOME"] = os.path.join(efinity_home, "pgm")
target_env["EFXDBG_HOME"] = os.path.join(efinity_home, "debugger")

# Finally, run the target python.
sys.exit(subprocess.run([
    target_python,
    os.path.join(efinity_home, sys.argv[1]),
    *sys.argv[2:]
], env=target_env).returncode)
`
