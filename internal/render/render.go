package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/vk/efxbuild/internal/constraint"
	"github.com/vk/efxbuild/internal/design"
)

// HelperScriptName is the emitted environment-bridging launcher for the
// constraint-conversion step.
const HelperScriptName = "run_platform_tool.py"

// Input carries everything the renderer serializes for one build.
type Input struct {
	// Name is the design name; every artifact file name derives from it.
	Name   string
	Device *design.Device
	// Records are the enumerated per-pin constraints, in emission order.
	Records []constraint.Record
	Clocks  []*design.ClockConstraint
	// SourceFiles are the design files listed in the project descriptor,
	// in declaration order.
	SourceFiles []string
	// HDL is the externally elaborated hardware description text. DebugHDL
	// optionally carries the debug variant.
	HDL      string
	DebugHDL string
}

type projectContext struct {
	Marker      string
	Name        string
	Family      string
	Part        string
	Timing      string
	SourceFiles []string
}

type peripheralContext struct {
	Marker  string
	Name    string
	Part    string
	Records []constraint.Record
}

type timingContext struct {
	Marker string
	Clocks []*design.ClockConstraint
}

type sourceContext struct {
	Marker string
	HDL    string
}

// Project renders the Efinity project descriptor (<name>.xml).
func Project(in Input) ([]byte, error) {
	return execute(projectTpl, projectContext{
		Marker:      generatedMarker,
		Name:        in.Name,
		Family:      in.Device.Family,
		Part:        in.Device.Part(),
		Timing:      in.Device.TimingModel(),
		SourceFiles: in.SourceFiles,
	})
}

// Peripheral renders the pin constraint file (<name>.peri.xml).
func Peripheral(in Input) ([]byte, error) {
	return execute(peripheralTpl, peripheralContext{
		Marker:  generatedMarker,
		Name:    in.Name,
		Part:    in.Device.Part(),
		Records: in.Records,
	})
}

// Timing renders the clock constraint file (<name>.sdc).
func Timing(in Input) ([]byte, error) {
	return execute(timingTpl, timingContext{
		Marker: generatedMarker,
		Clocks: in.Clocks,
	})
}

// Source wraps externally generated HDL text with the generation marker.
func Source(hdl string) ([]byte, error) {
	return execute(sourceTpl, sourceContext{Marker: generatedMarker, HDL: hdl})
}

func execute(tpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", tpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// Renderer writes rendered artifacts into an output directory.
type Renderer struct {
	OutDir string
}

// WriteAll renders and writes every artifact for the build and returns the
// written paths in order. Nothing is written for an artifact whose render
// fails, and the first failure aborts the remaining artifacts.
func (r *Renderer) WriteAll(in Input) ([]string, error) {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	type artifact struct {
		name   string
		render func() ([]byte, error)
	}
	artifacts := []artifact{
		{in.Name + ".xml", func() ([]byte, error) { return Project(in) }},
		{in.Name + ".peri.xml", func() ([]byte, error) { return Peripheral(in) }},
		{in.Name + ".sdc", func() ([]byte, error) { return Timing(in) }},
		{HelperScriptName, func() ([]byte, error) { return []byte(platformToolHelper), nil }},
	}
	if in.HDL != "" {
		artifacts = append(artifacts, artifact{in.Name + ".v", func() ([]byte, error) { return Source(in.HDL) }})
	}
	if in.DebugHDL != "" {
		artifacts = append(artifacts, artifact{in.Name + ".debug.v", func() ([]byte, error) { return Source(in.DebugHDL) }})
	}

	var written []string
	for _, a := range artifacts {
		content, err := a.render()
		if err != nil {
			return written, err
		}
		path := filepath.Join(r.OutDir, a.name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", a.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
