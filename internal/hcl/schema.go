package hcl

import "github.com/hashicorp/hcl/v2"

// designBlock names the design and lists its source files.
type designBlock struct {
	Name string `hcl:"name"`
	// Sources are design file paths in build order.
	Sources []string `hcl:"sources,optional"`
	// DefaultClock optionally names the resource (or the "oscint"
	// pseudo-clock) driving the default clock domain.
	DefaultClock string `hcl:"default_clock,optional"`
}

// deviceBlock identifies the target silicon.
type deviceBlock struct {
	Family  string `hcl:"family"`
	Name    string `hcl:"name"`
	Package string `hcl:"package"`
	Speed   string `hcl:"speed"`
}

// resourceBlock declares one top-level pin or bus and its physical binding.
type resourceBlock struct {
	Name      string   `hcl:"name,label"`
	Direction string   `hcl:"direction"`
	Pins      []string `hcl:"pins"`
	// Port overrides the port signal name; it defaults to the resource name.
	Port string `hcl:"port,optional"`
	// Width defaults to the number of declared pins.
	Width        int  `hcl:"width,optional"`
	Clock        bool `hcl:"clock,optional"`
	Differential bool `hcl:"differential,optional"`
	// Attributes is an object expression of electrical/behavioral
	// attributes; values may be strings, numbers or bools.
	Attributes hcl.Expression `hcl:"attributes,optional"`
}

// clockBlock constrains a clock net to a frequency in Hz.
type clockBlock struct {
	Net       string  `hcl:"net,label"`
	Port      string  `hcl:"port,optional"`
	Frequency float64 `hcl:"frequency"`
}

// fileRoot decodes all recognized top-level blocks from one file.
type fileRoot struct {
	Design    *designBlock     `hcl:"design,block"`
	Device    *deviceBlock     `hcl:"device,block"`
	Resources []*resourceBlock `hcl:"resource,block"`
	Clocks    []*clockBlock    `hcl:"clock,block"`
	Remain    hcl.Body         `hcl:",remain"`
}
