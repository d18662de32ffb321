package design

// Direction is the abstract I/O direction a resource declares, before it is
// normalized into the toolchain's mode vocabulary.
type Direction string

const (
	// DirInput marks a pure input resource.
	DirInput Direction = "input"
	// DirOutput marks a pure output resource.
	DirOutput Direction = "output"
	// DirBidir marks a bidirectional resource.
	DirBidir Direction = "bidir"
	// DirOutputEnable marks an output with a user-controlled enable.
	DirOutputEnable Direction = "oe"
)

// Resource is one logical top-level pin or bus declared by the design,
// independent of its physical package location.
type Resource struct {
	Name         string
	Direction    Direction
	Width        int
	IsClock      bool
	Differential bool
}

// PortBinding associates a Resource with its port signal name, the physical
// pin tokens it is bound to, and the user-supplied attribute mapping.
// Pin tokens are either package pin names ("A3") or connector references
// ("pmod_0:3") that a pin map resolves at enumeration time.
type PortBinding struct {
	Resource *Resource
	Port     string
	Pins     []string
	Attrs    map[string]string
}

// ClockConstraint constrains an internal clock net to a frequency in Hz.
// Only constraints with a bound external Port are emitted as timing
// constraints; Port may be empty for purely internal clocks.
type ClockConstraint struct {
	Net       string
	Port      string
	Frequency float64
}

// Device identifies the target silicon.
type Device struct {
	Family  string
	Name    string
	Package string
	Speed   string
}

// Part returns the full part designator the toolchain expects, the device
// name with the package suffix appended.
func (d *Device) Part() string {
	return d.Name + d.Package
}

// TimingModel returns the operating-conditions name for the device's speed
// grade.
func (d *Device) TimingModel() string {
	return "C" + d.Speed
}

// Model is the unified representation of one build request. Bindings and
// Clocks preserve declaration order; toolchain constraint files are
// order-sensitive for diffability, so loaders must not reorder them.
type Model struct {
	// Name is the design name; it names the top-level module and every
	// generated artifact.
	Name string
	// DefaultClock optionally names the resource driving the default clock
	// domain, or the pseudo-clock "oscint" for the internal oscillator.
	DefaultClock string
	Device       *Device
	Bindings     []*PortBinding
	Clocks       []*ClockConstraint
	// Sources lists design source files in declaration order.
	Sources []string
}
