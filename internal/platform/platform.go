package platform

import (
	"fmt"

	"github.com/vk/efxbuild/internal/design"
	"github.com/vk/efxbuild/internal/fsutil"
	"github.com/vk/efxbuild/internal/pinmap"
)

// Platform exposes the per-family operations constraint generation and the
// pipeline call. Implementations compose Base and override what differs.
type Platform interface {
	// Device identifies the target silicon.
	Device() *design.Device
	// RequiredTools names the external binaries the pipeline invokes, in
	// no particular order.
	RequiredTools() []string
	// ResolvePins maps a binding's pin tokens to package pin names.
	ResolvePins(b *design.PortBinding) ([]string, error)
	// SourceFiles returns the design source files matching the given
	// extensions, preserving declaration order.
	SourceFiles(exts ...string) []string
	// DefaultClockConstraint returns the clock constraint for the design's
	// default clock domain, or nil when the design declares none.
	DefaultClockConstraint() (*design.ClockConstraint, error)
}

// Base provides the family-independent behavior shared by all platforms.
type Base struct {
	Model *design.Model
	Pins  *pinmap.Map
}

// Device returns the model's target device.
func (b *Base) Device() *design.Device {
	return b.Model.Device
}

// ResolvePins maps the binding's declared pin tokens through the board pin
// map.
func (b *Base) ResolvePins(pb *design.PortBinding) ([]string, error) {
	return b.Pins.ResolveAll(pb.Pins)
}

// SourceFiles filters the model's source list by extension, preserving the
// declared order.
func (b *Base) SourceFiles(exts ...string) []string {
	return fsutil.FilterByExtension(b.Model.Sources, exts...)
}

// DefaultClockConstraint finds the clock constraint attached to the design's
// declared default clock. A design without a default clock has no default
// constraint; a default clock without a matching clock block is a
// configuration error.
func (b *Base) DefaultClockConstraint() (*design.ClockConstraint, error) {
	name := b.Model.DefaultClock
	if name == "" {
		return nil, nil
	}
	for _, c := range b.Model.Clocks {
		if c.Net == name || c.Port == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("default clock %q has no clock constraint", name)
}
