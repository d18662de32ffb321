package platform

import (
	"errors"
	"fmt"

	"github.com/vk/efxbuild/internal/design"
	"github.com/vk/efxbuild/internal/pinmap"
)

// OscillatorClock is the pseudo-clock name selecting the Trion internal
// oscillator as the default clock source.
const OscillatorClock = "oscint"

// oscillatorFrequency is the fixed internal oscillator rate, 10 kHz.
const oscillatorFrequency = 10e3

// ErrOscillatorUnsupported reports that wiring the internal oscillator into
// a clock domain is not supported, even on devices that route it.
var ErrOscillatorUnsupported = errors.New("internal oscillator clock domain is not supported")

// Efinix is the platform for the Efinity toolchain (Trion device families).
type Efinix struct {
	Base
}

// NewEfinix builds the Efinix platform for one design model. The pin map
// may be nil when the design binds package pins directly.
func NewEfinix(m *design.Model, pins *pinmap.Map) *Efinix {
	return &Efinix{Base: Base{Model: m, Pins: pins}}
}

// RequiredTools lists the Efinity binaries the build pipeline invokes.
func (p *Efinix) RequiredTools() []string {
	return []string{"efx_map", "efx_pnr", "efx_pgm"}
}

// SourceExtensions are the HDL extensions Efinity accepts as design files.
func (p *Efinix) SourceExtensions() []string {
	return []string{".v", ".sv", ".vhd", ".vhdl"}
}

// DefaultClockConstraint handles the internal oscillator, which is fixed at
// 10 kHz and has no external port; everything else defers to the base
// lookup. ValidateDefaultClock runs before this and currently rejects every
// oscillator configuration, so the oscillator branch never reaches emission;
// it stays here so the constraint is in one place if a device ever routes
// the oscillator as a clock.
func (p *Efinix) DefaultClockConstraint() (*design.ClockConstraint, error) {
	if p.Model.DefaultClock == OscillatorClock {
		return &design.ClockConstraint{Net: OscillatorClock, Frequency: oscillatorFrequency}, nil
	}
	return p.Base.DefaultClockConstraint()
}

// ValidateDefaultClock rejects default-clock configurations the backend
// cannot build. T4 and T8 have a usable 10 kHz internal oscillator, but
// wiring it into a clock domain is not supported; the larger Trion devices
// do not route it as a clock at all.
func (p *Efinix) ValidateDefaultClock() error {
	if p.Model.DefaultClock != OscillatorClock {
		return nil
	}
	switch p.Model.Device.Name {
	case "T4", "T8":
		return ErrOscillatorUnsupported
	}
	return fmt.Errorf("internal oscillator is not routable as a clock on %s", p.Model.Device.Name)
}

var _ Platform = (*Efinix)(nil)
