package constraint

import (
	"fmt"

	"github.com/vk/efxbuild/internal/design"
)

// Record is the normalized per-physical-pin unit of constraint output: one
// GPIO entry in the peripheral constraint file.
type Record struct {
	// PinName is the package pin this record constrains.
	PinName string
	// PortName is the port signal name; bus bindings get an indexed name
	// of the form "base[i]".
	PortName string
	Mode     Mode
	// Differential marks the record as one half of a differential pair.
	Differential bool
	Buckets      Buckets
}

// PinResolver maps a binding's abstract pin tokens to concrete package pin
// names, one per bit. The platform supplies one backed by its board pin map.
type PinResolver func(b *design.PortBinding) ([]string, error)

// Enumerate walks the bound pin assignments of a design in order and yields
// one Record per physical pin. Buses expand to one record per bit with the
// port signal name indexed from 0, in the same order as the resolved pin
// list. A binding that resolves to no pins yields no records.
//
// The result is a pure function of the binding order, so a fresh pass over
// the same bindings yields identical records.
func Enumerate(bindings []*design.PortBinding, resolve PinResolver) ([]Record, error) {
	var records []Record

	for _, binding := range bindings {
		pinNames, err := resolve(binding)
		if err != nil {
			return nil, fmt.Errorf("resolving pins for %q: %w", binding.Port, err)
		}
		if len(pinNames) == 0 {
			continue
		}

		// All bits of a bus share one classification and one mode.
		buckets := Classify(binding.Resource, binding.Attrs)
		mode := ModeOf(binding.Resource)

		if len(pinNames) == 1 {
			records = append(records, Record{
				PinName:      pinNames[0],
				PortName:     binding.Port,
				Mode:         mode,
				Differential: binding.Resource.Differential,
				Buckets:      buckets,
			})
			continue
		}

		for bit, pinName := range pinNames {
			records = append(records, Record{
				PinName:      pinName,
				PortName:     fmt.Sprintf("%s[%d]", binding.Port, bit),
				Mode:         mode,
				Differential: binding.Resource.Differential,
				Buckets:      buckets,
			})
		}
	}

	return records, nil
}
