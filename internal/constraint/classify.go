package constraint

import "github.com/vk/efxbuild/internal/design"

// The static name→bucket tables. An attribute name may appear in more than
// one table (its value is copied into every matching bucket) or in none
// (it is dropped, so newer attribute names never break older generators).
var (
	pinAttrNames = nameSet(
		"io_standard",
	)
	inputAttrNames = nameSet(
		"conn_type",
		"is_register",
		"clock_name",
		"is_clock_inverted",
		"pull_option",
		"is_schmitt_trigger",
		"ddio_type",
	)
	outputAttrNames = nameSet(
		"is_clock_inverted",
		"is_slew_rate",
		"clock_name",
		"tied_option",
		"ddio_type",
		"drive_strength",
	)
	outputEnableAttrNames = nameSet()
)

func nameSet(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Buckets holds one pin's attributes partitioned the way Efinity wants them:
// entry-level pin attributes plus the attributes of each inner configuration
// element.
type Buckets struct {
	Pin          map[string]string
	Input        map[string]string
	Output       map[string]string
	OutputEnable map[string]string
}

// Classify partitions attrs into the four Efinity buckets and applies the
// required defaults. It is a pure function: attrs is never mutated, and the
// returned maps are freshly allocated (possibly empty, never nil).
//
// The input bucket must always carry a conn_type; when the user supplied
// none, clock resources get "gclk" and everything else gets "normal".
func Classify(res *design.Resource, attrs map[string]string) Buckets {
	b := Buckets{
		Pin:          make(map[string]string),
		Input:        make(map[string]string),
		Output:       make(map[string]string),
		OutputEnable: make(map[string]string),
	}

	for name, value := range attrs {
		if _, ok := pinAttrNames[name]; ok {
			b.Pin[name] = value
		}
		if _, ok := inputAttrNames[name]; ok {
			b.Input[name] = value
		}
		if _, ok := outputAttrNames[name]; ok {
			b.Output[name] = value
		}
		if _, ok := outputEnableAttrNames[name]; ok {
			b.OutputEnable[name] = value
		}
	}

	if _, ok := b.Input["conn_type"]; !ok {
		if res.IsClock {
			b.Input["conn_type"] = "gclk"
		} else {
			b.Input["conn_type"] = "normal"
		}
	}

	return b
}
