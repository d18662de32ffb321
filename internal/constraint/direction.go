package constraint

import "github.com/vk/efxbuild/internal/design"

// Mode is the three-way direction vocabulary of the Efinity GPIO schema,
// plus the "none" state for resources that declare no meaningful I/O.
type Mode string

const (
	ModeInput  Mode = "input"
	ModeOutput Mode = "output"
	ModeInout  Mode = "inout"
	ModeNone   Mode = "none"
)

// ModeOf normalizes a resource's abstract direction into the Efinity mode.
// The mapping is total: any direction outside the four recognized values
// maps to ModeNone rather than failing, since a resource without a
// meaningful direction is a legitimate design state.
func ModeOf(res *design.Resource) Mode {
	switch res.Direction {
	case design.DirBidir, design.DirOutputEnable:
		return ModeInout
	case design.DirOutput:
		return ModeOutput
	case design.DirInput:
		return ModeInput
	}
	return ModeNone
}
