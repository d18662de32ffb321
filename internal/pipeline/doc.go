// Package pipeline models the external Efinity tool sequence as an explicit
// ordered list of step descriptors executed by a single driver loop:
// map/synthesis, constraint conversion, place-and-route, and bitstream
// generation. Steps run strictly sequentially, the loop halts on the first
// failure, and there is no partial resume; re-running restarts from the
// first step against the same generated artifacts. Process invocation sits
// behind the Runner interface so tests can drive the loop without spawning
// anything.
package pipeline
