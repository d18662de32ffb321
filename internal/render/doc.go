// Package render serializes the enumerated constraint records, clock
// constraints and file manifests into the text artifacts the Efinity
// toolchain consumes: the project descriptor, the peripheral (pin)
// constraint file, the timing constraint file, the wrapped generated HDL,
// and the environment-bridging helper for the platform tool.
//
// Every artifact is rendered into memory first and only written to disk on
// success; a template failure aborts that artifact rather than leaving a
// truncated file for the toolchain to choke on.
package render
