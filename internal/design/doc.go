// Package design defines the format-agnostic model of a hardware design's
// build request: the target device, the top-level I/O resources and their
// physical pin bindings, clock constraints, and the design source file list.
// Loaders (e.g. the HCL loader) translate their on-disk formats into this
// model; everything downstream of loading consumes only these types.
package design
