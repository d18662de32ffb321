// Package hcl provides the HCL implementation of the design.Loader
// interface. It parses board/design description files, decodes their
// blocks into schema structs, and translates those into the format-agnostic
// design model, converting attribute expressions into the plain string
// values the constraint schema carries.
package hcl
