// Package app contains the core build orchestration. It defines the App
// struct, its configuration, and the build lifecycle: load the design
// model, enumerate pin constraints, write the toolchain artifacts, and
// drive the external tool pipeline. It is decoupled from any specific
// entrypoint like a CLI.
package app
