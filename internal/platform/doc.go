// Package platform models the target device family's build capabilities:
// the tools it requires, how resource pins resolve to package pins, which
// source files participate in a build, and the default clock constraint.
// A Base implementation supplies the shared behavior; family types like
// Efinix override the narrow parts that differ.
package platform
