package design

import "context"

// Loader is the interface for a format-specific design description loader.
type Loader interface {
	// Load reads a design description from the given paths and translates it
	// into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
