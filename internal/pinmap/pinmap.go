// Package pinmap resolves abstract connector pin references to package pin
// names. Board descriptions may bind resources either to package pins
// directly ("A3") or to a connector position ("pmod_0:3"); the latter form
// is looked up in a per-board YAML map so the same design description can
// move between boards that route a connector differently.
package pinmap

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Map holds the connector wiring of one board.
type Map struct {
	// Connectors maps a connector name to its position→package-pin table.
	Connectors map[string]map[string]string `yaml:"connectors"`
}

// Load reads a board pin map from a YAML file.
func Load(path string) (*Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pin map: %w", err)
	}
	var m Map
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing pin map %s: %w", path, err)
	}
	return &m, nil
}

// Resolve maps one pin token to a package pin name. Tokens of the form
// "connector:position" are looked up in the map; anything else is already a
// package pin name and passes through unchanged. A nil map resolves only
// pass-through tokens.
func (m *Map) Resolve(token string) (string, error) {
	connector, position, ok := strings.Cut(token, ":")
	if !ok {
		return token, nil
	}
	if m == nil {
		return "", fmt.Errorf("pin %q references a connector but no pin map is loaded", token)
	}
	pins, ok := m.Connectors[connector]
	if !ok {
		return "", fmt.Errorf("unknown connector %q in pin %q", connector, token)
	}
	pin, ok := pins[position]
	if !ok {
		return "", fmt.Errorf("connector %q has no position %q", connector, position)
	}
	return pin, nil
}

// ResolveAll resolves a list of pin tokens, preserving order.
func (m *Map) ResolveAll(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	pins := make([]string, 0, len(tokens))
	for _, token := range tokens {
		pin, err := m.Resolve(token)
		if err != nil {
			return nil, err
		}
		pins = append(pins, pin)
	}
	return pins, nil
}
