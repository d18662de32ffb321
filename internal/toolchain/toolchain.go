// Package toolchain locates the Efinity installation and the executables
// and environments the build pipeline needs. All sub-tool paths derive from
// a single environment variable naming the installation root.
package toolchain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvHome is the environment variable naming the Efinity installation root.
const EnvHome = "EFINITY_HOME"

// ErrHomeNotSet reports that the toolchain root variable is absent.
var ErrHomeNotSet = errors.New(EnvHome + " is not set")

// Toolchain is a located Efinity installation.
type Toolchain struct {
	// Home is the installation root directory.
	Home string
}

// Discover reads the toolchain root from the environment and verifies it
// exists. It must succeed before any pipeline process is spawned.
func Discover() (*Toolchain, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		return nil, ErrHomeNotSet
	}
	info, err := os.Stat(home)
	if err != nil {
		return nil, fmt.Errorf("%s points at an unusable directory: %w", EnvHome, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %s", EnvHome, home)
	}
	return &Toolchain{Home: home}, nil
}

// Tool resolves a required tool name to an executable path under the
// installation's bin directory. A missing tool is a configuration error and
// must surface before the pipeline starts.
func (t *Toolchain) Tool(name string) (string, error) {
	path := filepath.Join(t.Home, "bin", name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("required tool %q not found under %s: %w", name, t.Home, err)
	}
	return path, nil
}

// Python locates the toolchain's bundled Python interpreter, which lives in
// a versioned directory directly under the installation root.
func (t *Toolchain) Python() (string, error) {
	home, err := t.pythonHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "bin", "python"), nil
}

func (t *Toolchain) pythonHome() (string, error) {
	matches, err := filepath.Glob(filepath.Join(t.Home, "python*"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no bundled python found under %s", t.Home)
	}
	return matches[0], nil
}

// envVar is one KEY=value override, kept ordered for stable output.
type envVar struct {
	key   string
	value string
}

// PlatformEnv builds the environment for the interface-designer platform
// tool: a copy of the current process environment with the Python and
// Efinity sub-tool homes overridden. The caller's own environment is never
// mutated.
func (t *Toolchain) PlatformEnv() ([]string, error) {
	pythonHome, err := t.pythonHome()
	if err != nil {
		return nil, err
	}
	overrides := []envVar{
		{"PYTHONHOME", pythonHome},
		{"EFXPT_HOME", filepath.Join(t.Home, "pt")},
		{"EFXPGM_HOME", filepath.Join(t.Home, "pgm")},
		{"EFXDBG_HOME", filepath.Join(t.Home, "debugger")},
	}
	return overrideEnv(os.Environ(), overrides), nil
}

// overrideEnv copies base and applies overrides, replacing existing entries
// in place and appending the rest in order.
func overrideEnv(base []string, overrides []envVar) []string {
	applied := make(map[string]bool, len(overrides))

	env := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		replaced := false
		for _, o := range overrides {
			if strings.HasPrefix(entry, o.key+"=") {
				env = append(env, o.key+"="+o.value)
				applied[o.key] = true
				replaced = true
				break
			}
		}
		if !replaced {
			env = append(env, entry)
		}
	}
	for _, o := range overrides {
		if !applied[o.key] {
			env = append(env, o.key+"="+o.value)
		}
	}
	return env
}
