package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/efxbuild/internal/ctxlog"
	"github.com/vk/efxbuild/internal/design"
	"github.com/vk/efxbuild/internal/fsutil"
)

// Loader is the HCL implementation of the design.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL design loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ design.Loader = (*Loader)(nil)

// Load parses every .hcl file under the given paths and merges the
// discovered blocks into one design model. Resource and clock declaration
// order is preserved across files (files are visited in lexical order), and
// the design and device blocks may each appear exactly once.
func (l *Loader) Load(ctx context.Context, paths ...string) (*design.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl design files found in %v", paths)
	}
	logger.Debug("Discovered design files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &design.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		if err := l.mergeFile(model, &root, file); err != nil {
			return nil, err
		}
	}

	if model.Name == "" {
		return nil, fmt.Errorf("no design block found in %v", paths)
	}
	if model.Device == nil {
		return nil, fmt.Errorf("no device block found in %v", paths)
	}

	logger.Debug("HCL loading complete.",
		"design", model.Name,
		"resources", len(model.Bindings),
		"clocks", len(model.Clocks),
		"sources", len(model.Sources))
	return model, nil
}

// mergeFile translates one decoded file into the model.
func (l *Loader) mergeFile(model *design.Model, root *fileRoot, file string) error {
	if root.Design != nil {
		if model.Name != "" {
			return fmt.Errorf("duplicate design block in %s", file)
		}
		model.Name = root.Design.Name
		model.DefaultClock = root.Design.DefaultClock
		model.Sources = append(model.Sources, root.Design.Sources...)
	}
	if root.Device != nil {
		if model.Device != nil {
			return fmt.Errorf("duplicate device block in %s", file)
		}
		model.Device = &design.Device{
			Family:  root.Device.Family,
			Name:    root.Device.Name,
			Package: root.Device.Package,
			Speed:   root.Device.Speed,
		}
	}
	for _, res := range root.Resources {
		binding, err := l.translateResource(res)
		if err != nil {
			return fmt.Errorf("resource %q in %s: %w", res.Name, file, err)
		}
		model.Bindings = append(model.Bindings, binding)
	}
	for _, clk := range root.Clocks {
		if clk.Frequency <= 0 {
			return fmt.Errorf("clock %q in %s: frequency must be positive, got %v", clk.Net, file, clk.Frequency)
		}
		model.Clocks = append(model.Clocks, &design.ClockConstraint{
			Net:       clk.Net,
			Port:      clk.Port,
			Frequency: clk.Frequency,
		})
	}
	return nil
}

// findFiles expands the given paths into a deduplicated, ordered list of
// .hcl files. Directories are walked recursively; walk order is lexical and
// therefore stable.
func (l *Loader) findFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			files = append(files, path)
			seen[path] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}
