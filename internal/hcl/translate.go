package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/efxbuild/internal/design"
)

// translateResource converts a decoded resource block into a Resource plus
// its port binding, applying the width and port-name defaults.
func (l *Loader) translateResource(block *resourceBlock) (*design.PortBinding, error) {
	width := block.Width
	if width == 0 {
		width = len(block.Pins)
	}
	if width != len(block.Pins) {
		return nil, fmt.Errorf("width %d does not match %d declared pins", width, len(block.Pins))
	}

	port := block.Port
	if port == "" {
		port = block.Name
	}

	attrs, err := l.translateAttributes(block)
	if err != nil {
		return nil, err
	}

	return &design.PortBinding{
		Resource: &design.Resource{
			Name:         block.Name,
			Direction:    design.Direction(block.Direction),
			Width:        width,
			IsClock:      block.Clock,
			Differential: block.Differential,
		},
		Port:  port,
		Pins:  block.Pins,
		Attrs: attrs,
	}, nil
}

// translateAttributes evaluates the attributes object expression and
// flattens every value to the string form the constraint schema carries.
func (l *Loader) translateAttributes(block *resourceBlock) (map[string]string, error) {
	if block.Attributes == nil {
		return nil, nil
	}
	val, diags := block.Attributes.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating attributes: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("attributes must be an object, got %s", val.Type().FriendlyName())
	}

	attrs := make(map[string]string, val.LengthInt())
	for name, v := range val.AsValueMap() {
		s, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		if s.IsNull() {
			return nil, fmt.Errorf("attribute %q is null", name)
		}
		attrs[name] = s.AsString()
	}
	return attrs, nil
}
