package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// timeUnitConversion converts a clock frequency in Hz into the period value
// the SDC file expects.
const timeUnitConversion = 100000000

// asciiEscape rewrites a signal name so it survives the toolchain's
// identifier rules: every character outside [A-Za-z0-9_] is replaced with
// its hex code wrapped in underscores.
func asciiEscape(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
			b.WriteRune(c)
		default:
			fmt.Fprintf(&b, "_%02x_", c)
		}
	}
	return b.String()
}

// clockPeriod renders the SDC period for a clock frequency in Hz.
func clockPeriod(frequency float64) string {
	return strconv.FormatFloat(timeUnitConversion/frequency, 'g', -1, 64)
}

// Attr is one rendered key="value" attribute.
type Attr struct {
	Key   string
	Value string
}

// sortedAttrs flattens an attribute bucket into a deterministically ordered
// list. Go map iteration order is random; constraint files must diff
// cleanly between runs.
func sortedAttrs(m map[string]string) []Attr {
	attrs := make([]Attr, 0, len(m))
	for k, v := range m {
		attrs = append(attrs, Attr{Key: k, Value: v})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
	return attrs
}
