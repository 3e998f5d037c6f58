package interp

import (
	"sort"

	"github.com/RaresPSCR/ROScript/pkg/core/value"
)

// Namespace holds every variable of a run. Blocks share it; there is no
// shadowing.
type Namespace map[string]value.Value

// Get looks up a variable.
func (ns Namespace) Get(name string) (value.Value, bool) {
	v, ok := ns[name]
	return v, ok
}

// Set creates or overwrites a variable.
func (ns Namespace) Set(name string, v value.Value) {
	ns[name] = v
}

// Names returns the defined names in sorted order.
func (ns Namespace) Names() []string {
	names := make([]string, 0, len(ns))
	for name := range ns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
