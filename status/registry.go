package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the metrics facade shared by the engine and collaborators
// Owners cache pointers at construction; the debug overlay reads through Lines
type Registry struct {
	Bools   *Table[atomic.Bool]
	Ints    *Table[atomic.Int64]
	Floats  *Table[AtomicFloat]
	Strings *Table[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewTable[atomic.Bool](),
		Ints:    NewTable[atomic.Int64](),
		Floats:  NewTable[AtomicFloat](),
		Strings: NewTable[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Lines formats every metric as "key value", strings first, then bools, ints and floats
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Each(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s %s", k, v.Load()))
	})
	r.Bools.Each(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s %t", k, v.Load()))
	})
	r.Ints.Each(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s %d", k, v.Load()))
	})
	r.Floats.Each(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s %.3f", k, v.Get()))
	})
	return lines
}
