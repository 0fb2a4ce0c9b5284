package status

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Registry is the central metrics facade
// Components cache pointers during construction; frame code writes directly to atomics
// The render goroutine reads without coordinating with the loop
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Metric is a formatted key/value pair for display
type Metric struct {
	Key   string
	Value string
}

// Snapshot formats every metric, sorted by key
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Metric{k, fmt.Sprintf("%v", v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Metric{k, fmt.Sprintf("%d", v.Load())})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Metric{k, fmt.Sprintf("%.2f", v.Get())})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Metric{k, v.Load()})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
