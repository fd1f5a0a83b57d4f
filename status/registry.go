package status

import (
	"strconv"
	"sync/atomic"
)

// Metric keys written by the machine system and read by the viewer and replay tools
const (
	KeyMachine   = "machine.number"
	KeyFrame     = "machine.frame"
	KeyFrameRate = "machine.frame_rate"
	KeyTime      = "machine.time"
	KeyResets    = "seek.resets"
	KeySteps     = "seek.steps"
	KeyReplays   = "seek.replays"
	KeyEvents    = "events.total"
	KeyLastEvent = "events.last"
	KeyRunning   = "viewer.running"
	KeyDebugDraw = "draw.physics"
)

// Registry is the metrics facade shared by the simulation loop and its observers
// Writers cache pointers once; reads are lock-free atomics
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

// Lines renders every metric as key=value, grouped by type and sorted by key
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, k+"="+v.String())
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, k+"="+strconv.FormatBool(v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, k+"="+v.Load())
	})
	return out
}
