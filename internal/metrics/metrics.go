// Package metrics provides run diagnostics that sample the engine after
// every step.
package metrics

import "github.com/jwseo/fdtdlab/internal/fdtd"

// Metric accumulates a scalar diagnostic over a run. Every Metric is an
// engine observer, so it can be passed straight to the stepping loop.
type Metric interface {
	Name() string
	OnStep(*fdtd.Engine)
	Value() float64
	Reset()
}

// Observers adapts a metric list for the engine's variadic observer
// argument.
func Observers(ms []Metric) []fdtd.Observer {
	obs := make([]fdtd.Observer, len(ms))
	for i, m := range ms {
		obs[i] = m
	}
	return obs
}
