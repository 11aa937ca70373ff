package fdtd

import (
	"fmt"

	"github.com/jwseo/fdtdlab/internal/grid"
)

// Component identifies one of the six field components.
type Component int

const (
	Ex Component = iota
	Ey
	Ez
	Hx
	Hy
	Hz
)

var componentNames = [...]string{"ex", "ey", "ez", "hx", "hy", "hz"}

func (c Component) String() string {
	if c < Ex || c > Hz {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentNames[c]
}

// Electric reports whether c is an electric component.
func (c Component) Electric() bool { return c <= Ez }

// ParseComponent converts a lowercase component name ("ex".."hz").
func ParseComponent(s string) (Component, error) {
	for i, name := range componentNames {
		if name == s {
			return Component(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field component %q", s)
}

// UpdateRule advances one cell's field sample by one leapfrog half-step.
// The rule holds its bound index and whatever per-cell coefficients its
// material law needs. in1 and in2 are the two curl-partner arrays; d1 and
// d2 the matching cell widths.
type UpdateRule interface {
	Apply(self, in1, in2 *grid.Field, dt, d1, d2 float64)
}

// ZeroRule is the boundary stub: it never changes the field sample at its
// cell. Edge cells whose staggered neighbor reads would leave the array
// must carry one.
type ZeroRule struct{}

func (ZeroRule) Apply(self, in1, in2 *grid.Field, dt, d1, d2 float64) {}

// Material produces update rules bound to a cell, one factory method per
// field component.
type Material interface {
	Name() string
	RuleEx(idx grid.Index, co grid.Coord) UpdateRule
	RuleEy(idx grid.Index, co grid.Coord) UpdateRule
	RuleEz(idx grid.Index, co grid.Coord) UpdateRule
	RuleHx(idx grid.Index, co grid.Coord) UpdateRule
	RuleHy(idx grid.Index, co grid.Coord) UpdateRule
	RuleHz(idx grid.Index, co grid.Coord) UpdateRule
}

// Object is a geometric region bound to a material.
type Object interface {
	Material() Material
}

// Classifier maps a physical coordinate to the covering geometric object.
// A coordinate no object covers is a configuration error.
type Classifier interface {
	ObjectOfPoint(co grid.Coord) (Object, error)
}

// Source superimposes an excitation onto the material grid of each field
// component it drives. Attach methods run once, after the material grids
// are built and before the first step, in source registration order.
type Source interface {
	AttachEx(g *MaterialGrid, s *grid.Space) error
	AttachEy(g *MaterialGrid, s *grid.Space) error
	AttachEz(g *MaterialGrid, s *grid.Space) error
	AttachHx(g *MaterialGrid, s *grid.Space) error
	AttachHy(g *MaterialGrid, s *grid.Space) error
	AttachHz(g *MaterialGrid, s *grid.Space) error
}

// TimeStep is the engine clock: N counts half-steps in units of 0.5 and
// T = N*dt is the derived physical time. Electric and magnetic updates
// sit half a step apart; each phase advances N by exactly 0.5.
type TimeStep struct {
	N float64
	T float64
}

func (ts *TimeStep) advance(dt float64) {
	ts.N += 0.5
	ts.T = ts.N * dt
}
