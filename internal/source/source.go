// Package source provides excitation overlays for the material grid.
//
// A source never writes field storage directly: during injection it wraps
// the update rule at each cell it drives, so the excitation is
// superimposed on the material law every time that cell updates. Overlays
// compose; registration order decides who wraps whom.
package source

import (
	"fmt"

	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
)

// Point drives a single field component at one location.
type Point struct {
	Component fdtd.Component
	Pos       grid.Coord
	Waveform  Waveform

	// Hard sources overwrite the sample with the waveform value; soft
	// sources add the waveform as a current term on top of the material
	// update.
	Hard bool
}

func NewPoint(c fdtd.Component, pos grid.Coord, wf Waveform, hard bool) *Point {
	return &Point{Component: c, Pos: pos, Waveform: wf, Hard: hard}
}

func (p *Point) attach(c fdtd.Component, g *fdtd.MaterialGrid, s *grid.Space,
	toIndex func(*grid.Space, grid.Coord) grid.Index) error {
	if p.Component != c {
		return nil
	}
	if !s.Contains(p.Pos) {
		return fmt.Errorf("%w: source at (%g, %g, %g)",
			grid.ErrOutOfBounds, p.Pos[0], p.Pos[1], p.Pos[2])
	}
	idx := toIndex(s, p.Pos)
	base, err := g.RuleAt(idx)
	if err != nil {
		return err
	}
	return g.SetRule(idx, &excitation{
		idx:  idx,
		base: base,
		wf:   p.Waveform,
		hard: p.Hard,
	})
}

func (p *Point) AttachEx(g *fdtd.MaterialGrid, s *grid.Space) error {
	return p.attach(fdtd.Ex, g, s, (*grid.Space).SpaceToExIndex)
}

func (p *Point) AttachEy(g *fdtd.MaterialGrid, s *grid.Space) error {
	return p.attach(fdtd.Ey, g, s, (*grid.Space).SpaceToEyIndex)
}

func (p *Point) AttachEz(g *fdtd.MaterialGrid, s *grid.Space) error {
	return p.attach(fdtd.Ez, g, s, (*grid.Space).SpaceToEzIndex)
}

func (p *Point) AttachHx(g *fdtd.MaterialGrid, s *grid.Space) error {
	return p.attach(fdtd.Hx, g, s, (*grid.Space).SpaceToHxIndex)
}

func (p *Point) AttachHy(g *fdtd.MaterialGrid, s *grid.Space) error {
	return p.attach(fdtd.Hy, g, s, (*grid.Space).SpaceToHyIndex)
}

func (p *Point) AttachHz(g *fdtd.MaterialGrid, s *grid.Space) error {
	return p.attach(fdtd.Hz, g, s, (*grid.Space).SpaceToHzIndex)
}

// excitation composes a waveform over the rule the build pass (or an
// earlier source) bound to the cell. Rules run exactly once per phase, so
// the overlay keeps its own step count to recover the simulation time.
type excitation struct {
	idx  grid.Index
	base fdtd.UpdateRule
	wf   Waveform
	hard bool
	n    float64
}

func (r *excitation) Apply(self, in1, in2 *grid.Field, dt, d1, d2 float64) {
	r.base.Apply(self, in1, in2, dt, d1, d2)

	t := r.n * dt
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	if r.hard {
		self.Set(i, j, k, r.wf.Value(t))
	} else {
		self.Add(i, j, k, dt*r.wf.Value(t))
	}
	r.n++
}
