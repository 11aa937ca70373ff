package source

import (
	"fmt"

	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
)

// Line drives every cell of one component along a grid line through an
// anchor position, giving a uniform excitation along the chosen axis.
// In a 2D run a line source models a driven sheet.
type Line struct {
	Component fdtd.Component
	Pos       grid.Coord
	Axis      grid.Axis
	Waveform  Waveform
	Hard      bool
}

func NewLine(c fdtd.Component, pos grid.Coord, axis grid.Axis, wf Waveform, hard bool) *Line {
	return &Line{Component: c, Pos: pos, Axis: axis, Waveform: wf, Hard: hard}
}

func (l *Line) attach(c fdtd.Component, g *fdtd.MaterialGrid, s *grid.Space,
	toIndex func(*grid.Space, grid.Coord) grid.Index) error {
	if l.Component != c {
		return nil
	}
	if !s.Contains(l.Pos) {
		return fmt.Errorf("%w: line source through (%g, %g, %g)",
			grid.ErrOutOfBounds, l.Pos[0], l.Pos[1], l.Pos[2])
	}

	idx := toIndex(s, l.Pos)
	shape := g.Shape()
	a := int(l.Axis)
	for i := 0; i < shape[a]; i++ {
		idx[a] = i
		base, err := g.RuleAt(idx)
		if err != nil {
			return err
		}
		// Each cell advances its own clock, so overlays stay independent.
		if err := g.SetRule(idx, &excitation{
			idx:  idx,
			base: base,
			wf:   l.Waveform,
			hard: l.Hard,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (l *Line) AttachEx(g *fdtd.MaterialGrid, s *grid.Space) error {
	return l.attach(fdtd.Ex, g, s, (*grid.Space).SpaceToExIndex)
}

func (l *Line) AttachEy(g *fdtd.MaterialGrid, s *grid.Space) error {
	return l.attach(fdtd.Ey, g, s, (*grid.Space).SpaceToEyIndex)
}

func (l *Line) AttachEz(g *fdtd.MaterialGrid, s *grid.Space) error {
	return l.attach(fdtd.Ez, g, s, (*grid.Space).SpaceToEzIndex)
}

func (l *Line) AttachHx(g *fdtd.MaterialGrid, s *grid.Space) error {
	return l.attach(fdtd.Hx, g, s, (*grid.Space).SpaceToHxIndex)
}

func (l *Line) AttachHy(g *fdtd.MaterialGrid, s *grid.Space) error {
	return l.attach(fdtd.Hy, g, s, (*grid.Space).SpaceToHyIndex)
}

func (l *Line) AttachHz(g *fdtd.MaterialGrid, s *grid.Space) error {
	return l.attach(fdtd.Hz, g, s, (*grid.Space).SpaceToHzIndex)
}
