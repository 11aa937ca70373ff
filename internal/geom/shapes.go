// Package geom provides the geometric object list and the point
// classifier the engine uses to map cells to materials.
//
// Objects are tested in reverse registration order, so later objects
// shadow earlier ones; a [DefaultMedium] first in the list backs the whole
// volume. Lookup goes through a bounding-box tree so large object lists
// stay cheap to query per cell.
package geom

import (
	"math"

	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
)

// Object is a material-bound region of space.
type Object interface {
	Material() fdtd.Material
	Contains(co grid.Coord) bool
	Bounds() (low, high grid.Coord)
}

// DefaultMedium covers all of space; it supplies the background material.
type DefaultMedium struct {
	mat fdtd.Material
}

func NewDefaultMedium(mat fdtd.Material) *DefaultMedium {
	return &DefaultMedium{mat: mat}
}

func (d *DefaultMedium) Material() fdtd.Material      { return d.mat }
func (d *DefaultMedium) Contains(co grid.Coord) bool { return true }

func (d *DefaultMedium) Bounds() (grid.Coord, grid.Coord) {
	inf := math.Inf(1)
	return grid.Coord{-inf, -inf, -inf}, grid.Coord{inf, inf, inf}
}

// Box is an axis-aligned rectangular region.
type Box struct {
	mat       fdtd.Material
	Low, High grid.Coord
}

func NewBox(mat fdtd.Material, low, high grid.Coord) *Box {
	for d := 0; d < 3; d++ {
		if low[d] > high[d] {
			low[d], high[d] = high[d], low[d]
		}
	}
	return &Box{mat: mat, Low: low, High: high}
}

func (b *Box) Material() fdtd.Material { return b.mat }

func (b *Box) Contains(co grid.Coord) bool {
	for d := 0; d < 3; d++ {
		if co[d] < b.Low[d] || co[d] > b.High[d] {
			return false
		}
	}
	return true
}

func (b *Box) Bounds() (grid.Coord, grid.Coord) { return b.Low, b.High }

// Sphere is a ball around a center point.
type Sphere struct {
	mat    fdtd.Material
	Center grid.Coord
	Radius float64
}

func NewSphere(mat fdtd.Material, center grid.Coord, radius float64) *Sphere {
	return &Sphere{mat: mat, Center: center, Radius: math.Abs(radius)}
}

func (s *Sphere) Material() fdtd.Material { return s.mat }

func (s *Sphere) Contains(co grid.Coord) bool {
	dx := co[0] - s.Center[0]
	dy := co[1] - s.Center[1]
	dz := co[2] - s.Center[2]
	return dx*dx+dy*dy+dz*dz <= s.Radius*s.Radius
}

func (s *Sphere) Bounds() (grid.Coord, grid.Coord) {
	return grid.Coord{s.Center[0] - s.Radius, s.Center[1] - s.Radius, s.Center[2] - s.Radius},
		grid.Coord{s.Center[0] + s.Radius, s.Center[1] + s.Radius, s.Center[2] + s.Radius}
}

// Cylinder is a finite circular cylinder along one coordinate axis. An
// infinite radius turns it into a slab normal to the axis, which is how
// layered structures are usually described.
type Cylinder struct {
	mat    fdtd.Material
	Center grid.Coord
	Axis   grid.Axis
	Radius float64
	Height float64
}

func NewCylinder(mat fdtd.Material, center grid.Coord, axis grid.Axis, radius, height float64) *Cylinder {
	return &Cylinder{mat: mat, Center: center, Axis: axis, Radius: math.Abs(radius), Height: math.Abs(height)}
}

func (c *Cylinder) Material() fdtd.Material { return c.mat }

func (c *Cylinder) Contains(co grid.Coord) bool {
	a := int(c.Axis)
	if math.Abs(co[a]-c.Center[a]) > c.Height/2 {
		return false
	}
	if math.IsInf(c.Radius, 1) {
		return true
	}
	u, v := (a+1)%3, (a+2)%3
	du := co[u] - c.Center[u]
	dv := co[v] - c.Center[v]
	return du*du+dv*dv <= c.Radius*c.Radius
}

func (c *Cylinder) Bounds() (grid.Coord, grid.Coord) {
	var low, high grid.Coord
	a := int(c.Axis)
	for d := 0; d < 3; d++ {
		if d == a {
			low[d] = c.Center[d] - c.Height/2
			high[d] = c.Center[d] + c.Height/2
		} else {
			low[d] = c.Center[d] - c.Radius
			high[d] = c.Center[d] + c.Radius
		}
	}
	return low, high
}
