package grid

import (
	"fmt"
	"math"
)

// Index identifies a cell in one field component's array.
type Index [3]int

// Coord is a position in physical simulation space.
type Coord [3]float64

// Axis selects one of the three coordinate directions.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis converts "x", "y", or "z" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// Space is the uniform Cartesian discretization of the simulated volume.
// Electric components sample half a cell into their own axis, magnetic
// components half a cell into the two transverse axes, so each component
// carries its own index-to-coordinate map and array shape.
type Space struct {
	SizeX, SizeY, SizeZ float64
	Nx, Ny, Nz          int
	Dx, Dy, Dz          float64
	Dt                  float64
	Courant             float64
}

// DefaultCourant keeps dt inside the 3D stability limit with some margin.
const DefaultCourant = 0.99

// NewSpace builds a discretization of a volume of the given physical size
// with the given resolution in cells per unit length. The volume is
// centered on the origin. A zero extent collapses that axis to a single
// cell one spacing wide, which is how planar and linear runs are set up.
// The time step is derived from the Courant factor, with the wave speed
// normalized to one.
func NewSpace(sx, sy, sz, resolution, courant float64) (*Space, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("resolution must be positive, got %f", resolution)
	}
	if sx < 0 || sy < 0 || sz < 0 {
		return nil, fmt.Errorf("volume size must be non-negative, got (%f, %f, %f)", sx, sy, sz)
	}
	if courant <= 0 {
		courant = DefaultCourant
	}
	if courant >= 1 {
		return nil, fmt.Errorf("courant factor must be below 1, got %f", courant)
	}

	s := &Space{
		SizeX:   sx,
		SizeY:   sy,
		SizeZ:   sz,
		Nx:      cells(sx, resolution),
		Ny:      cells(sy, resolution),
		Nz:      cells(sz, resolution),
		Courant: courant,
	}
	s.Dx = spacing(sx, resolution, s.Nx)
	s.Dy = spacing(sy, resolution, s.Ny)
	s.Dz = spacing(sz, resolution, s.Nz)
	s.Dt = courant / math.Sqrt(1/(s.Dx*s.Dx)+1/(s.Dy*s.Dy)+1/(s.Dz*s.Dz))
	return s, nil
}

func cells(size, resolution float64) int {
	n := int(math.Round(size * resolution))
	if n < 1 {
		n = 1
	}
	return n
}

func spacing(size, resolution float64, n int) float64 {
	if size == 0 {
		return 1 / resolution
	}
	return size / float64(n)
}

// Array shapes per component. Electric arrays extend one sample past the
// volume along the transverse axes; those extra planes hold the boundary
// stub cells. Magnetic arrays carry the stub planes at index zero instead.

func (s *Space) ShapeEx() Index { return Index{s.Nx, s.Ny + 1, s.Nz + 1} }
func (s *Space) ShapeEy() Index { return Index{s.Nx + 1, s.Ny, s.Nz + 1} }
func (s *Space) ShapeEz() Index { return Index{s.Nx + 1, s.Ny + 1, s.Nz} }
func (s *Space) ShapeHx() Index { return Index{s.Nx + 1, s.Ny + 1, s.Nz + 1} }
func (s *Space) ShapeHy() Index { return Index{s.Nx + 1, s.Ny + 1, s.Nz + 1} }
func (s *Space) ShapeHz() Index { return Index{s.Nx + 1, s.Ny + 1, s.Nz + 1} }

func (s *Space) NewFieldEx() *Field { return NewField(s.ShapeEx()) }
func (s *Space) NewFieldEy() *Field { return NewField(s.ShapeEy()) }
func (s *Space) NewFieldEz() *Field { return NewField(s.ShapeEz()) }
func (s *Space) NewFieldHx() *Field { return NewField(s.ShapeHx()) }
func (s *Space) NewFieldHy() *Field { return NewField(s.ShapeHy()) }
func (s *Space) NewFieldHz() *Field { return NewField(s.ShapeHz()) }

// Stagger offsets in units of a cell, per component.
var (
	offEx = Coord{0.5, 0, 0}
	offEy = Coord{0, 0.5, 0}
	offEz = Coord{0, 0, 0.5}
	offHx = Coord{0, -0.5, -0.5}
	offHy = Coord{-0.5, 0, -0.5}
	offHz = Coord{-0.5, -0.5, 0}
)

func (s *Space) toSpace(idx Index, off Coord) Coord {
	return Coord{
		(float64(idx[0])+off[0])*s.Dx - s.SizeX/2,
		(float64(idx[1])+off[1])*s.Dy - s.SizeY/2,
		(float64(idx[2])+off[2])*s.Dz - s.SizeZ/2,
	}
}

func (s *Space) toIndex(co Coord, off Coord, shape Index) Index {
	idx := Index{
		int(math.Round((co[0]+s.SizeX/2)/s.Dx - off[0])),
		int(math.Round((co[1]+s.SizeY/2)/s.Dy - off[1])),
		int(math.Round((co[2]+s.SizeZ/2)/s.Dz - off[2])),
	}
	for d := 0; d < 3; d++ {
		if idx[d] < 0 {
			idx[d] = 0
		}
		if idx[d] > shape[d]-1 {
			idx[d] = shape[d] - 1
		}
	}
	return idx
}

func (s *Space) ExIndexToSpace(idx Index) Coord { return s.toSpace(idx, offEx) }
func (s *Space) EyIndexToSpace(idx Index) Coord { return s.toSpace(idx, offEy) }
func (s *Space) EzIndexToSpace(idx Index) Coord { return s.toSpace(idx, offEz) }
func (s *Space) HxIndexToSpace(idx Index) Coord { return s.toSpace(idx, offHx) }
func (s *Space) HyIndexToSpace(idx Index) Coord { return s.toSpace(idx, offHy) }
func (s *Space) HzIndexToSpace(idx Index) Coord { return s.toSpace(idx, offHz) }

func (s *Space) SpaceToExIndex(co Coord) Index { return s.toIndex(co, offEx, s.ShapeEx()) }
func (s *Space) SpaceToEyIndex(co Coord) Index { return s.toIndex(co, offEy, s.ShapeEy()) }
func (s *Space) SpaceToEzIndex(co Coord) Index { return s.toIndex(co, offEz, s.ShapeEz()) }
func (s *Space) SpaceToHxIndex(co Coord) Index { return s.toIndex(co, offHx, s.ShapeHx()) }
func (s *Space) SpaceToHyIndex(co Coord) Index { return s.toIndex(co, offHy, s.ShapeHy()) }
func (s *Space) SpaceToHzIndex(co Coord) Index { return s.toIndex(co, offHz, s.ShapeHz()) }

// Contains reports whether a physical coordinate lies inside the volume.
// A collapsed axis accepts coordinates within its single cell.
func (s *Space) Contains(co Coord) bool {
	return math.Abs(co[0]) <= s.half(s.SizeX, s.Dx) &&
		math.Abs(co[1]) <= s.half(s.SizeY, s.Dy) &&
		math.Abs(co[2]) <= s.half(s.SizeZ, s.Dz)
}

func (s *Space) half(size, d float64) float64 {
	if size == 0 {
		return d / 2
	}
	return size / 2
}

// Spacing returns the cell width along the given axis.
func (s *Space) Spacing(a Axis) float64 {
	switch a {
	case X:
		return s.Dx
	case Y:
		return s.Dy
	}
	return s.Dz
}
