package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrOutOfBounds reports an access outside the simulated volume.
var ErrOutOfBounds = errors.New("grid: index outside field bounds")

// Field is one component's scalar samples, stored flat in row-major
// (x, y, z) order. Only the update rule bound to a cell writes it during
// stepping; readers take copies through Plane and Line.
type Field struct {
	shape Index
	data  []float64
}

func NewField(shape Index) *Field {
	return &Field{
		shape: shape,
		data:  make([]float64, shape[0]*shape[1]*shape[2]),
	}
}

func (f *Field) Shape() Index { return f.shape }
func (f *Field) Len() int     { return len(f.data) }

func (f *Field) flat(i, j, k int) int {
	return (i*f.shape[1]+j)*f.shape[2] + k
}

func (f *Field) At(i, j, k int) float64 {
	return f.data[f.flat(i, j, k)]
}

func (f *Field) Set(i, j, k int, v float64) {
	f.data[f.flat(i, j, k)] = v
}

func (f *Field) Add(i, j, k int, v float64) {
	f.data[f.flat(i, j, k)] += v
}

// Fill sets every sample to v.
func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// MaxAbs returns the largest absolute sample value.
func (f *Field) MaxAbs() float64 {
	if len(f.data) == 0 {
		return 0
	}
	return floats.Norm(f.data, math.Inf(1))
}

// SumSquares returns the sum of squared samples.
func (f *Field) SumSquares() float64 {
	return floats.Dot(f.data, f.data)
}

// IsValid reports whether every sample is finite.
func (f *Field) IsValid() bool {
	for _, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Plane copies out the 2-D cut of the field normal to the given axis at the
// given index. The first result dimension follows the lower remaining axis.
func (f *Field) Plane(a Axis, cut int) ([][]float64, error) {
	return f.PlaneInto(a, cut, nil)
}

// PlaneInto is Plane with a reusable destination; dst is filled in place
// when its dimensions match and reallocated otherwise.
func (f *Field) PlaneInto(a Axis, cut int, dst [][]float64) ([][]float64, error) {
	if cut < 0 || cut >= f.shape[int(a)] {
		return nil, fmt.Errorf("%w: %s=%d of %d", ErrOutOfBounds, a, cut, f.shape[int(a)])
	}
	var rows, cols int
	switch a {
	case X:
		rows, cols = f.shape[1], f.shape[2]
	case Y:
		rows, cols = f.shape[0], f.shape[2]
	default:
		rows, cols = f.shape[0], f.shape[1]
	}
	out := dst
	if len(out) != rows || (rows > 0 && len(out[0]) != cols) {
		out = make([][]float64, rows)
		for r := range out {
			out[r] = make([]float64, cols)
		}
	}
	for r := range out {
		for c := range out[r] {
			switch a {
			case X:
				out[r][c] = f.At(cut, r, c)
			case Y:
				out[r][c] = f.At(r, cut, c)
			default:
				out[r][c] = f.At(r, c, cut)
			}
		}
	}
	return out, nil
}

// Line copies out the samples along the given axis through (j, k), where
// j and k index the remaining two axes in order.
func (f *Field) Line(a Axis, j, k int) ([]float64, error) {
	var n int
	switch a {
	case X:
		n = f.shape[0]
		if j < 0 || j >= f.shape[1] || k < 0 || k >= f.shape[2] {
			return nil, fmt.Errorf("%w: line through (%d, %d)", ErrOutOfBounds, j, k)
		}
	case Y:
		n = f.shape[1]
		if j < 0 || j >= f.shape[0] || k < 0 || k >= f.shape[2] {
			return nil, fmt.Errorf("%w: line through (%d, %d)", ErrOutOfBounds, j, k)
		}
	default:
		n = f.shape[2]
		if j < 0 || j >= f.shape[0] || k < 0 || k >= f.shape[1] {
			return nil, fmt.Errorf("%w: line through (%d, %d)", ErrOutOfBounds, j, k)
		}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		switch a {
		case X:
			out[i] = f.At(i, j, k)
		case Y:
			out[i] = f.At(j, i, k)
		default:
			out[i] = f.At(j, k, i)
		}
	}
	return out, nil
}
