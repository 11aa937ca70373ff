package material

import (
	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
)

// Dielectric is a lossless isotropic medium. The wave speed is normalized,
// so eps and mu are the relative permittivity and permeability.
type Dielectric struct {
	Eps float64
	Mu  float64
}

// NewDielectric builds a dielectric from a refractive index (eps = n*n,
// mu = 1).
func NewDielectric(index float64) *Dielectric {
	if index <= 0 {
		index = 1
	}
	return &Dielectric{Eps: index * index, Mu: 1}
}

func (d *Dielectric) Name() string { return "dielectric" }

func (d *Dielectric) RuleEx(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &dielectricEx{idx: idx, eps: d.Eps}
}

func (d *Dielectric) RuleEy(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &dielectricEy{idx: idx, eps: d.Eps}
}

func (d *Dielectric) RuleEz(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &dielectricEz{idx: idx, eps: d.Eps}
}

func (d *Dielectric) RuleHx(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &dielectricHx{idx: idx, mu: d.Mu}
}

func (d *Dielectric) RuleHy(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &dielectricHy{idx: idx, mu: d.Mu}
}

func (d *Dielectric) RuleHz(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &dielectricHz{idx: idx, mu: d.Mu}
}

// The neighbor offsets below realize the Yee curl stencil: electric
// samples sit half a cell into their own axis, magnetic samples half a
// cell into the two transverse axes, so the magnetic neighbors of an
// electric cell carry a +1 index shift and vice versa.

type dielectricEx struct {
	idx grid.Index
	eps float64
}

func (r *dielectricEx) Apply(ex, hz, hy *grid.Field, dt, dy, dz float64) {
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	ex.Add(i, j, k, dt/r.eps*((hz.At(i+1, j+1, k)-hz.At(i+1, j, k))/dy-
		(hy.At(i+1, j, k+1)-hy.At(i+1, j, k))/dz))
}

type dielectricEy struct {
	idx grid.Index
	eps float64
}

func (r *dielectricEy) Apply(ey, hx, hz *grid.Field, dt, dz, dx float64) {
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	ey.Add(i, j, k, dt/r.eps*((hx.At(i, j+1, k+1)-hx.At(i, j+1, k))/dz-
		(hz.At(i+1, j+1, k)-hz.At(i, j+1, k))/dx))
}

type dielectricEz struct {
	idx grid.Index
	eps float64
}

func (r *dielectricEz) Apply(ez, hy, hx *grid.Field, dt, dx, dy float64) {
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	ez.Add(i, j, k, dt/r.eps*((hy.At(i+1, j, k+1)-hy.At(i, j, k+1))/dx-
		(hx.At(i, j+1, k+1)-hx.At(i, j, k+1))/dy))
}

type dielectricHx struct {
	idx grid.Index
	mu  float64
}

func (r *dielectricHx) Apply(hx, ez, ey *grid.Field, dt, dy, dz float64) {
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	hx.Add(i, j, k, dt/r.mu*((ey.At(i, j-1, k)-ey.At(i, j-1, k-1))/dz-
		(ez.At(i, j, k-1)-ez.At(i, j-1, k-1))/dy))
}

type dielectricHy struct {
	idx grid.Index
	mu  float64
}

func (r *dielectricHy) Apply(hy, ex, ez *grid.Field, dt, dz, dx float64) {
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	hy.Add(i, j, k, dt/r.mu*((ez.At(i, j, k-1)-ez.At(i-1, j, k-1))/dx-
		(ex.At(i-1, j, k)-ex.At(i-1, j, k-1))/dz))
}

type dielectricHz struct {
	idx grid.Index
	mu  float64
}

func (r *dielectricHz) Apply(hz, ey, ex *grid.Field, dt, dx, dy float64) {
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	hz.Add(i, j, k, dt/r.mu*((ex.At(i-1, j, k)-ex.At(i-1, j-1, k))/dy-
		(ey.At(i, j-1, k)-ey.At(i-1, j-1, k))/dx))
}
