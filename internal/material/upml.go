package material

import (
	"math"

	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
)

// UPML is a uniaxial perfectly matched layer: an artificial absorbing
// medium graded into the outermost shell of the volume, terminating the
// lattice with near-zero reflection. Each rule integrates an auxiliary
// flux variable alongside the field sample (Gedney's formulation).
type UPML struct {
	Eps, Mu   float64
	Thickness float64
	Order     float64
	SigmaMax  float64
	Low, High grid.Coord
}

// Target reflection at normal incidence used when SigmaMax is zero.
const defaultReflection = 1e-16

// NewUPML builds an absorber of the given thickness measured inward from
// the volume faces at Low and High.
func NewUPML(eps, mu, thickness float64, low, high grid.Coord) *UPML {
	return &UPML{Eps: eps, Mu: mu, Thickness: thickness, Order: 3.5, Low: low, High: high}
}

func (u *UPML) Name() string { return "upml" }

// sigma returns the graded conductivity along one axis at coordinate x.
func (u *UPML) sigma(axis int, co grid.Coord) float64 {
	depth := math.Max(u.Low[axis]+u.Thickness-co[axis], co[axis]-(u.High[axis]-u.Thickness))
	if depth <= 0 {
		return 0
	}
	if depth > u.Thickness {
		depth = u.Thickness
	}
	max := u.SigmaMax
	if max == 0 {
		eta := math.Sqrt(u.Mu / u.Eps)
		max = -(u.Order + 1) * math.Log(defaultReflection) / (2 * eta * u.Thickness)
	}
	return max * math.Pow(depth/u.Thickness, u.Order)
}

// sigmas returns the conductivity triple cyclically ordered so the first
// entry is the component's own axis.
func (u *UPML) sigmas(axis int, co grid.Coord) [3]float64 {
	return [3]float64{
		u.sigma(axis, co),
		u.sigma((axis+1)%3, co),
		u.sigma((axis+2)%3, co),
	}
}

func (u *UPML) RuleEx(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &upmlE{stencil: exStencil, idx: idx, eps: u.Eps, sig: u.sigmas(0, co)}
}

func (u *UPML) RuleEy(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &upmlE{stencil: eyStencil, idx: idx, eps: u.Eps, sig: u.sigmas(1, co)}
}

func (u *UPML) RuleEz(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &upmlE{stencil: ezStencil, idx: idx, eps: u.Eps, sig: u.sigmas(2, co)}
}

func (u *UPML) RuleHx(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &upmlH{stencil: hxStencil, idx: idx, mu: u.Mu, sig: u.sigmas(0, co)}
}

func (u *UPML) RuleHy(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &upmlH{stencil: hyStencil, idx: idx, mu: u.Mu, sig: u.sigmas(1, co)}
}

func (u *UPML) RuleHz(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &upmlH{stencil: hzStencil, idx: idx, mu: u.Mu, sig: u.sigmas(2, co)}
}

// curlFunc evaluates the discrete curl term of one component's stencil.
type curlFunc func(i, j, k int, in1, in2 *grid.Field, d1, d2 float64) float64

// The stencils are the same Yee neighbor patterns the dielectric rules use.
var (
	exStencil curlFunc = func(i, j, k int, hz, hy *grid.Field, dy, dz float64) float64 {
		return (hz.At(i+1, j+1, k)-hz.At(i+1, j, k))/dy -
			(hy.At(i+1, j, k+1)-hy.At(i+1, j, k))/dz
	}
	eyStencil curlFunc = func(i, j, k int, hx, hz *grid.Field, dz, dx float64) float64 {
		return (hx.At(i, j+1, k+1)-hx.At(i, j+1, k))/dz -
			(hz.At(i+1, j+1, k)-hz.At(i, j+1, k))/dx
	}
	ezStencil curlFunc = func(i, j, k int, hy, hx *grid.Field, dx, dy float64) float64 {
		return (hy.At(i+1, j, k+1)-hy.At(i, j, k+1))/dx -
			(hx.At(i, j+1, k+1)-hx.At(i, j, k+1))/dy
	}
	hxStencil curlFunc = func(i, j, k int, ez, ey *grid.Field, dy, dz float64) float64 {
		return (ey.At(i, j-1, k)-ey.At(i, j-1, k-1))/dz -
			(ez.At(i, j, k-1)-ez.At(i, j-1, k-1))/dy
	}
	hyStencil curlFunc = func(i, j, k int, ex, ez *grid.Field, dz, dx float64) float64 {
		return (ez.At(i, j, k-1)-ez.At(i-1, j, k-1))/dx -
			(ex.At(i-1, j, k)-ex.At(i-1, j, k-1))/dz
	}
	hzStencil curlFunc = func(i, j, k int, ey, ex *grid.Field, dx, dy float64) float64 {
		return (ex.At(i-1, j, k)-ex.At(i-1, j-1, k))/dy -
			(ey.At(i, j-1, k)-ey.At(i-1, j-1, k))/dx
	}
)

// upmlCoef holds the six stretch coefficients; they depend on dt, so they
// are derived on first Apply.
type upmlCoef struct {
	c1, c2, c3, c4, c5, c6 float64
	ready                  bool
}

func (c *upmlCoef) derive(sig [3]float64, dt float64) {
	c.c1 = (2 - sig[1]*dt) / (2 + sig[1]*dt)
	c.c2 = 2 * dt / (2 + sig[1]*dt)
	c.c3 = (2 - sig[2]*dt) / (2 + sig[2]*dt)
	c.c4 = 1 / (2 + sig[2]*dt)
	c.c5 = 2 + sig[0]*dt
	c.c6 = 2 - sig[0]*dt
	c.ready = true
}

type upmlE struct {
	stencil curlFunc
	idx     grid.Index
	eps     float64
	sig     [3]float64
	coef    upmlCoef
	d       float64
}

func (r *upmlE) Apply(self, in1, in2 *grid.Field, dt, d1, d2 float64) {
	if !r.coef.ready {
		r.coef.derive(r.sig, dt)
	}
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	c := &r.coef

	dOld := r.d
	r.d = c.c1*r.d + c.c2*r.stencil(i, j, k, in1, in2, d1, d2)
	self.Set(i, j, k, c.c3*self.At(i, j, k)+c.c4*(c.c5*r.d-c.c6*dOld)/r.eps)
}

type upmlH struct {
	stencil curlFunc
	idx     grid.Index
	mu      float64
	sig     [3]float64
	coef    upmlCoef
	b       float64
}

func (r *upmlH) Apply(self, in1, in2 *grid.Field, dt, d1, d2 float64) {
	if !r.coef.ready {
		r.coef.derive(r.sig, dt)
	}
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	c := &r.coef

	bOld := r.b
	r.b = c.c1*r.b + c.c2*r.stencil(i, j, k, in1, in2, d1, d2)
	self.Set(i, j, k, c.c3*self.At(i, j, k)+c.c4*(c.c5*r.b-c.c6*bOld)/r.mu)
}
