package material

import (
	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
)

// Drude is a dispersive metal described by one or more Drude poles. The
// electric rules integrate an auxiliary polarization current per pole
// alongside the field (auxiliary differential equation method); the
// magnetic rules are plain dielectric updates.
type Drude struct {
	EpsInf float64
	Mu     float64
	OmegaP []float64
	GammaP []float64
}

func NewDrude(epsInf float64, omegaP, gammaP []float64) *Drude {
	return &Drude{
		EpsInf: epsInf,
		Mu:     1,
		OmegaP: append([]float64(nil), omegaP...),
		GammaP: append([]float64(nil), gammaP...),
	}
}

func (d *Drude) Name() string { return "drude" }

func (d *Drude) electric(stencil curlFunc, idx grid.Index) fdtd.UpdateRule {
	return &drudeE{
		stencil: stencil,
		idx:     idx,
		epsInf:  d.EpsInf,
		omegaP:  d.OmegaP,
		gammaP:  d.GammaP,
		current: make([]float64, len(d.OmegaP)),
	}
}

func (d *Drude) RuleEx(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return d.electric(exStencil, idx)
}

func (d *Drude) RuleEy(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return d.electric(eyStencil, idx)
}

func (d *Drude) RuleEz(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return d.electric(ezStencil, idx)
}

func (d *Drude) RuleHx(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &dielectricHx{idx: idx, mu: d.Mu}
}

func (d *Drude) RuleHy(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &dielectricHy{idx: idx, mu: d.Mu}
}

func (d *Drude) RuleHz(idx grid.Index, co grid.Coord) fdtd.UpdateRule {
	return &dielectricHz{idx: idx, mu: d.Mu}
}

type drudeE struct {
	stencil curlFunc
	idx     grid.Index
	epsInf  float64
	omegaP  []float64
	gammaP  []float64
	current []float64
}

// Apply advances the pole currents half a step behind the field and uses
// their sum as a loss term in the standard Yee update.
func (r *drudeE) Apply(self, in1, in2 *grid.Field, dt, d1, d2 float64) {
	i, j, k := r.idx[0], r.idx[1], r.idx[2]
	e := self.At(i, j, k)

	var total float64
	for p := range r.current {
		alpha := (2 - r.gammaP[p]*dt) / (2 + r.gammaP[p]*dt)
		beta := 2 * r.omegaP[p] * r.omegaP[p] * dt / (2 + r.gammaP[p]*dt)
		r.current[p] = alpha*r.current[p] + beta*e
		total += r.current[p]
	}

	self.Set(i, j, k, e+dt/r.epsInf*(r.stencil(i, j, k, in1, in2, d1, d2)-total))
}
