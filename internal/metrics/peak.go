package metrics

import "github.com/jwseo/fdtdlab/internal/fdtd"

// Peak records the largest absolute sample of one field component seen
// during a run.
type Peak struct {
	name string
	comp fdtd.Component
	max  float64
}

func NewPeak(c fdtd.Component) *Peak {
	return &Peak{name: "peak_" + c.String(), comp: c}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) OnStep(eng *fdtd.Engine) {
	if v := eng.MaxAbs(p.comp); v > p.max {
		p.max = v
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() { p.max = 0 }
