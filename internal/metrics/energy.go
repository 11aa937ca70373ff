package metrics

import "github.com/jwseo/fdtdlab/internal/fdtd"

// Energy tracks the total squared field amplitude over the active
// components, a proxy for electromagnetic energy on a unit-parameter
// medium. Value reports the mean over the observed steps.
type Energy struct {
	name    string
	total   float64
	last    float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) OnStep(eng *fdtd.Engine) {
	sum := 0.0
	for _, c := range eng.Mode().Active() {
		sum += eng.SumSquares(c)
	}
	e.last = sum
	e.total += sum
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

// Last reports the energy at the most recent step.
func (e *Energy) Last() float64 { return e.last }

func (e *Energy) Reset() {
	e.total = 0
	e.last = 0
	e.samples = 0
}
