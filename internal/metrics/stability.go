package metrics

import "github.com/jwseo/fdtdlab/internal/fdtd"

// Stability watches for numerical blowup. Value reports the step count
// at which the fields first went non-finite, or -1 if the run stayed
// healthy.
type Stability struct {
	name     string
	steps    int
	diverged int
}

func NewStability() *Stability {
	return &Stability{name: "stability", diverged: -1}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) OnStep(eng *fdtd.Engine) {
	s.steps++
	if s.diverged < 0 && !eng.Healthy() {
		s.diverged = s.steps
	}
}

func (s *Stability) Value() float64 { return float64(s.diverged) }

// Diverged reports whether a non-finite sample was ever seen.
func (s *Stability) Diverged() bool { return s.diverged >= 0 }

func (s *Stability) Reset() {
	s.steps = 0
	s.diverged = -1
}
