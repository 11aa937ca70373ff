package source

import "math"

// Waveform is a scalar time profile sampled once per update of the cell
// it drives.
type Waveform interface {
	Value(t float64) float64
}

// Constant holds a fixed drive level. Mostly useful for hard sources and
// for seeding deterministic test fields.
type Constant struct {
	Level float64
}

func (c Constant) Value(float64) float64 { return c.Level }

// Continuous is a single-frequency sinusoid.
type Continuous struct {
	Freq  float64
	Amp   float64
	Phase float64
}

func NewContinuous(freq, amp float64) Continuous {
	return Continuous{Freq: freq, Amp: amp}
}

func (c Continuous) Value(t float64) float64 {
	return c.Amp * math.Sin(2*math.Pi*c.Freq*t+c.Phase)
}

// GaussianPulse is a carrier sinusoid under a Gaussian envelope. With
// Freq zero it degenerates to a plain Gaussian.
type GaussianPulse struct {
	Freq  float64
	Amp   float64
	Width float64
	Delay float64
}

func NewGaussianPulse(freq, amp, width, delay float64) GaussianPulse {
	return GaussianPulse{Freq: freq, Amp: amp, Width: width, Delay: delay}
}

func (g GaussianPulse) Value(t float64) float64 {
	u := (t - g.Delay) / g.Width
	env := g.Amp * math.Exp(-u*u)
	if g.Freq == 0 {
		return env
	}
	return env * math.Sin(2*math.Pi*g.Freq*(t-g.Delay))
}

// Ramp rises linearly from zero and saturates at Amp after Rise seconds.
// A zero Rise is a unit step.
type Ramp struct {
	Amp  float64
	Rise float64
}

func (r Ramp) Value(t float64) float64 {
	if r.Rise <= 0 || t >= r.Rise {
		return r.Amp
	}
	if t < 0 {
		return 0
	}
	return r.Amp * t / r.Rise
}
