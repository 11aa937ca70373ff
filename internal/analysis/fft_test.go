package analysis

import (
	"math"
	"testing"
)

func TestFFTImpulse(t *testing.T) {
	data := make([]float64, 16)
	data[0] = 1

	fft := FFT(data)
	for i, v := range fft {
		if math.Abs(real(v)-1) > 1e-12 || math.Abs(imag(v)) > 1e-12 {
			t.Errorf("bin %d: expected 1+0i, got %v", i, v)
		}
	}
}

func TestFFTLinearity(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	b := []float64{8, 7, 6, 5, 4, 3, 2, 1}

	sum := make([]float64, len(a))
	for i := range a {
		sum[i] = a[i] + b[i]
	}

	fa, fb, fs := FFT(a), FFT(b), FFT(sum)
	for i := range fs {
		diff := fs[i] - fa[i] - fb[i]
		if math.Abs(real(diff)) > 1e-9 || math.Abs(imag(diff)) > 1e-9 {
			t.Errorf("bin %d: linearity violated by %v", i, diff)
		}
	}
}

func TestDominantFrequency(t *testing.T) {
	const (
		dt   = 0.01
		freq = 5.0
	)
	data := make([]float64, 512)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	got := DominantFrequency(data, dt)
	if math.Abs(got-freq) > 0.5 {
		t.Errorf("expected dominant frequency near %f, got %f", freq, got)
	}
}

func TestPowerSpectrumAcceptsAnyLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 100, 255} {
		data := make([]float64, n)
		for i := range data {
			data[i] = float64(i % 7)
		}
		ps := PowerSpectrum(data)
		if len(ps) != nextPow2(n)/2 {
			t.Errorf("length %d: expected %d bins, got %d", n, nextPow2(n)/2, len(ps))
		}
	}
}

func TestTransmittanceIdentity(t *testing.T) {
	data := make([]float64, 128)
	for i := range data {
		data[i] = math.Sin(0.3 * float64(i))
	}

	tr := Transmittance(data, data)
	for i, v := range tr {
		if v != 0 && math.Abs(v-1) > 1e-9 {
			t.Errorf("bin %d: expected ratio 1, got %f", i, v)
		}
	}
}
