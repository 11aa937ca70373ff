package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// FFT computes the discrete Fourier transform of a real series whose
// length must be a power of two.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the single-sided amplitude spectrum of a real
// series. The input is Hann-windowed and zero-padded to the next power
// of two, so any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	padded := make([]float64, nextPow2(len(data)))
	copy(padded, data)
	window(padded[:len(data)])

	fft := FFT(padded)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// Frequencies returns the frequency of each bin of a spectrum computed
// from samples spaced dt apart.
func Frequencies(bins int, dt float64) []float64 {
	fs := make([]float64, bins)
	df := 1 / (2 * float64(bins) * dt)
	for i := range fs {
		fs[i] = float64(i) * df
	}
	return fs
}

// DominantFrequency locates the strongest spectral line of a series,
// skipping the zero-frequency bin.
func DominantFrequency(data []float64, dt float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}
	best := 1 + floats.MaxIdx(ps[1:])
	return Frequencies(len(ps), dt)[best]
}

// Transmittance is the bin-wise spectral ratio of a transmitted record
// to an incident one. Bins where the incident spectrum is negligible
// are reported as zero.
func Transmittance(incident, transmitted []float64) []float64 {
	in := PowerSpectrum(incident)
	out := PowerSpectrum(transmitted)
	n := len(in)
	if len(out) < n {
		n = len(out)
	}

	floor := 1e-12 * floats.Max(in)
	tr := make([]float64, n)
	for i := 0; i < n; i++ {
		if in[i] > floor {
			tr[i] = out[i] / in[i]
		}
	}
	return tr
}

func window(data []float64) {
	n := len(data)
	if n < 2 {
		return
	}
	for i := range data {
		data[i] *= 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
