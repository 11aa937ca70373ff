// Package analysis provides spectral analysis of probe time series.
//
//   - [FFT]: radix-2 fast Fourier transform
//   - [PowerSpectrum]: windowed amplitude spectrum of a real series
//   - [Frequencies]: frequency axis matching a spectrum
//   - [DominantFrequency]: location of the strongest spectral line
//   - [Transmittance]: spectral ratio between two probe records
//
// # Resonance Detection
//
// The spectrum of a probe behind a scatterer exposes its resonances:
//
//	ps := analysis.PowerSpectrum(res.Series[0])
//	f := analysis.DominantFrequency(res.Series[0], dt)
package analysis
