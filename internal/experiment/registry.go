package experiment

import (
	"fmt"

	"github.com/jwseo/fdtdlab/internal/config"
	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
	"github.com/jwseo/fdtdlab/internal/material"
	"github.com/jwseo/fdtdlab/internal/source"
)

type materialFactory func(config.MaterialConfig, grid.Coord, grid.Coord) (fdtd.Material, error)
type waveformFactory func(config.SourceConfig) source.Waveform

// Registry maps config names to material and waveform constructors.
// Shape factories take the object's bounding corners because absorbing
// layers grade their conductivity against the volume they line.
type Registry struct {
	materials map[string]materialFactory
	waveforms map[string]waveformFactory
}

func NewRegistry() *Registry {
	r := &Registry{
		materials: make(map[string]materialFactory),
		waveforms: make(map[string]waveformFactory),
	}

	r.materials["dielectric"] = func(mc config.MaterialConfig, _, _ grid.Coord) (fdtd.Material, error) {
		if mc.Index > 0 {
			return material.NewDielectric(mc.Index), nil
		}
		eps, mu := mc.Eps, mc.Mu
		if eps == 0 {
			eps = 1
		}
		if mu == 0 {
			mu = 1
		}
		return &material.Dielectric{Eps: eps, Mu: mu}, nil
	}
	r.materials["zero"] = func(config.MaterialConfig, grid.Coord, grid.Coord) (fdtd.Material, error) {
		return material.NewZero(), nil
	}
	r.materials["drude"] = func(mc config.MaterialConfig, _, _ grid.Coord) (fdtd.Material, error) {
		if mc.OmegaP == 0 {
			return nil, fmt.Errorf("drude material needs omega_p")
		}
		epsInf := mc.EpsInf
		if epsInf == 0 {
			epsInf = 1
		}
		return material.NewDrude(epsInf, []float64{mc.OmegaP}, []float64{mc.GammaP}), nil
	}
	r.materials["upml"] = func(mc config.MaterialConfig, low, high grid.Coord) (fdtd.Material, error) {
		if mc.Thickness <= 0 {
			return nil, fmt.Errorf("upml material needs a positive thickness")
		}
		eps, mu := mc.Eps, mc.Mu
		if eps == 0 {
			eps = 1
		}
		if mu == 0 {
			mu = 1
		}
		return material.NewUPML(eps, mu, mc.Thickness, low, high), nil
	}

	r.waveforms["continuous"] = func(sc config.SourceConfig) source.Waveform {
		return source.Continuous{Freq: sc.Freq, Amp: sc.Amp, Phase: sc.Phase}
	}
	r.waveforms["gaussian"] = func(sc config.SourceConfig) source.Waveform {
		return source.NewGaussianPulse(sc.Freq, sc.Amp, sc.Width, sc.Delay)
	}
	r.waveforms["constant"] = func(sc config.SourceConfig) source.Waveform {
		return source.Constant{Level: sc.Amp}
	}
	r.waveforms["ramp"] = func(sc config.SourceConfig) source.Waveform {
		return source.Ramp{Amp: sc.Amp, Rise: sc.Width}
	}

	return r
}

func (r *Registry) Material(mc config.MaterialConfig, low, high grid.Coord) (fdtd.Material, error) {
	fn, ok := r.materials[mc.Type]
	if !ok {
		return nil, fmt.Errorf("unknown material: %s", mc.Type)
	}
	return fn(mc, low, high)
}

func (r *Registry) Waveform(sc config.SourceConfig) (source.Waveform, error) {
	fn, ok := r.waveforms[sc.Waveform]
	if !ok {
		return nil, fmt.Errorf("unknown waveform: %s", sc.Waveform)
	}
	return fn(sc), nil
}

func (r *Registry) ListMaterials() []string {
	names := make([]string, 0, len(r.materials))
	for name := range r.materials {
		names = append(names, name)
	}
	return names
}

func (r *Registry) ListWaveforms() []string {
	names := make([]string, 0, len(r.waveforms))
	for name := range r.waveforms {
		names = append(names, name)
	}
	return names
}
