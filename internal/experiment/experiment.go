// Package experiment assembles a runnable simulation from a declarative
// configuration and collects probe time series while it runs.
package experiment

import (
	"context"
	"fmt"

	"github.com/jwseo/fdtdlab/internal/config"
	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/geom"
	"github.com/jwseo/fdtdlab/internal/grid"
	"github.com/jwseo/fdtdlab/internal/source"
)

type probePoint struct {
	comp fdtd.Component
	idx  grid.Index
}

type Experiment struct {
	cfg    *config.Config
	engine *fdtd.Engine
	probes []probePoint
	labels []string
}

// Result holds the sampled clock and one value series per configured
// probe, in probe order.
type Result struct {
	Time   []float64
	Labels []string
	Series [][]float64
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup builds the space, geometry tree, sources and engine described by
// the configuration. It must run before Run.
func (e *Experiment) Setup() error {
	cfg := e.cfg
	reg := NewRegistry()

	mode, err := fdtd.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	space, err := grid.NewSpace(cfg.Size[0], cfg.Size[1], cfg.Size[2], cfg.Resolution, cfg.Courant)
	if err != nil {
		return err
	}

	medium, err := reg.Material(cfg.Medium, grid.Coord{}, grid.Coord{})
	if err != nil {
		return fmt.Errorf("medium: %w", err)
	}
	objects := []geom.Object{geom.NewDefaultMedium(medium)}
	for i, oc := range cfg.Objects {
		obj, err := reg.buildObject(oc)
		if err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
		objects = append(objects, obj)
	}

	sources := make([]fdtd.Source, 0, len(cfg.Sources))
	for i, sc := range cfg.Sources {
		comp, err := fdtd.ParseComponent(sc.Component)
		if err != nil {
			return fmt.Errorf("source %d: %w", i, err)
		}
		wf, err := reg.Waveform(sc)
		if err != nil {
			return fmt.Errorf("source %d: %w", i, err)
		}
		src, err := buildSource(sc, comp, wf)
		if err != nil {
			return fmt.Errorf("source %d: %w", i, err)
		}
		sources = append(sources, src)
	}

	engine, err := fdtd.New(space, geom.NewTree(objects), sources, mode)
	if err != nil {
		return err
	}
	e.engine = engine

	e.probes = e.probes[:0]
	e.labels = e.labels[:0]
	for i, pc := range cfg.Probes {
		comp, err := fdtd.ParseComponent(pc.Component)
		if err != nil {
			return fmt.Errorf("probe %d: %w", i, err)
		}
		e.probes = append(e.probes, probePoint{
			comp: comp,
			idx:  indexFor(space, comp, grid.Coord(pc.Pos)),
		})
		e.labels = append(e.labels, fmt.Sprintf("%s(%g,%g,%g)", comp, pc.Pos[0], pc.Pos[1], pc.Pos[2]))
	}
	return nil
}

// Run advances the engine for the configured number of steps, sampling
// every probe after each step. Extra observers run after sampling.
func (e *Experiment) Run(ctx context.Context, observers ...fdtd.Observer) (*Result, error) {
	if e.engine == nil {
		return nil, fmt.Errorf("experiment not set up")
	}

	res := &Result{
		Labels: append([]string(nil), e.labels...),
		Series: make([][]float64, len(e.probes)),
	}
	all := append([]fdtd.Observer{recorder{e, res}}, observers...)

	if err := e.engine.Run(ctx, e.cfg.Steps, all...); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Experiment) Engine() *fdtd.Engine { return e.engine }

type recorder struct {
	exp *Experiment
	res *Result
}

func (r recorder) OnStep(eng *fdtd.Engine) {
	r.res.Time = append(r.res.Time, eng.Clock().T)
	for i, p := range r.exp.probes {
		v, err := eng.Probe(p.comp, p.idx)
		if err != nil {
			v = 0
		}
		r.res.Series[i] = append(r.res.Series[i], v)
	}
}

func (r *Registry) buildObject(oc config.ObjectConfig) (geom.Object, error) {
	center := grid.Coord(oc.Center)
	low, high := objectBounds(oc)

	mat, err := r.Material(oc.Material, low, high)
	if err != nil {
		return nil, err
	}

	switch oc.Shape {
	case "box":
		return geom.NewBox(mat, low, high), nil
	case "sphere":
		if oc.Radius <= 0 {
			return nil, fmt.Errorf("sphere needs a positive radius")
		}
		return geom.NewSphere(mat, center, oc.Radius), nil
	case "cylinder":
		axis, err := grid.ParseAxis(oc.Axis)
		if err != nil {
			return nil, err
		}
		if oc.Radius <= 0 {
			return nil, fmt.Errorf("cylinder needs a positive radius")
		}
		return geom.NewCylinder(mat, center, axis, oc.Radius, oc.Height), nil
	default:
		return nil, fmt.Errorf("unknown shape: %s", oc.Shape)
	}
}

func buildSource(sc config.SourceConfig, comp fdtd.Component, wf source.Waveform) (fdtd.Source, error) {
	switch sc.Shape {
	case "", "point":
		return source.NewPoint(comp, grid.Coord(sc.Pos), wf, sc.Hard), nil
	case "line":
		axis, err := grid.ParseAxis(sc.Axis)
		if err != nil {
			return nil, err
		}
		return source.NewLine(comp, grid.Coord(sc.Pos), axis, wf, sc.Hard), nil
	default:
		return nil, fmt.Errorf("unknown source shape: %s", sc.Shape)
	}
}

func objectBounds(oc config.ObjectConfig) (grid.Coord, grid.Coord) {
	var low, high grid.Coord
	for a := 0; a < 3; a++ {
		half := oc.Size[a] / 2
		if oc.Shape != "box" {
			half = oc.Radius
		}
		low[a] = oc.Center[a] - half
		high[a] = oc.Center[a] + half
	}
	return low, high
}

func indexFor(s *grid.Space, c fdtd.Component, co grid.Coord) grid.Index {
	switch c {
	case fdtd.Ex:
		return s.SpaceToExIndex(co)
	case fdtd.Ey:
		return s.SpaceToEyIndex(co)
	case fdtd.Ez:
		return s.SpaceToEzIndex(co)
	case fdtd.Hx:
		return s.SpaceToHxIndex(co)
	case fdtd.Hy:
		return s.SpaceToHyIndex(co)
	default:
		return s.SpaceToHzIndex(co)
	}
}
