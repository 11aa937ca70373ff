package fdtd

import (
	"context"
	"fmt"
	"sync"

	"github.com/jwseo/fdtdlab/internal/grid"
)

// componentSpec is the per-component wiring of the Yee scheme: curl
// partners, cell-width pairing, stagger-aware coordinate map, boundary
// predicate, and the material and source dispatch for that component.
type componentSpec struct {
	in1, in2 Component
	d1, d2   grid.Axis
	newField func(*grid.Space) *grid.Field
	toSpace  func(*grid.Space, grid.Index) grid.Coord
	rule     func(Material, grid.Index, grid.Coord) UpdateRule
	attach   func(Source, *MaterialGrid, *grid.Space) error
	boundary func(idx, shape grid.Index) bool
}

// The electric components sit on the upper staggered edge of their
// transverse axes, the magnetic ones on the lower, so the stub planes
// mirror between the two families.
var specs = [6]componentSpec{
	Ex: {
		in1: Hz, in2: Hy, d1: grid.Y, d2: grid.Z,
		newField: (*grid.Space).NewFieldEx,
		toSpace:  (*grid.Space).ExIndexToSpace,
		rule:     Material.RuleEx,
		attach:   Source.AttachEx,
		boundary: func(idx, shape grid.Index) bool {
			return idx[1] == shape[1]-1 || idx[2] == shape[2]-1
		},
	},
	Ey: {
		in1: Hx, in2: Hz, d1: grid.Z, d2: grid.X,
		newField: (*grid.Space).NewFieldEy,
		toSpace:  (*grid.Space).EyIndexToSpace,
		rule:     Material.RuleEy,
		attach:   Source.AttachEy,
		boundary: func(idx, shape grid.Index) bool {
			return idx[2] == shape[2]-1 || idx[0] == shape[0]-1
		},
	},
	Ez: {
		in1: Hy, in2: Hx, d1: grid.X, d2: grid.Y,
		newField: (*grid.Space).NewFieldEz,
		toSpace:  (*grid.Space).EzIndexToSpace,
		rule:     Material.RuleEz,
		attach:   Source.AttachEz,
		boundary: func(idx, shape grid.Index) bool {
			return idx[0] == shape[0]-1 || idx[1] == shape[1]-1
		},
	},
	Hx: {
		in1: Ez, in2: Ey, d1: grid.Y, d2: grid.Z,
		newField: (*grid.Space).NewFieldHx,
		toSpace:  (*grid.Space).HxIndexToSpace,
		rule:     Material.RuleHx,
		attach:   Source.AttachHx,
		boundary: func(idx, shape grid.Index) bool {
			return idx[1] == 0 || idx[2] == 0
		},
	},
	Hy: {
		in1: Ex, in2: Ez, d1: grid.Z, d2: grid.X,
		newField: (*grid.Space).NewFieldHy,
		toSpace:  (*grid.Space).HyIndexToSpace,
		rule:     Material.RuleHy,
		attach:   Source.AttachHy,
		boundary: func(idx, shape grid.Index) bool {
			return idx[2] == 0 || idx[0] == 0
		},
	},
	Hz: {
		in1: Ey, in2: Ex, d1: grid.X, d2: grid.Y,
		newField: (*grid.Space).NewFieldHz,
		toSpace:  (*grid.Space).HzIndexToSpace,
		rule:     Material.RuleHz,
		attach:   Source.AttachHz,
		boundary: func(idx, shape grid.Index) bool {
			return idx[0] == 0 || idx[1] == 0
		},
	},
}

// Observer is notified after each full step (two phases).
type Observer interface {
	OnStep(e *Engine)
}

// Engine owns the six field arrays and six material grids and runs the
// leapfrog protocol: E-phase, advance half a step, H-phase, advance again.
// All six field arrays are allocated regardless of mode, because active
// components read their inactive curl partners; material grids are built
// only for active components.
type Engine struct {
	space   *grid.Space
	mode    Mode
	geom    Classifier
	sources []Source

	fields [6]*grid.Field
	mats   [6]*MaterialGrid
	locks  [6]sync.Mutex

	clock   TimeStep
	clockMu sync.Mutex
}

// New builds an engine: allocates storage, runs the parallel classification
// pass over the active components, then applies source overlays in
// registration order. Any classification or injection failure aborts
// construction; no partially built engine is returned.
func New(space *grid.Space, geom Classifier, sources []Source, mode Mode) (*Engine, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if geom == nil {
		return nil, ErrNilClassifier
	}
	if len(mode.E) == 0 || len(mode.H) == 0 {
		return nil, fmt.Errorf("%w: empty component set", ErrUnknownMode)
	}

	e := &Engine{
		space:   space,
		mode:    mode,
		geom:    geom,
		sources: append([]Source(nil), sources...),
	}
	for c := Ex; c <= Hz; c++ {
		e.fields[c] = specs[c].newField(space)
	}

	if err := e.buildMaterials(); err != nil {
		return nil, err
	}
	if err := e.injectSources(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) buildMaterials() error {
	tasks := make([]func() error, 0, 6)
	for _, c := range e.mode.Active() {
		c := c
		tasks = append(tasks, func() error { return e.buildComponent(c) })
	}
	return runAll(tasks)
}

// buildComponent classifies every cell of one component exactly once.
// Cells on the component's stub planes get the no-op boundary rule; the
// rest are classified by physical coordinate.
func (e *Engine) buildComponent(c Component) error {
	e.locks[c].Lock()
	defer e.locks[c].Unlock()

	sp := &specs[c]
	shape := e.fields[c].Shape()
	g := NewMaterialGrid(c, shape)
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				idx := grid.Index{i, j, k}
				if sp.boundary(idx, shape) {
					g.set(i, j, k, ZeroRule{})
					continue
				}
				co := sp.toSpace(e.space, idx)
				obj, err := e.geom.ObjectOfPoint(co)
				if err != nil {
					return &BuildError{Component: c, Coord: co, Wrapped: err}
				}
				g.set(i, j, k, sp.rule(obj.Material(), idx, co))
			}
		}
	}
	e.mats[c] = g
	return nil
}

func (e *Engine) injectSources() error {
	tasks := make([]func() error, 0, 6)
	for _, c := range e.mode.Active() {
		c := c
		tasks = append(tasks, func() error { return e.injectComponent(c) })
	}
	return runAll(tasks)
}

// injectComponent applies every source overlay to one component's material
// grid, in registration order. Overlays need not commute, so the order is
// part of the contract.
func (e *Engine) injectComponent(c Component) error {
	e.locks[c].Lock()
	defer e.locks[c].Unlock()

	for n, src := range e.sources {
		if err := specs[c].attach(src, e.mats[c], e.space); err != nil {
			return fmt.Errorf("injecting source %d into %s: %w", n, c, err)
		}
	}
	return nil
}

// Step advances the simulation one full time step: the electric phase
// reads the magnetic fields of half a step ago, then the magnetic phase
// reads the just-updated electric fields. Each phase fans out across its
// components and joins before the clock advances. Cancellation is honored
// between phases only, so the state is always consistently phased.
func (e *Engine) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.phase(e.mode.E)
	e.advance()

	if err := ctx.Err(); err != nil {
		return err
	}
	e.phase(e.mode.H)
	e.advance()
	return nil
}

// Run steps the engine n times, notifying observers after each full step.
func (e *Engine) Run(ctx context.Context, n int, observers ...Observer) error {
	for i := 0; i < n; i++ {
		if err := e.Step(ctx); err != nil {
			return err
		}
		for _, obs := range observers {
			obs.OnStep(e)
		}
	}
	return nil
}

func (e *Engine) phase(comps []Component) {
	tasks := make([]func() error, 0, len(comps))
	for _, c := range comps {
		c := c
		tasks = append(tasks, func() error {
			e.updateComponent(c)
			return nil
		})
	}
	// Field updates are pure numeric transforms; runAll's error path is
	// unused here.
	_ = runAll(tasks)
}

func (e *Engine) updateComponent(c Component) {
	e.locks[c].Lock()
	defer e.locks[c].Unlock()

	sp := &specs[c]
	e.mats[c].update(e.fields[c], e.fields[sp.in1], e.fields[sp.in2],
		e.space.Dt, e.space.Spacing(sp.d1), e.space.Spacing(sp.d2))
}

func (e *Engine) advance() {
	e.clockMu.Lock()
	e.clock.advance(e.space.Dt)
	e.clockMu.Unlock()
}

// Clock returns the current half-step counter and derived time.
func (e *Engine) Clock() TimeStep {
	e.clockMu.Lock()
	defer e.clockMu.Unlock()
	return e.clock
}

func (e *Engine) Space() *grid.Space { return e.space }
func (e *Engine) Mode() Mode         { return e.mode }

// Plane copies out a 2-D cut of one component's field, safe to call while
// stepping continues.
func (e *Engine) Plane(c Component, a grid.Axis, cut int) ([][]float64, error) {
	e.locks[c].Lock()
	defer e.locks[c].Unlock()
	return e.fields[c].Plane(a, cut)
}

// PlaneInto is Plane with a reusable destination buffer; dst is used when
// its dimensions match and reallocated otherwise.
func (e *Engine) PlaneInto(c Component, a grid.Axis, cut int, dst [][]float64) ([][]float64, error) {
	e.locks[c].Lock()
	defer e.locks[c].Unlock()
	return e.fields[c].PlaneInto(a, cut, dst)
}

// Line copies out the samples along an axis through the two remaining
// indices.
func (e *Engine) Line(c Component, a grid.Axis, j, k int) ([]float64, error) {
	e.locks[c].Lock()
	defer e.locks[c].Unlock()
	return e.fields[c].Line(a, j, k)
}

// Probe reads a single field sample.
func (e *Engine) Probe(c Component, idx grid.Index) (float64, error) {
	shape := e.fields[c].Shape()
	for d := 0; d < 3; d++ {
		if idx[d] < 0 || idx[d] >= shape[d] {
			return 0, fmt.Errorf("%w: probe %s%v of %v", grid.ErrOutOfBounds, c, idx, shape)
		}
	}
	e.locks[c].Lock()
	defer e.locks[c].Unlock()
	return e.fields[c].At(idx[0], idx[1], idx[2]), nil
}

// Excite pokes a field sample directly, bypassing the material grid. The
// component must be active in the engine's mode.
func (e *Engine) Excite(c Component, idx grid.Index, v float64) error {
	if !e.mode.active(c) {
		return fmt.Errorf("%w: %s in mode %s", ErrInactiveComponent, c, e.mode.Name)
	}
	shape := e.fields[c].Shape()
	for d := 0; d < 3; d++ {
		if idx[d] < 0 || idx[d] >= shape[d] {
			return fmt.Errorf("%w: excite %s%v of %v", grid.ErrOutOfBounds, c, idx, shape)
		}
	}
	e.locks[c].Lock()
	defer e.locks[c].Unlock()
	e.fields[c].Set(idx[0], idx[1], idx[2], v)
	return nil
}

// MaxAbs returns the largest absolute sample of one component.
func (e *Engine) MaxAbs(c Component) float64 {
	e.locks[c].Lock()
	defer e.locks[c].Unlock()
	return e.fields[c].MaxAbs()
}

// SumSquares returns the sum of squared samples of one component.
func (e *Engine) SumSquares(c Component) float64 {
	e.locks[c].Lock()
	defer e.locks[c].Unlock()
	return e.fields[c].SumSquares()
}

// Healthy reports whether every active field array is free of NaN and Inf.
func (e *Engine) Healthy() bool {
	for _, c := range e.mode.Active() {
		e.locks[c].Lock()
		ok := e.fields[c].IsValid()
		e.locks[c].Unlock()
		if !ok {
			return false
		}
	}
	return true
}

// MaterialGridFor exposes one component's material grid for inspection.
// It is nil for components the mode does not simulate.
func (e *Engine) MaterialGridFor(c Component) *MaterialGrid {
	return e.mats[c]
}
