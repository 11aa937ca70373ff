package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/geom"
	"github.com/jwseo/fdtdlab/internal/grid"
	"github.com/jwseo/fdtdlab/internal/material"
)

func testEngine(t *testing.T) *fdtd.Engine {
	t.Helper()
	s, err := grid.NewSpace(1, 1, 0, 8, 0.5)
	if err != nil {
		t.Fatalf("new space failed: %v", err)
	}
	tree := geom.NewTree([]geom.Object{geom.NewDefaultMedium(material.NewDielectric(1))})
	e, err := fdtd.New(s, tree, nil, fdtd.TMz)
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	return e
}

func TestEnergyTracksSquaredAmplitude(t *testing.T) {
	e := testEngine(t)
	if err := e.Excite(fdtd.Ez, grid.Index{4, 4, 0}, 2); err != nil {
		t.Fatalf("excite failed: %v", err)
	}

	m := NewEnergy()
	m.OnStep(e)

	// Only the seeded sample contributes.
	if got := m.Last(); math.Abs(got-4) > 1e-12 {
		t.Errorf("expected energy 4, got %g", got)
	}

	m.OnStep(e)
	if got := m.Value(); math.Abs(got-4) > 1e-12 {
		t.Errorf("expected mean energy 4, got %g", got)
	}

	m.Reset()
	if m.Value() != 0 || m.Last() != 0 {
		t.Error("expected zeroed metric after reset")
	}
}

func TestPeakKeepsMaximum(t *testing.T) {
	e := testEngine(t)
	m := NewPeak(fdtd.Ez)
	if m.Name() != "peak_ez" {
		t.Errorf("unexpected name %q", m.Name())
	}

	if err := e.Excite(fdtd.Ez, grid.Index{4, 4, 0}, -3); err != nil {
		t.Fatalf("excite failed: %v", err)
	}
	m.OnStep(e)
	if err := e.Excite(fdtd.Ez, grid.Index{4, 4, 0}, 1); err != nil {
		t.Fatalf("excite failed: %v", err)
	}
	m.OnStep(e)

	if got := m.Value(); got != 3 {
		t.Errorf("expected peak 3, got %g", got)
	}
}

func TestStabilityFlagsBlowup(t *testing.T) {
	e := testEngine(t)
	m := NewStability()

	m.OnStep(e)
	if m.Diverged() {
		t.Fatal("expected healthy run so far")
	}
	if m.Value() != -1 {
		t.Errorf("expected -1 while healthy, got %g", m.Value())
	}

	if err := e.Excite(fdtd.Ez, grid.Index{4, 4, 0}, math.Inf(1)); err != nil {
		t.Fatalf("excite failed: %v", err)
	}
	m.OnStep(e)
	m.OnStep(e)

	if !m.Diverged() {
		t.Fatal("expected divergence flagged")
	}
	// The first unhealthy step is remembered.
	if m.Value() != 2 {
		t.Errorf("expected divergence at step 2, got %g", m.Value())
	}
}

func TestObserversDriveMetricsThroughRun(t *testing.T) {
	e := testEngine(t)
	energy := NewEnergy()
	stab := NewStability()

	obs := Observers([]Metric{energy, stab})
	if err := e.Run(context.Background(), 5, obs...); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if stab.Diverged() {
		t.Error("expected stable empty run")
	}
	if energy.Value() != 0 {
		t.Errorf("expected zero energy without sources, got %g", energy.Value())
	}
}
