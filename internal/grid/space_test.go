package grid

import (
	"math"
	"testing"
)

func TestNewSpace(t *testing.T) {
	s, err := NewSpace(1, 2, 4, 10, 0.5)
	if err != nil {
		t.Fatalf("new space failed: %v", err)
	}

	if s.Nx != 10 || s.Ny != 20 || s.Nz != 40 {
		t.Errorf("expected 10x20x40 cells, got %dx%dx%d", s.Nx, s.Ny, s.Nz)
	}
	if s.Dx != 0.1 || s.Dy != 0.1 || s.Dz != 0.1 {
		t.Errorf("expected uniform spacing 0.1, got (%f, %f, %f)", s.Dx, s.Dy, s.Dz)
	}

	want := 0.5 / math.Sqrt(3/(0.1*0.1))
	if math.Abs(s.Dt-want) > 1e-12 {
		t.Errorf("expected dt %g, got %g", want, s.Dt)
	}
}

func TestNewSpaceValidation(t *testing.T) {
	if _, err := NewSpace(1, 1, 1, 0, 0.5); err == nil {
		t.Error("expected error for zero resolution")
	}
	if _, err := NewSpace(-1, 1, 1, 10, 0.5); err == nil {
		t.Error("expected error for negative size")
	}
	if _, err := NewSpace(1, 1, 1, 10, 1.0); err == nil {
		t.Error("expected error for courant factor 1")
	}
}

func TestNewSpaceDefaultCourant(t *testing.T) {
	s, err := NewSpace(1, 1, 1, 10, 0)
	if err != nil {
		t.Fatalf("new space failed: %v", err)
	}
	if s.Courant != DefaultCourant {
		t.Errorf("expected default courant %f, got %f", DefaultCourant, s.Courant)
	}
}

func TestCollapsedAxis(t *testing.T) {
	s, err := NewSpace(2, 2, 0, 10, 0.5)
	if err != nil {
		t.Fatalf("new space failed: %v", err)
	}

	if s.Nz != 1 {
		t.Errorf("expected single cell along z, got %d", s.Nz)
	}
	if s.Dz != 0.1 {
		t.Errorf("expected dz 0.1, got %f", s.Dz)
	}
	if !s.Contains(Coord{0, 0, 0}) {
		t.Error("expected center inside collapsed volume")
	}
	if s.Contains(Coord{0, 0, 0.2}) {
		t.Error("expected point beyond the collapsed cell outside")
	}
}

func TestContainsCentered(t *testing.T) {
	s, err := NewSpace(2, 2, 2, 10, 0.5)
	if err != nil {
		t.Fatalf("new space failed: %v", err)
	}

	tests := []struct {
		co   Coord
		want bool
	}{
		{Coord{0, 0, 0}, true},
		{Coord{1, 1, 1}, true},
		{Coord{-1, -1, -1}, true},
		{Coord{1.01, 0, 0}, false},
		{Coord{0, -1.01, 0}, false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.co); got != tt.want {
			t.Errorf("Contains(%v): expected %v, got %v", tt.co, tt.want, got)
		}
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	s, err := NewSpace(2, 2, 2, 10, 0.5)
	if err != nil {
		t.Fatalf("new space failed: %v", err)
	}

	for _, idx := range []Index{{0, 0, 0}, {3, 5, 7}, {9, 10, 10}} {
		co := s.ExIndexToSpace(idx)
		if got := s.SpaceToExIndex(co); got != idx {
			t.Errorf("ex round trip %v: got %v", idx, got)
		}

		co = s.HzIndexToSpace(idx)
		if got := s.SpaceToHzIndex(co); got != idx {
			t.Errorf("hz round trip %v: got %v", idx, got)
		}
	}
}

func TestStaggeredOffsets(t *testing.T) {
	s, err := NewSpace(2, 2, 2, 10, 0.5)
	if err != nil {
		t.Fatalf("new space failed: %v", err)
	}

	// Electric samples sit half a cell into their own axis, magnetic ones
	// half a cell back along the transverse axes.
	ex := s.ExIndexToSpace(Index{0, 0, 0})
	if math.Abs(ex[0]-(-1+0.05)) > 1e-12 || math.Abs(ex[1]-(-1)) > 1e-12 {
		t.Errorf("unexpected ex sample position %v", ex)
	}

	hx := s.HxIndexToSpace(Index{0, 1, 1})
	if math.Abs(hx[1]-(-1+0.05)) > 1e-12 || math.Abs(hx[2]-(-1+0.05)) > 1e-12 {
		t.Errorf("unexpected hx sample position %v", hx)
	}
}

func TestSpaceToIndexClamps(t *testing.T) {
	s, err := NewSpace(2, 2, 2, 10, 0.5)
	if err != nil {
		t.Fatalf("new space failed: %v", err)
	}

	idx := s.SpaceToExIndex(Coord{100, 100, 100})
	shape := s.ShapeEx()
	for d := 0; d < 3; d++ {
		if idx[d] != shape[d]-1 {
			t.Errorf("axis %d: expected clamp to %d, got %d", d, shape[d]-1, idx[d])
		}
	}

	idx = s.SpaceToExIndex(Coord{-100, -100, -100})
	if idx != (Index{0, 0, 0}) {
		t.Errorf("expected clamp to origin, got %v", idx)
	}
}

func TestShapes(t *testing.T) {
	s, err := NewSpace(1, 1, 1, 4, 0.5)
	if err != nil {
		t.Fatalf("new space failed: %v", err)
	}

	tests := []struct {
		name  string
		shape Index
		want  Index
	}{
		{"ex", s.ShapeEx(), Index{4, 5, 5}},
		{"ey", s.ShapeEy(), Index{5, 4, 5}},
		{"ez", s.ShapeEz(), Index{5, 5, 4}},
		{"hx", s.ShapeHx(), Index{5, 5, 5}},
		{"hy", s.ShapeHy(), Index{5, 5, 5}},
		{"hz", s.ShapeHz(), Index{5, 5, 5}},
	}
	for _, tt := range tests {
		if tt.shape != tt.want {
			t.Errorf("%s: expected shape %v, got %v", tt.name, tt.want, tt.shape)
		}
	}
}

func TestParseAxis(t *testing.T) {
	for name, want := range map[string]Axis{"x": X, "y": Y, "z": Z} {
		got, err := ParseAxis(name)
		if err != nil {
			t.Fatalf("parse %q failed: %v", name, err)
		}
		if got != want {
			t.Errorf("parse %q: expected %v, got %v", name, want, got)
		}
	}

	if _, err := ParseAxis("w"); err == nil {
		t.Error("expected error for unknown axis")
	}
}
