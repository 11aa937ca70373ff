package fdtd

import (
	"errors"
	"testing"

	"github.com/jwseo/fdtdlab/internal/grid"
)

// countRule increments a shared counter on every application.
type countRule struct {
	n *int
}

func (r countRule) Apply(self, in1, in2 *grid.Field, dt, d1, d2 float64) { *r.n++ }

func TestMaterialGridRules(t *testing.T) {
	g := NewMaterialGrid(Ez, grid.Index{2, 2, 2})

	if g.Component() != Ez {
		t.Errorf("expected component ez, got %s", g.Component())
	}
	if g.complete() {
		t.Error("expected fresh grid to be incomplete")
	}

	idx := grid.Index{1, 0, 1}
	if err := g.SetRule(idx, ZeroRule{}); err != nil {
		t.Fatalf("set rule failed: %v", err)
	}

	r, err := g.RuleAt(idx)
	if err != nil {
		t.Fatalf("rule at failed: %v", err)
	}
	if _, ok := r.(ZeroRule); !ok {
		t.Errorf("expected ZeroRule, got %T", r)
	}
}

func TestMaterialGridBounds(t *testing.T) {
	g := NewMaterialGrid(Ex, grid.Index{2, 2, 2})

	if _, err := g.RuleAt(grid.Index{2, 0, 0}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("expected out of bounds error, got %v", err)
	}
	if err := g.SetRule(grid.Index{0, -1, 0}, ZeroRule{}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("expected out of bounds error, got %v", err)
	}
}

func TestMaterialGridUpdateAppliesEveryRule(t *testing.T) {
	shape := grid.Index{2, 3, 2}
	g := NewMaterialGrid(Hx, shape)

	count := 0
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				g.set(i, j, k, countRule{&count})
			}
		}
	}
	if !g.complete() {
		t.Fatal("expected grid to be complete")
	}

	f := grid.NewField(shape)
	g.update(f, f, f, 0.1, 1, 1)

	if count != shape[0]*shape[1]*shape[2] {
		t.Errorf("expected %d applications, got %d", shape[0]*shape[1]*shape[2], count)
	}
}
