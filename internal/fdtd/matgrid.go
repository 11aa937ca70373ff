package fdtd

import (
	"fmt"

	"github.com/jwseo/fdtdlab/internal/grid"
)

// MaterialGrid holds one update rule per cell of a single field component,
// in the same flat order as the component's field array. The topology is
// fixed once the build pass completes; source injection composes overlays
// over existing rules but never leaves a cell without one.
type MaterialGrid struct {
	comp  Component
	shape grid.Index
	rules []UpdateRule
}

func NewMaterialGrid(comp Component, shape grid.Index) *MaterialGrid {
	return &MaterialGrid{
		comp:  comp,
		shape: shape,
		rules: make([]UpdateRule, shape[0]*shape[1]*shape[2]),
	}
}

func (g *MaterialGrid) Component() Component { return g.comp }
func (g *MaterialGrid) Shape() grid.Index    { return g.shape }

func (g *MaterialGrid) flat(idx grid.Index) (int, error) {
	for d := 0; d < 3; d++ {
		if idx[d] < 0 || idx[d] >= g.shape[d] {
			return 0, fmt.Errorf("%w: %s material grid %v of %v",
				grid.ErrOutOfBounds, g.comp, idx, g.shape)
		}
	}
	return (idx[0]*g.shape[1]+idx[1])*g.shape[2] + idx[2], nil
}

// RuleAt returns the rule bound to idx.
func (g *MaterialGrid) RuleAt(idx grid.Index) (UpdateRule, error) {
	n, err := g.flat(idx)
	if err != nil {
		return nil, err
	}
	return g.rules[n], nil
}

// SetRule rebinds the rule at idx. Sources use this to wrap the rule the
// build pass assigned; the replacement must keep updating the same cell.
func (g *MaterialGrid) SetRule(idx grid.Index, r UpdateRule) error {
	n, err := g.flat(idx)
	if err != nil {
		return err
	}
	g.rules[n] = r
	return nil
}

func (g *MaterialGrid) set(i, j, k int, r UpdateRule) {
	g.rules[(i*g.shape[1]+j)*g.shape[2]+k] = r
}

// update applies every rule in the grid once.
func (g *MaterialGrid) update(self, in1, in2 *grid.Field, dt, d1, d2 float64) {
	for _, r := range g.rules {
		r.Apply(self, in1, in2, dt, d1, d2)
	}
}

// complete reports whether every cell has a rule.
func (g *MaterialGrid) complete() bool {
	for _, r := range g.rules {
		if r == nil {
			return false
		}
	}
	return true
}
