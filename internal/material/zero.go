package material

import (
	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
)

// Zero freezes every cell it covers: the assigned rules never change the
// field sample. Cells that should hold a fixed zero field (a perfect
// conductor region initialized to zero) use it.
type Zero struct{}

func NewZero() *Zero { return &Zero{} }

func (*Zero) Name() string { return "zero" }

func (*Zero) RuleEx(idx grid.Index, co grid.Coord) fdtd.UpdateRule { return fdtd.ZeroRule{} }
func (*Zero) RuleEy(idx grid.Index, co grid.Coord) fdtd.UpdateRule { return fdtd.ZeroRule{} }
func (*Zero) RuleEz(idx grid.Index, co grid.Coord) fdtd.UpdateRule { return fdtd.ZeroRule{} }
func (*Zero) RuleHx(idx grid.Index, co grid.Coord) fdtd.UpdateRule { return fdtd.ZeroRule{} }
func (*Zero) RuleHy(idx grid.Index, co grid.Coord) fdtd.UpdateRule { return fdtd.ZeroRule{} }
func (*Zero) RuleHz(idx grid.Index, co grid.Coord) fdtd.UpdateRule { return fdtd.ZeroRule{} }
