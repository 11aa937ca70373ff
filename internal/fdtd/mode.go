package fdtd

import "fmt"

// Mode fixes which field components a dimensional variant simulates. The
// stepping, classification, and injection logic is shared across variants;
// only the component sets differ. A 2D mode assumes the structure and
// excitation are uniform along the suppressed axis; a 1D mode along two.
type Mode struct {
	Name string
	E    []Component
	H    []Component
}

var (
	// Full3D simulates all six components.
	Full3D = Mode{"3d", []Component{Ex, Ey, Ez}, []Component{Hx, Hy, Hz}}

	// 2D transverse-electric modes, one per suppressed axis.
	TEx = Mode{"tex", []Component{Ey, Ez}, []Component{Hx}}
	TEy = Mode{"tey", []Component{Ez, Ex}, []Component{Hy}}
	TEz = Mode{"tez", []Component{Ex, Ey}, []Component{Hz}}

	// 2D transverse-magnetic modes.
	TMx = Mode{"tmx", []Component{Ex}, []Component{Hy, Hz}}
	TMy = Mode{"tmy", []Component{Ey}, []Component{Hz, Hx}}
	TMz = Mode{"tmz", []Component{Ez}, []Component{Hx, Hy}}

	// 1D transverse-electromagnetic modes: one electric and one magnetic
	// component, named by propagation axis.
	TEMx = Mode{"temx", []Component{Ey}, []Component{Hz}}
	TEMy = Mode{"temy", []Component{Ez}, []Component{Hx}}
	TEMz = Mode{"temz", []Component{Ex}, []Component{Hy}}
)

var modes = map[string]Mode{
	"3d":   Full3D,
	"tex":  TEx,
	"tey":  TEy,
	"tez":  TEz,
	"tmx":  TMx,
	"tmy":  TMy,
	"tmz":  TMz,
	"temx": TEMx,
	"temy": TEMy,
	"temz": TEMz,
}

// ParseMode resolves a variant by name ("3d", "tex".."tez", "tmx".."tmz",
// "temx".."temz").
func ParseMode(name string) (Mode, error) {
	m, ok := modes[name]
	if !ok {
		return Mode{}, fmt.Errorf("%w %q", ErrUnknownMode, name)
	}
	return m, nil
}

// ModeNames lists the known variant names.
func ModeNames() []string {
	return []string{"3d", "tex", "tey", "tez", "tmx", "tmy", "tmz", "temx", "temy", "temz"}
}

// Active returns the union of the electric and magnetic component sets, in
// E-then-H order.
func (m Mode) Active() []Component {
	out := make([]Component, 0, len(m.E)+len(m.H))
	out = append(out, m.E...)
	out = append(out, m.H...)
	return out
}

func (m Mode) active(c Component) bool {
	for _, ac := range m.Active() {
		if ac == c {
			return true
		}
	}
	return false
}
