package fdtd

import (
	"errors"
	"fmt"

	"github.com/jwseo/fdtdlab/internal/grid"
)

// Domain errors for engine construction and access.
var (
	// ErrNoMaterial indicates the geometry list leaves a coordinate
	// uncovered; the object list is misconfigured.
	ErrNoMaterial = errors.New("fdtd: no geometric object covers point")

	// ErrUnknownMode indicates an unrecognized dimensional variant name.
	ErrUnknownMode = errors.New("fdtd: unknown mode")

	// ErrInactiveComponent indicates an access to a component the chosen
	// mode does not simulate.
	ErrInactiveComponent = errors.New("fdtd: component not active in this mode")

	// ErrNilSpace indicates engine construction without a discretization.
	ErrNilSpace = errors.New("fdtd: nil space")

	// ErrNilClassifier indicates engine construction without a geometry list.
	ErrNilClassifier = errors.New("fdtd: nil classifier")
)

// BuildError wraps a classification or injection failure with the field
// component and, when known, the physical coordinate that produced it.
type BuildError struct {
	Component Component
	Coord     grid.Coord
	Wrapped   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building %s material grid at (%g, %g, %g): %v",
		e.Component, e.Coord[0], e.Coord[1], e.Coord[2], e.Wrapped)
}

func (e *BuildError) Unwrap() error {
	return e.Wrapped
}
