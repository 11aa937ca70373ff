// Package fdtd implements the finite-difference time-domain field-update
// engine on a staggered Yee grid.
//
// The package defines the contracts the engine consumes and the engine
// itself:
//
//   - [UpdateRule]: per-cell leapfrog update bound to one grid index
//   - [Material]: factory of pointwise update rules per field component
//   - [Classifier]: point-in-geometry lookup over the object list
//   - [Source]: excitation overlay applied to the material grid
//   - [Engine]: owns field and material storage and the stepping protocol
//
// # Example
//
//	space, _ := grid.NewSpace(1, 1, 1, 20, 0)
//	tree := geom.NewTree([]geom.Object{geom.NewDefaultMedium(material.NewDielectric(1))})
//	eng, _ := fdtd.New(space, tree, nil, fdtd.Full3D)
//	for i := 0; i < 100; i++ {
//		eng.Step(ctx)
//	}
//
// # Thread Safety
//
// Step must be driven from a single goroutine; it fans out across field
// components internally and joins before returning. Snapshot reads (Plane,
// Line, Probe, Clock) are safe to call concurrently with stepping.
package fdtd
