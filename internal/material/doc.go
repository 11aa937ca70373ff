// Package material provides the pointwise material catalog.
//
// Each material implements [fdtd.Material], producing one update rule per
// field component bound to a single cell:
//
//   - [Dielectric]: lossless isotropic medium (relative permittivity and
//     permeability)
//   - [Zero]: frozen cells; the field sample never changes
//   - [UPML]: uniaxial perfectly matched layer absorber
//   - [Drude]: dispersive metal via an auxiliary polarization current
//
// Rules hold whatever per-cell coefficients their law needs; for UPML and
// Drude that includes mutable auxiliary state, so those rules are bound to
// exactly one cell and must not be shared.
package material
