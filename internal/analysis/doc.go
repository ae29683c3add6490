// Package analysis provides single-node phase-space analysis tools.
//
// Every tool works from instantaneous derivative evaluations; nothing
// here integrates the dynamics over time:
//
//   - [Transfer]: firing-rate transfer curve H(x) over an input grid
//   - [Flow]: dS/dt as a function of S at fixed coupling
//   - [Equilibria]: fixed points of the flow with local stability
//   - [EquilibriumSweep]: fixed-point branches across a parameter range
//
// Grid evaluations map grid points onto the node axis so the model's
// vectorized kernel does the work in one pass; this requires scalar
// (non-per-node) parameters.
package analysis
