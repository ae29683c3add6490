// Package neuro provides core primitives for neural population dynamics.
//
// The package defines the types shared by every node-dynamics model:
//
//   - [Field]: dense (variable, node, mode) tensor of float64 values
//   - [Param]: model parameter, scalar or per-node, with implicit broadcast
//   - [Model]: interface for population models (dX/dt = dfun(X, c, lc))
//   - [Configurable]: runtime parameter access by name
//
// A Model computes only the instantaneous derivative of its state. Time
// stepping, network coupling and recording belong to the surrounding
// simulation framework, which treats the model as an interchangeable
// strategy object.
//
// # Example
//
//	m := models.NewReducedWongWang()
//	state := neuro.NewField(m.NVar(), nodes, modes)
//	coupling := neuro.NewField(m.NVar(), nodes, modes)
//	deriv := m.Dfun(state, coupling, neuro.Scalar(0))
//
// # Thread Safety
//
// Models are read-only after construction, so Dfun may be called from
// multiple goroutines at once. [DfunParallel] partitions the node axis
// across workers for a single large evaluation.
package neuro
