// Package models provides neural population models for network simulation.
//
// Each model implements the [neuro.Model] interface, computing the
// instantaneous derivative of its state variables given the afferent
// network coupling and any local-connectivity input:
//
//   - [ReducedWongWang]: two-state mean-field reduction of recurrent
//     excitatory dynamics, one synaptic gating variable S
//   - [Linear]: linearly damped point model, mainly for testing harnesses
//
// Models also implement [neuro.Configurable] for parameter access by name
// and [neuro.NodeRanged] for partitioned parallel evaluation. Parameters
// accept per-node arrays for heterogeneous simulations; a scalar value
// broadcasts across all nodes.
package models
