package analysis

import (
	"fmt"

	"github.com/san-kum/neurodyn/internal/neuro"
)

// Curve holds sampled (x, y) pairs of an evaluation.
type Curve struct {
	X []float64
	Y []float64
}

// Flow samples the derivative of state variable v over a grid of state
// values at fixed coupling and local coupling. Grid points ride on the
// node axis, so one vectorized dfun call evaluates the whole curve.
func Flow(m neuro.Model, v int, lo, hi float64, steps int, coupling, local float64) (*Curve, error) {
	if steps < 2 {
		return nil, fmt.Errorf("analysis: flow needs at least 2 grid points, got %d", steps)
	}
	if hi <= lo {
		return nil, fmt.Errorf("analysis: empty flow range [%g, %g]", lo, hi)
	}

	state := neuro.NewField(m.NVar(), steps, 1)
	cpl := neuro.NewField(m.NVar(), steps, 1)

	// Fraction form keeps both endpoints exact.
	grid := state.Var(v)
	span := hi - lo
	for i := range grid {
		grid[i] = lo + span*(float64(i)/float64(steps-1))
	}
	for _, cv := range m.CouplingVars() {
		c := cpl.Var(cv)
		for i := range c {
			c[i] = coupling
		}
	}

	// Per-node parameters cannot broadcast over a grid-sized node axis;
	// DfunInto reports that instead of indexing out of range.
	deriv := neuro.NewField(m.NVar(), steps, 1)
	if err := m.DfunInto(deriv, state, cpl, neuro.Scalar(local)); err != nil {
		return nil, fmt.Errorf("analysis: flow evaluation: %w", err)
	}

	curve := &Curve{
		X: make([]float64, steps),
		Y: make([]float64, steps),
	}
	copy(curve.X, grid)
	copy(curve.Y, deriv.Var(v))
	return curve, nil
}

// evalAt computes the derivative of variable v at a single state value,
// via a one-node field.
func evalAt(m neuro.Model, v int, s, coupling, local float64) float64 {
	state := neuro.NewField(m.NVar(), 1, 1)
	cpl := neuro.NewField(m.NVar(), 1, 1)
	state.Set(v, 0, 0, s)
	for _, cv := range m.CouplingVars() {
		cpl.Set(cv, 0, 0, coupling)
	}
	return m.Dfun(state, cpl, neuro.Scalar(local)).At(v, 0, 0)
}
