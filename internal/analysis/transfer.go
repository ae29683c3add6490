package analysis

import (
	"fmt"

	"github.com/san-kum/neurodyn/internal/neuro"
)

// Transfer samples a model's firing-rate function H over an input-current
// grid, using the parameter values bound at node 0.
func Transfer(tf neuro.Transferer, lo, hi float64, steps int) (*Curve, error) {
	if steps < 2 {
		return nil, fmt.Errorf("analysis: transfer needs at least 2 grid points, got %d", steps)
	}
	if hi <= lo {
		return nil, fmt.Errorf("analysis: empty transfer range [%g, %g]", lo, hi)
	}

	curve := &Curve{
		X: make([]float64, steps),
		Y: make([]float64, steps),
	}
	span := hi - lo
	for i := 0; i < steps; i++ {
		x := lo + span*(float64(i)/float64(steps-1))
		curve.X[i] = x
		curve.Y[i] = tf.Transfer(x, 0)
	}
	return curve, nil
}
