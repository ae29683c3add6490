package analysis

import (
	"math"

	"github.com/san-kum/neurodyn/internal/neuro"
)

// Equilibrium is a zero of the flow. Stable when the derivative of the
// flow with respect to the state is negative at the crossing.
type Equilibrium struct {
	S      float64
	Stable bool
}

const bisectIters = 60

// Equilibria locates fixed points of variable v inside [lo, hi] at fixed
// coupling. A coarse grid scan finds sign changes, each refined by
// bisection. Grid points that land exactly on a zero are taken as-is.
func Equilibria(m neuro.Model, v int, lo, hi float64, steps int, coupling, local float64) ([]Equilibrium, error) {
	curve, err := Flow(m, v, lo, hi, steps, coupling, local)
	if err != nil {
		return nil, err
	}

	var eqs []Equilibrium
	for i := 1; i < len(curve.X); i++ {
		y0, y1 := curve.Y[i-1], curve.Y[i]
		if math.IsNaN(y0) || math.IsNaN(y1) {
			continue
		}

		if y0 == 0 {
			eqs = append(eqs, Equilibrium{S: curve.X[i-1], Stable: y1 < 0})
			continue
		}
		if y0*y1 >= 0 {
			continue
		}

		a, b := curve.X[i-1], curve.X[i]
		fa := y0
		for iter := 0; iter < bisectIters; iter++ {
			mid := 0.5 * (a + b)
			fm := evalAt(m, v, mid, coupling, local)
			if fm == 0 {
				a, b = mid, mid
				break
			}
			if (fa < 0) == (fm < 0) {
				a, fa = mid, fm
			} else {
				b = mid
			}
		}
		root := 0.5 * (a + b)
		// Downward crossing means the flow pushes back toward the root.
		eqs = append(eqs, Equilibrium{S: root, Stable: y0 > 0 && y1 < 0})
	}

	// Endpoint zero is missed by the pairwise scan above.
	last := len(curve.Y) - 1
	if curve.Y[last] == 0 {
		eqs = append(eqs, Equilibrium{S: curve.X[last], Stable: curve.Y[last-1] > 0})
	}

	return eqs, nil
}
