package analysis

import (
	"fmt"
	"strings"

	"github.com/san-kum/neurodyn/internal/neuro"
)

// SweepPoint records the fixed points found at one parameter value.
type SweepPoint struct {
	Param      float64
	Equilibria []Equilibrium
}

// EquilibriumSweep traces fixed-point branches of variable v while one
// named parameter moves across [pMin, pMax]. The parameter is restored
// to its original value afterwards. Bistable regimes show up as
// parameter intervals with three branches.
func EquilibriumSweep(
	m neuro.Model,
	paramName string,
	pMin, pMax float64,
	pSteps int,
	v int,
	lo, hi float64,
	gridSteps int,
	coupling, local float64,
) ([]SweepPoint, error) {
	tunable, ok := m.(neuro.Configurable)
	if !ok {
		return nil, fmt.Errorf("analysis: model does not expose parameters")
	}
	if pSteps < 2 {
		return nil, fmt.Errorf("analysis: sweep needs at least 2 parameter values, got %d", pSteps)
	}

	// Snapshot the full parameter field so a per-node value survives the
	// scalar sweep assignments.
	orig, err := tunable.GetParamField(paramName)
	if err != nil {
		return nil, err
	}
	defer tunable.SetParamField(paramName, orig)

	points := make([]SweepPoint, 0, pSteps)
	step := (pMax - pMin) / float64(pSteps-1)

	for i := 0; i < pSteps; i++ {
		p := pMin + float64(i)*step
		if err := tunable.SetParam(paramName, p); err != nil {
			return nil, err
		}
		eqs, err := Equilibria(m, v, lo, hi, gridSteps, coupling, local)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Param: p, Equilibria: eqs})
	}

	return points, nil
}

// SweepToASCII renders sweep points as a scatter plot, parameter on the
// horizontal axis, fixed-point location on the vertical. Stable branches
// draw as '•', unstable as '·'.
func SweepToASCII(points []SweepPoint, width, height int) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minV, maxV float64
	found := false
	for _, p := range points {
		for _, eq := range p.Equilibria {
			if !found {
				minV, maxV = eq.S, eq.S
				found = true
				continue
			}
			if eq.S < minV {
				minV = eq.S
			}
			if eq.S > maxV {
				maxV = eq.S
			}
		}
	}
	if !found {
		return "no fixed points in range"
	}
	if maxV == minV {
		maxV = minV + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, p := range points {
		col := i * width / len(points)
		if col >= width {
			col = width - 1
		}
		for _, eq := range p.Equilibria {
			row := height - 1 - int((eq.S-minV)/(maxV-minV)*float64(height-1))
			if row < 0 || row >= height {
				continue
			}
			if eq.Stable {
				canvas[row][col] = '•'
			} else if canvas[row][col] == ' ' {
				canvas[row][col] = '·'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
