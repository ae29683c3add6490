package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/neurodyn/internal/analysis"
)

// PlotCurve renders a sampled curve as an ASCII line plot with a labeled
// horizontal range underneath (asciigraph only labels the vertical axis).
func PlotCurve(curve *analysis.Curve, caption string, width, height int) string {
	if len(curve.Y) == 0 {
		return "no data"
	}

	graph := asciigraph.Plot(curve.Y,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)

	var sb strings.Builder
	sb.WriteString(graph)
	sb.WriteString("\n")
	sb.WriteString(Label.Render(fmt.Sprintf("x: %.4g .. %.4g (%d samples)",
		curve.X[0], curve.X[len(curve.X)-1], len(curve.X))))
	sb.WriteString("\n")
	return sb.String()
}

// FormatEquilibria lists fixed points with stability markers.
func FormatEquilibria(eqs []analysis.Equilibrium) string {
	if len(eqs) == 0 {
		return Warn.Render("no fixed points found in grid range")
	}
	var sb strings.Builder
	for _, eq := range eqs {
		marker := Stable.Render("stable  ")
		if !eq.Stable {
			marker = Warn.Render("unstable")
		}
		sb.WriteString(fmt.Sprintf("  %s  S = %.6f\n", marker, eq.S))
	}
	return sb.String()
}
