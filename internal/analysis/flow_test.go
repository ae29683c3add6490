package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/neurodyn/internal/models"
	"github.com/san-kum/neurodyn/internal/neuro"
)

func TestFlowLinearModel(t *testing.T) {
	m := models.NewLinear()

	// dx/dt = -10x + c + lc, a straight line through (0.05, 0).
	curve, err := Flow(m, 0, 0, 0.1, 11, 0.3, 0.2)
	if err != nil {
		t.Fatalf("flow: %v", err)
	}

	if len(curve.X) != 11 || len(curve.Y) != 11 {
		t.Fatalf("expected 11 samples, got %d/%d", len(curve.X), len(curve.Y))
	}

	for i := range curve.X {
		want := -10.0*curve.X[i] + 0.5
		if math.Abs(curve.Y[i]-want) > 1e-12 {
			t.Errorf("sample %d: y = %g, want %g", i, curve.Y[i], want)
		}
	}
}

func TestFlowGridEndpoints(t *testing.T) {
	m := models.NewReducedWongWang()

	curve, err := Flow(m, 0, 0, 1, 50, 0, 0)
	if err != nil {
		t.Fatalf("flow: %v", err)
	}

	if curve.X[0] != 0 || curve.X[len(curve.X)-1] != 1 {
		t.Errorf("grid endpoints = %g, %g, want 0, 1", curve.X[0], curve.X[len(curve.X)-1])
	}

	// The uncoupled default regime flows up from S=0 and leaks down at S=1.
	if curve.Y[0] <= 0 {
		t.Errorf("flow at S=0 should be positive, got %g", curve.Y[0])
	}
	if last := curve.Y[len(curve.Y)-1]; math.Abs(last-(-0.01)) > 1e-12 {
		t.Errorf("flow at S=1 = %g, want -0.01", last)
	}
}

func TestFlowBadArgs(t *testing.T) {
	m := models.NewLinear()

	if _, err := Flow(m, 0, 0, 1, 1, 0, 0); err == nil {
		t.Error("expected error for single-point grid")
	}
	if _, err := Flow(m, 0, 1, 0, 10, 0, 0); err == nil {
		t.Error("expected error for inverted range")
	}
}

func TestFlowPerNodeParamShapeError(t *testing.T) {
	m := models.NewReducedWongWang()
	if err := m.SetParamField("w", neuro.PerNode([]float64{0.2, 0.6, 0.9})); err != nil {
		t.Fatalf("set param: %v", err)
	}

	// Grid points ride the node axis, so a 3-node parameter cannot
	// broadcast over a 200-point grid. That must surface as an error.
	_, err := Flow(m, 0, 0, 1, 200, 0, 0)
	if !errors.Is(err, neuro.ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestTransferCurve(t *testing.T) {
	m := models.NewReducedWongWang()

	curve, err := Transfer(m, 0, 1, 100)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	// H is positive and increasing over the suprathreshold branch.
	prev := curve.Y[50]
	for i := 51; i < len(curve.Y); i++ {
		if curve.Y[i] <= prev {
			t.Fatalf("H not increasing at x=%g: %g <= %g", curve.X[i], curve.Y[i], prev)
		}
		prev = curve.Y[i]
	}
}
