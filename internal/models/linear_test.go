package models

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/neurodyn/internal/neuro"
)

func TestLinearDerivative(t *testing.T) {
	m := NewLinear()

	state, coupling := singleNode(0.2, 0.5)
	got := m.Dfun(state, coupling, neuro.Scalar(0.1)).At(0, 0, 0)

	want := -10.0*0.2 + 0.5 + 0.1
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("derivative = %g, want %g", got, want)
	}
}

func TestLinearEquilibrium(t *testing.T) {
	m := NewLinear()

	// dx/dt = 0 at x = (c + lc)/|gamma|.
	state, coupling := singleNode(0.06, 0.5)
	got := m.Dfun(state, coupling, neuro.Scalar(0.1)).At(0, 0, 0)
	if math.Abs(got) > 1e-12 {
		t.Errorf("derivative at fixed point = %g, want 0", got)
	}
}

func TestLinearMetadata(t *testing.T) {
	m := NewLinear()
	if m.NVar() != 1 {
		t.Errorf("NVar = %d, want 1", m.NVar())
	}
	if voi := m.VariablesOfInterest(); len(voi) != 1 || voi[0] != "x" {
		t.Errorf("VariablesOfInterest = %v, want [x]", voi)
	}
}

func TestLinearPerNodeParamMismatch(t *testing.T) {
	m := NewLinear()
	m.Gamma = neuro.PerNode([]float64{-5, -10})

	state := neuro.NewField(1, 4, 1)
	coupling := neuro.NewField(1, 4, 1)
	out := neuro.NewField(1, 4, 1)

	err := m.DfunInto(out, state, coupling, neuro.Scalar(0))
	if !errors.Is(err, neuro.ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}
