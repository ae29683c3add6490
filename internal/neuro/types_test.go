package neuro

import (
	"math"
	"testing"
)

func TestFieldIndexing(t *testing.T) {
	f := NewField(2, 3, 4)

	nvar, nodes, modes := f.Dims()
	if nvar != 2 || nodes != 3 || modes != 4 {
		t.Fatalf("dims = (%d,%d,%d), want (2,3,4)", nvar, nodes, modes)
	}

	f.Set(1, 2, 3, 7.5)
	if got := f.At(1, 2, 3); got != 7.5 {
		t.Errorf("At(1,2,3) = %f, want 7.5", got)
	}

	// Var must alias the same storage.
	f.Var(1)[2*4+3] = 9.0
	if got := f.At(1, 2, 3); got != 9.0 {
		t.Errorf("Var slice not aliased: At = %f, want 9.0", got)
	}
}

func TestFieldClone(t *testing.T) {
	f := NewField(1, 2, 1)
	f.Set(0, 0, 0, 1.0)

	c := f.Clone()
	c.Set(0, 0, 0, 2.0)

	if f.At(0, 0, 0) != 1.0 {
		t.Error("clone shares storage with original")
	}
}

func TestFieldIsFinite(t *testing.T) {
	f := NewField(1, 2, 1)
	if !f.IsFinite() {
		t.Error("zero field should be finite")
	}

	f.Set(0, 1, 0, math.NaN())
	if f.IsFinite() {
		t.Error("NaN not detected")
	}

	f.Set(0, 1, 0, math.Inf(1))
	if f.IsFinite() {
		t.Error("Inf not detected")
	}
}

func TestFieldSameShape(t *testing.T) {
	a := NewField(1, 4, 2)
	b := NewField(1, 4, 2)
	c := NewField(1, 4, 3)

	if !a.SameShape(b) {
		t.Error("equal shapes reported different")
	}
	if a.SameShape(c) {
		t.Error("different mode counts reported equal")
	}
}

func TestParamBroadcast(t *testing.T) {
	s := Scalar(3.0)
	for n := 0; n < 5; n++ {
		if s.At(n) != 3.0 {
			t.Fatalf("scalar At(%d) = %f, want 3.0", n, s.At(n))
		}
	}
	if !s.IsScalar() || s.Len() != 1 {
		t.Error("scalar param misreports itself")
	}

	p := PerNode([]float64{1, 2, 3})
	for n, want := range []float64{1, 2, 3} {
		if p.At(n) != want {
			t.Errorf("per-node At(%d) = %f, want %f", n, p.At(n), want)
		}
	}
	if p.IsScalar() || p.Len() != 3 {
		t.Error("per-node param misreports itself")
	}
}

func TestParamCopiesInput(t *testing.T) {
	src := []float64{1, 2}
	p := PerNode(src)
	src[0] = 99
	if p.At(0) != 1 {
		t.Error("PerNode aliases caller slice")
	}
}

func TestParamInDomain(t *testing.T) {
	b := Bound{Lo: 0, Hi: 1}
	if !Scalar(0.5).InDomain(b) {
		t.Error("0.5 should be inside [0,1]")
	}
	if PerNode([]float64{0.5, 1.5}).InDomain(b) {
		t.Error("1.5 should be outside [0,1]")
	}
}

func TestParamFits(t *testing.T) {
	if !Scalar(1.0).Fits(7) {
		t.Error("scalar should fit any node count")
	}

	p := PerNode([]float64{1, 2, 3})
	if !p.Fits(3) {
		t.Error("3-value param should fit 3 nodes")
	}
	if p.Fits(5) {
		t.Error("3-value param should not fit 5 nodes")
	}
}
