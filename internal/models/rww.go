package models

import (
	"math"

	"github.com/san-kum/neurodyn/internal/neuro"
)

// ReducedWongWang implements the reduced Wong-Wang mean-field model of
// recurrent excitatory population dynamics.
// State: [S], a synaptic gating fraction, nominal range [0, 1].
// Equations:
//
//	x    = w·J_N·S + I_o + J_N·c + J_N·lc
//	H(x) = (a·x − b) / (1 − exp(−d·(a·x − b)))
//	dS/dt = −S/τ_s + (1 − S)·H(x)·γ
//
// where c is the afferent network coupling and lc the local-connectivity
// input. The kernel never clamps S against its bounds and never checks
// its inputs: degenerate parameter values (for example d = 0) produce
// IEEE NaN/Inf that propagate into the output untouched, which external
// steppers rely on for divergence detection.
type ReducedWongWang struct {
	A     neuro.Param // Gain of the transfer function (n/C)
	B     neuro.Param // Threshold current of the transfer function (kHz)
	D     neuro.Param // Transfer function steepness (ms)
	Gamma neuro.Param // Kinetic parameter of gating dynamics
	TauS  neuro.Param // Gating time constant (ms)
	W     neuro.Param // Local excitatory recurrence weight
	JN    neuro.Param // Synaptic coupling current (nA)
	Io    neuro.Param // External input current (nA)

	// Debug makes DfunInto report ErrNonFinite instead of silently
	// propagating NaN/Inf. Off by default to stay numerically
	// transparent.
	Debug bool
}

// Documented parameter domains. Metadata only: construction and
// evaluation never enforce them, Validate checks them on request.
var ReducedWongWangDomains = map[string]neuro.Bound{
	"a":     {Lo: 0.0, Hi: 0.270},
	"b":     {Lo: 0.0, Hi: 1.0},
	"d":     {Lo: 0.0, Hi: 200.0},
	"gamma": {Lo: 0.0, Hi: 1.0},
	"tau_s": {Lo: 50.0, Hi: 150.0},
	"w":     {Lo: 0.0, Hi: 1.0},
	"J_N":   {Lo: 0.2609, Hi: 0.5},
	"I_o":   {Lo: 0.0, Hi: 1.0},
}

// NewReducedWongWang returns a model with the standard parameter set.
func NewReducedWongWang() *ReducedWongWang {
	return &ReducedWongWang{
		A:     neuro.Scalar(0.270),
		B:     neuro.Scalar(0.108),
		D:     neuro.Scalar(154.0),
		Gamma: neuro.Scalar(0.641),
		TauS:  neuro.Scalar(100.0),
		W:     neuro.Scalar(0.6),
		JN:    neuro.Scalar(0.2609),
		Io:    neuro.Scalar(0.33),
	}
}

func (m *ReducedWongWang) NVar() int                     { return 1 }
func (m *ReducedWongWang) CouplingVars() []int           { return []int{0} }
func (m *ReducedWongWang) VariablesOfInterest() []string { return []string{"S"} }
func (m *ReducedWongWang) StateBounds() []neuro.Bound    { return []neuro.Bound{{Lo: 0.0, Hi: 1.0}} }

// Transfer evaluates the firing-rate function H at net input current x
// with the parameter values bound at node.
func (m *ReducedWongWang) Transfer(x float64, node int) float64 {
	ax := m.A.At(node)*x - m.B.At(node)
	return ax / (1 - math.Exp(-m.D.At(node)*ax))
}

// DfunRange computes the derivative for nodes [n0, n1). Parameter lookups
// are hoisted out of the mode loop, so the inner loop is a straight
// elementwise pass.
func (m *ReducedWongWang) DfunRange(out, state, coupling *neuro.Field, local neuro.Param, n0, n1 int) {
	_, _, modes := state.Dims()
	s := state.Var(0)
	c := coupling.Var(0)
	ds := out.Var(0)

	for n := n0; n < n1; n++ {
		a := m.A.At(n)
		b := m.B.At(n)
		d := m.D.At(n)
		gamma := m.Gamma.At(n)
		tau := m.TauS.At(n)
		jn := m.JN.At(n)
		wjn := m.W.At(n) * jn
		bias := m.Io.At(n) + jn*local.At(n)

		for k := n * modes; k < (n+1)*modes; k++ {
			sv := s[k]
			ax := a*(wjn*sv+bias+jn*c[k]) - b
			h := ax / (1 - math.Exp(-d*ax))
			ds[k] = -(sv / tau) + (1-sv)*h*gamma
		}
	}
}

func (m *ReducedWongWang) DfunInto(out, state, coupling *neuro.Field, local neuro.Param) error {
	if !out.SameShape(state) || !coupling.SameShape(state) {
		return neuro.ErrShapeMismatch
	}
	_, nodes, _ := state.Dims()
	if err := m.CheckParams(nodes, local); err != nil {
		return err
	}
	m.DfunRange(out, state, coupling, local, 0, nodes)
	if m.Debug && !out.IsFinite() {
		return neuro.ErrNonFinite
	}
	return nil
}

// Dfun allocates and returns the derivative field. state and coupling
// must share the same (node, mode) extent.
func (m *ReducedWongWang) Dfun(state, coupling *neuro.Field, local neuro.Param) *neuro.Field {
	nvar, nodes, modes := state.Dims()
	out := neuro.NewField(nvar, nodes, modes)
	m.DfunRange(out, state, coupling, local, 0, nodes)
	return out
}

// CheckParams rejects per-node parameters whose length does not match
// the node count of the fields being evaluated. DfunRange skips this
// check and indexes parameters directly.
func (m *ReducedWongWang) CheckParams(nodes int, local neuro.Param) error {
	for name, p := range m.paramFields() {
		if !p.Fits(nodes) {
			return &neuro.ParamError{Name: name, Wrapped: neuro.ErrShapeMismatch}
		}
	}
	if !local.Fits(nodes) {
		return &neuro.ParamError{Name: "local_coupling", Wrapped: neuro.ErrShapeMismatch}
	}
	return nil
}

// Validate checks every parameter against its documented domain. Models
// are permissive by construction; callers opt into this check.
func (m *ReducedWongWang) Validate() error {
	for name, p := range m.paramFields() {
		if !p.InDomain(ReducedWongWangDomains[name]) {
			return &neuro.ParamError{Name: name, Wrapped: neuro.ErrParameterBounds}
		}
	}
	return nil
}

func (m *ReducedWongWang) paramFields() map[string]neuro.Param {
	return map[string]neuro.Param{
		"a":     m.A,
		"b":     m.B,
		"d":     m.D,
		"gamma": m.Gamma,
		"tau_s": m.TauS,
		"w":     m.W,
		"J_N":   m.JN,
		"I_o":   m.Io,
	}
}

// GetParams implements neuro.Configurable. Per-node parameters report
// their node-0 value.
func (m *ReducedWongWang) GetParams() map[string]float64 {
	out := make(map[string]float64, 8)
	for name, p := range m.paramFields() {
		out[name] = p.At(0)
	}
	return out
}

func (m *ReducedWongWang) GetParamField(name string) (neuro.Param, error) {
	p, ok := m.paramFields()[name]
	if !ok {
		return neuro.Param{}, &neuro.ParamError{Name: name, Wrapped: neuro.ErrUnknownParam}
	}
	return p, nil
}

func (m *ReducedWongWang) SetParam(name string, value float64) error {
	return m.SetParamField(name, neuro.Scalar(value))
}

func (m *ReducedWongWang) SetParamField(name string, p neuro.Param) error {
	switch name {
	case "a":
		m.A = p
	case "b":
		m.B = p
	case "d":
		m.D = p
	case "gamma":
		m.Gamma = p
	case "tau_s":
		m.TauS = p
	case "w":
		m.W = p
	case "J_N":
		m.JN = p
	case "I_o":
		m.Io = p
	default:
		return &neuro.ParamError{Name: name, Wrapped: neuro.ErrUnknownParam}
	}
	return nil
}
