package models

import "github.com/san-kum/neurodyn/internal/neuro"

// Linear implements a linearly damped point model.
// State: [x]
// Equation: dx/dt = γ·x + c + lc
//
// With γ < 0 the node relaxes toward an equilibrium set by its input.
// Useful as a minimal exerciser of the field machinery and as a sanity
// reference in tests, since its fixed point is known in closed form.
type Linear struct {
	Gamma neuro.Param // Damping rate, negative for stable dynamics
}

func NewLinear() *Linear {
	return &Linear{Gamma: neuro.Scalar(-10.0)}
}

func (m *Linear) NVar() int                     { return 1 }
func (m *Linear) CouplingVars() []int           { return []int{0} }
func (m *Linear) VariablesOfInterest() []string { return []string{"x"} }

func (m *Linear) StateBounds() []neuro.Bound {
	return []neuro.Bound{{Lo: -1.0, Hi: 1.0}}
}

func (m *Linear) DfunRange(out, state, coupling *neuro.Field, local neuro.Param, n0, n1 int) {
	_, _, modes := state.Dims()
	x := state.Var(0)
	c := coupling.Var(0)
	dx := out.Var(0)

	for n := n0; n < n1; n++ {
		gamma := m.Gamma.At(n)
		lc := local.At(n)
		for k := n * modes; k < (n+1)*modes; k++ {
			dx[k] = gamma*x[k] + c[k] + lc
		}
	}
}

func (m *Linear) DfunInto(out, state, coupling *neuro.Field, local neuro.Param) error {
	if !out.SameShape(state) || !coupling.SameShape(state) {
		return neuro.ErrShapeMismatch
	}
	_, nodes, _ := state.Dims()
	if err := m.CheckParams(nodes, local); err != nil {
		return err
	}
	m.DfunRange(out, state, coupling, local, 0, nodes)
	return nil
}

func (m *Linear) CheckParams(nodes int, local neuro.Param) error {
	if !m.Gamma.Fits(nodes) {
		return &neuro.ParamError{Name: "gamma", Wrapped: neuro.ErrShapeMismatch}
	}
	if !local.Fits(nodes) {
		return &neuro.ParamError{Name: "local_coupling", Wrapped: neuro.ErrShapeMismatch}
	}
	return nil
}

func (m *Linear) Dfun(state, coupling *neuro.Field, local neuro.Param) *neuro.Field {
	nvar, nodes, modes := state.Dims()
	out := neuro.NewField(nvar, nodes, modes)
	m.DfunRange(out, state, coupling, local, 0, nodes)
	return out
}

func (m *Linear) GetParams() map[string]float64 {
	return map[string]float64{"gamma": m.Gamma.At(0)}
}

func (m *Linear) GetParamField(name string) (neuro.Param, error) {
	if name != "gamma" {
		return neuro.Param{}, &neuro.ParamError{Name: name, Wrapped: neuro.ErrUnknownParam}
	}
	return m.Gamma, nil
}

func (m *Linear) SetParam(name string, value float64) error {
	return m.SetParamField(name, neuro.Scalar(value))
}

func (m *Linear) SetParamField(name string, p neuro.Param) error {
	if name != "gamma" {
		return &neuro.ParamError{Name: name, Wrapped: neuro.ErrUnknownParam}
	}
	m.Gamma = p
	return nil
}
