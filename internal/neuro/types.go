package neuro

import "math"

// Field is a dense tensor over (state variable, node, mode). The backing
// slice is variable-major, then node, then mode, so each variable's
// (node, mode) block is contiguous.
type Field struct {
	nvar  int
	nodes int
	modes int
	data  []float64
}

func NewField(nvar, nodes, modes int) *Field {
	return &Field{
		nvar:  nvar,
		nodes: nodes,
		modes: modes,
		data:  make([]float64, nvar*nodes*modes),
	}
}

func (f *Field) Dims() (nvar, nodes, modes int) {
	return f.nvar, f.nodes, f.modes
}

func (f *Field) At(v, n, m int) float64 {
	return f.data[(v*f.nodes+n)*f.modes+m]
}

func (f *Field) Set(v, n, m int, val float64) {
	f.data[(v*f.nodes+n)*f.modes+m] = val
}

// Var returns the contiguous (node, mode) block for one state variable.
// The slice aliases the field's backing storage.
func (f *Field) Var(v int) []float64 {
	stride := f.nodes * f.modes
	return f.data[v*stride : (v+1)*stride]
}

// Data returns the flat backing slice.
func (f *Field) Data() []float64 { return f.data }

func (f *Field) Clone() *Field {
	c := NewField(f.nvar, f.nodes, f.modes)
	copy(c.data, f.data)
	return c
}

func (f *Field) Fill(val float64) {
	for i := range f.data {
		f.data[i] = val
	}
}

func (f *Field) SameShape(other *Field) bool {
	return f.nvar == other.nvar && f.nodes == other.nodes && f.modes == other.modes
}

func (f *Field) IsFinite() bool {
	for _, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Param is a model parameter that is either a single scalar shared by all
// nodes or one value per node. Broadcast is encoded in the stride (0 for
// scalar, 1 for per-node) so At involves no branching in hot loops.
type Param struct {
	data   []float64
	stride int
}

func Scalar(v float64) Param {
	return Param{data: []float64{v}, stride: 0}
}

// PerNode wraps one value per node. The slice is copied.
func PerNode(values []float64) Param {
	data := make([]float64, len(values))
	copy(data, values)
	return Param{data: data, stride: 1}
}

func (p Param) At(node int) float64 { return p.data[node*p.stride] }

func (p Param) IsScalar() bool { return p.stride == 0 }

// Len reports the number of distinct values (1 for a scalar).
func (p Param) Len() int { return len(p.data) }

// Fits reports whether the parameter can broadcast over nodes: a scalar
// fits any node count, a per-node parameter needs exactly one value per
// node.
func (p Param) Fits(nodes int) bool {
	return p.stride == 0 || len(p.data) == nodes
}

// Values returns a copy of the distinct values.
func (p Param) Values() []float64 {
	out := make([]float64, len(p.data))
	copy(out, p.data)
	return out
}

// InDomain reports whether every value lies inside the bound.
func (p Param) InDomain(b Bound) bool {
	for _, v := range p.data {
		if v < b.Lo || v > b.Hi {
			return false
		}
	}
	return true
}

// Bound is a documented [Lo, Hi] domain for a parameter or state variable.
// Bounds are metadata: models never clamp against them at evaluation time.
type Bound struct {
	Lo, Hi float64
}

func (b Bound) Contains(v float64) bool { return v >= b.Lo && v <= b.Hi }

// Model is a node-local population model. It maps a state field and the
// afferent coupling field to the instantaneous state derivative. Models
// hold their parameters read-only after construction and keep no other
// state, so evaluation is pure.
type Model interface {
	// NVar is the number of state variables.
	NVar() int

	// CouplingVars lists the state-variable indices read from the
	// coupling field.
	CouplingVars() []int

	// VariablesOfInterest names the variables monitors should record.
	VariablesOfInterest() []string

	// StateBounds gives the documented range per state variable. The
	// external stepper may clamp against these; the model never does.
	StateBounds() []Bound

	// Dfun returns a fresh field with the derivative at every
	// (variable, node, mode) position. local is additional input from
	// local connectivity, zero when absent.
	Dfun(state, coupling *Field, local Param) *Field

	// DfunInto writes the derivative into out, which the caller may
	// reuse across calls to avoid allocation in tight loops.
	DfunInto(out, state, coupling *Field, local Param) error
}

// Configurable is implemented by models whose parameters can be read and
// set by name.
type Configurable interface {
	GetParams() map[string]float64
	GetParamField(name string) (Param, error)
	SetParam(name string, value float64) error
	SetParamField(name string, p Param) error
}

// NodeRanged is implemented by models that can evaluate the derivative
// over a node sub-range, enabling partitioned parallel evaluation.
type NodeRanged interface {
	DfunRange(out, state, coupling *Field, local Param, n0, n1 int)
}

// ParamChecker is implemented by models that can verify their parameter
// fields broadcast over a given node count before evaluation.
type ParamChecker interface {
	CheckParams(nodes int, local Param) error
}

// Transferer exposes a model's firing-rate transfer function H at a
// given net input current, using the parameter values bound at node.
type Transferer interface {
	Transfer(x float64, node int) float64
}
