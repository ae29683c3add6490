package registry

import (
	"fmt"
	"sort"

	"github.com/san-kum/neurodyn/internal/models"
	"github.com/san-kum/neurodyn/internal/neuro"
)

// Registry maps model names to factories producing fresh instances with
// default parameters.
type Registry struct {
	models map[string]func() neuro.Model
}

func New() *Registry {
	r := &Registry{models: make(map[string]func() neuro.Model)}

	r.models["rww"] = func() neuro.Model { return models.NewReducedWongWang() }
	r.models["linear"] = func() neuro.Model { return models.NewLinear() }

	return r
}

func (r *Registry) Get(name string) (neuro.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CollapseNodeParams rewrites every per-node parameter to a scalar
// holding its node-0 value and returns the names it touched, sorted.
// The state-grid analyses ride grid points on the node axis, so they
// need node-uniform parameters.
func CollapseNodeParams(m neuro.Model) ([]string, error) {
	tunable, ok := m.(neuro.Configurable)
	if !ok {
		return nil, nil
	}
	var collapsed []string
	for name := range tunable.GetParams() {
		p, err := tunable.GetParamField(name)
		if err != nil {
			return nil, err
		}
		if p.IsScalar() {
			continue
		}
		if err := tunable.SetParam(name, p.At(0)); err != nil {
			return nil, err
		}
		collapsed = append(collapsed, name)
	}
	sort.Strings(collapsed)
	return collapsed, nil
}

// Apply sets scalar and per-node parameters on a model by name.
func Apply(m neuro.Model, params map[string]float64, nodeParams map[string][]float64) error {
	if len(params) == 0 && len(nodeParams) == 0 {
		return nil
	}
	tunable, ok := m.(neuro.Configurable)
	if !ok {
		return fmt.Errorf("model does not accept parameters")
	}
	for name, v := range params {
		if err := tunable.SetParam(name, v); err != nil {
			return err
		}
	}
	for name, vs := range nodeParams {
		if err := tunable.SetParamField(name, neuro.PerNode(vs)); err != nil {
			return err
		}
	}
	return nil
}
