package registry

import (
	"testing"

	"github.com/san-kum/neurodyn/internal/neuro"
)

func TestRegistryGet(t *testing.T) {
	r := New()

	for _, name := range []string{"rww", "linear"} {
		m, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		if m.NVar() != 1 {
			t.Errorf("%s NVar = %d, want 1", name, m.NVar())
		}
	}

	if _, err := r.Get("hopfield"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestRegistryNames(t *testing.T) {
	names := New().Names()
	if len(names) != 2 || names[0] != "linear" || names[1] != "rww" {
		t.Errorf("names = %v, want [linear rww]", names)
	}
}

func TestApply(t *testing.T) {
	r := New()
	m, _ := r.Get("rww")

	err := Apply(m, map[string]float64{"w": 0.9}, map[string][]float64{"I_o": {0.3, 0.35}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	params := m.(neuro.Configurable).GetParams()
	if params["w"] != 0.9 {
		t.Errorf("w = %g, want 0.9", params["w"])
	}
	if params["I_o"] != 0.3 {
		t.Errorf("I_o at node 0 = %g, want 0.3", params["I_o"])
	}

	if err := Apply(m, map[string]float64{"bogus": 1}, nil); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestCollapseNodeParams(t *testing.T) {
	r := New()
	m, _ := r.Get("rww")

	err := Apply(m, nil, map[string][]float64{"I_o": {0.3, 0.35}, "w": {0.5, 0.7}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	collapsed, err := CollapseNodeParams(m)
	if err != nil {
		t.Fatalf("collapse: %v", err)
	}
	if len(collapsed) != 2 || collapsed[0] != "I_o" || collapsed[1] != "w" {
		t.Errorf("collapsed = %v, want [I_o w]", collapsed)
	}

	tunable := m.(neuro.Configurable)
	for name, want := range map[string]float64{"I_o": 0.3, "w": 0.5} {
		p, err := tunable.GetParamField(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		if !p.IsScalar() || p.At(0) != want {
			t.Errorf("%s = %v, want scalar %g", name, p.Values(), want)
		}
	}

	// Nothing to do on an all-scalar model.
	again, err := CollapseNodeParams(m)
	if err != nil {
		t.Fatalf("collapse: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second collapse touched %v", again)
	}
}
