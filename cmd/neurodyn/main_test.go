package main

import (
	"testing"

	"github.com/san-kum/neurodyn/internal/analysis"
	"github.com/san-kum/neurodyn/internal/config"
	"github.com/san-kum/neurodyn/internal/neuro"
)

func TestBuildGridModelCollapsesNodeParams(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NodeParams = map[string][]float64{"w": {0.2, 0.6, 0.9}}

	m, err := buildGridModel(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// The state grid puts cfg.Grid.Steps points on the node axis, which
	// a 3-node parameter cannot broadcast over. The collapsed model
	// evaluates it cleanly.
	curve, err := analysis.Flow(m, 0, cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.Steps,
		cfg.Coupling, cfg.LocalCoupling)
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	if len(curve.X) != cfg.Grid.Steps {
		t.Fatalf("expected %d samples, got %d", cfg.Grid.Steps, len(curve.X))
	}

	p, err := m.(neuro.Configurable).GetParamField("w")
	if err != nil {
		t.Fatalf("get param: %v", err)
	}
	if !p.IsScalar() || p.At(0) != 0.2 {
		t.Errorf("w = %v, want scalar 0.2 (node-0 value)", p.Values())
	}
}

func TestBuildGridModelScalarConfigUntouched(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Params = map[string]float64{"w": 0.9}

	m, err := buildGridModel(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := m.(neuro.Configurable).GetParams()["w"]; got != 0.9 {
		t.Errorf("w = %g, want 0.9", got)
	}
}
