package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNodes     = 1
	DefaultModes     = 1
	DefaultState     = 0.5
	DefaultGridSteps = 200
)

type Config struct {
	Model         string               `yaml:"model"`
	Nodes         int                  `yaml:"nodes"`
	Modes         int                  `yaml:"modes"`
	State         float64              `yaml:"state"`
	Coupling      float64              `yaml:"coupling"`
	LocalCoupling float64              `yaml:"local_coupling"`
	Params        map[string]float64   `yaml:"params"`
	NodeParams    map[string][]float64 `yaml:"node_params"`
	Grid          GridConfig           `yaml:"grid"`
	Sweep         SweepConfig          `yaml:"sweep"`
}

// GridConfig bounds the state grid used by flow and equilibrium scans.
type GridConfig struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

// SweepConfig names one parameter and the range to sweep it over.
type SweepConfig struct {
	Param string  `yaml:"param"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  "rww",
		Nodes:  DefaultNodes,
		Modes:  DefaultModes,
		State:  DefaultState,
		Params: map[string]float64{},
		Grid: GridConfig{
			Min:   0.0,
			Max:   1.0,
			Steps: DefaultGridSteps,
		},
		Sweep: SweepConfig{
			Param: "w",
			Min:   0.0,
			Max:   1.0,
			Steps: 60,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
