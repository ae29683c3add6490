package config

// Presets capture named Wong-Wang operating regimes. The bistable values
// follow the single-node regime where the flow has two stable branches
// separated by an unstable one.
var Presets = map[string]map[string]*Config{
	"rww": {
		"default": {
			Model: "rww",
			Grid:  GridConfig{Min: 0.0, Max: 1.0, Steps: 200},
		},
		"bistable": {
			Model:  "rww",
			Params: map[string]float64{"w": 0.9, "I_o": 0.32},
			Grid:   GridConfig{Min: 0.0, Max: 1.0, Steps: 400},
		},
		"saturated": {
			Model:  "rww",
			Params: map[string]float64{"I_o": 0.42},
			Grid:   GridConfig{Min: 0.0, Max: 1.0, Steps: 200},
		},
		"leaky": {
			Model:  "rww",
			Params: map[string]float64{"w": 0.1, "I_o": 0.25},
			Grid:   GridConfig{Min: 0.0, Max: 1.0, Steps: 200},
		},
	},
	"linear": {
		"default": {
			Model: "linear",
			Grid:  GridConfig{Min: -1.0, Max: 1.0, Steps: 200},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
