package config

var Presets = map[string]map[string]*Config{
	"kepler": {
		"fast": {
			Problem: "kepler", Method: "itp", Tolerance: 1e-10, MaxIterations: 60,
		},
		"tight": {
			Problem: "kepler", Method: "itp", Tolerance: 1e-15, MaxIterations: 120,
		},
		"newton": {
			Problem: "kepler", Method: "newton", Tolerance: 1e-14, MaxIterations: 50,
			Search: SearchConfig{Guess: 3.0},
		},
	},
	"kepler_scaled": {
		"tight": {
			Problem: "kepler_scaled", Method: "bisect", Tolerance: 1e-4, MaxIterations: 200,
		},
	},
	"flat11": {
		"careful": {
			Problem: "flat11", Method: "bisect", Tolerance: 1e-14, MaxIterations: 200,
		},
	},
	"wavy": {
		"cheb": {
			Problem: "wavy", Method: "cheb", Tolerance: 1e-12, MaxIterations: 200, Degree: 48,
		},
	},
	"sine": {
		"cheb": {
			Problem: "sine", Method: "cheb", Tolerance: 1e-12, MaxIterations: 200, Degree: 40,
		},
	},
	"expquad": {
		"brent": {
			Problem: "expquad", Method: "brent", Tolerance: 1e-10, MaxIterations: 120,
			Samples: 128,
		},
	},
	"parabola": {
		"brent": {
			Problem: "parabola", Method: "brent", Tolerance: 1e-10, MaxIterations: 120,
		},
	},
}

func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := problemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	return names
}
