package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTolerance     = 1e-12
	DefaultMaxIterations = 200
	DefaultStep          = 0.1
	DefaultGrow          = 2.0
	DefaultMaxExpand     = 64
	DefaultDegree        = 16
	DefaultSamples       = 64
)

type Config struct {
	Problem       string       `yaml:"problem"`
	Method        string       `yaml:"method"`
	Tolerance     float64      `yaml:"tolerance"`
	MaxIterations int          `yaml:"max_iterations"`
	Interval      Interval     `yaml:"interval"`
	Search        SearchConfig `yaml:"search"`
	ITP           ITPConfig    `yaml:"itp"`
	Degree        int          `yaml:"degree"`
	Samples       int          `yaml:"samples"`
}

// Interval overrides the problem's natural domain when both ends are set.
type Interval struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

func (i Interval) IsSet() bool { return i.Lo != 0 || i.Hi != 0 }

// SearchConfig drives bracket expansion and the open (point-started) methods.
type SearchConfig struct {
	Guess     float64 `yaml:"guess"`
	Guess2    float64 `yaml:"guess2"`
	Step      float64 `yaml:"step"`
	Grow      float64 `yaml:"grow"`
	MaxExpand int     `yaml:"max_expand"`
}

// ITPConfig tunes the ITP refiner; zero values mean defaults.
type ITPConfig struct {
	K1 float64 `yaml:"k1"`
	K2 float64 `yaml:"k2"`
	N0 int     `yaml:"n0"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem:       "kepler",
		Method:        "itp",
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Search: SearchConfig{
			Step:      DefaultStep,
			Grow:      DefaultGrow,
			MaxExpand: DefaultMaxExpand,
		},
		Degree:  DefaultDegree,
		Samples: DefaultSamples,
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
