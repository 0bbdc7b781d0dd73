package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultIntegrand = "heat"
	DefaultRule      = "simpson13"
	DefaultStart     = 0.0
	DefaultEnd       = 8.0
	DefaultBackend   = "gochart"
	DefaultOutput    = "simpson.png"
	DefaultWidth     = 8.0
	DefaultHeight    = 5.0
	DefaultTermWidth = 64
	DefaultTermRows  = 10
)

type Config struct {
	Integrand string             `yaml:"integrand"`
	Params    map[string]float64 `yaml:"params,omitempty"`
	Rule      string             `yaml:"rule"`
	Start     float64            `yaml:"t_start"`
	End       float64            `yaml:"t_end"`
	Intervals []int              `yaml:"intervals"`
	Round     bool               `yaml:"round"`
	Plot      PlotConfig         `yaml:"plot"`
}

type PlotConfig struct {
	Backend  string         `yaml:"backend"`
	Output   string         `yaml:"output"`
	Format   string         `yaml:"format,omitempty"`
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`
	Terminal TerminalConfig `yaml:"terminal"`
}

type TerminalConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Plain  bool `yaml:"plain"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrand: DefaultIntegrand,
		Rule:      DefaultRule,
		Start:     DefaultStart,
		End:       DefaultEnd,
		Intervals: []int{4, 8, 16, 32},
		Round:     true,
		Plot: PlotConfig{
			Backend: DefaultBackend,
			Output:  DefaultOutput,
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Terminal: TerminalConfig{
				Width:  DefaultTermWidth,
				Height: DefaultTermRows,
			},
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
