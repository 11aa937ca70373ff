package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultResolution = 20.0
	DefaultCourant    = 0.99
	DefaultSteps      = 200
	DefaultSize       = 1.0
)

type Config struct {
	Mode       string         `yaml:"mode"`
	Size       [3]float64     `yaml:"size"`
	Resolution float64        `yaml:"resolution"`
	Courant    float64        `yaml:"courant"`
	Steps      int            `yaml:"steps"`
	Medium     MaterialConfig `yaml:"medium"`
	Objects    []ObjectConfig `yaml:"objects"`
	Sources    []SourceConfig `yaml:"sources"`
	Probes     []ProbeConfig  `yaml:"probes"`
}

type MaterialConfig struct {
	Type      string  `yaml:"type"`
	Index     float64 `yaml:"index"`
	Eps       float64 `yaml:"eps"`
	Mu        float64 `yaml:"mu"`
	EpsInf    float64 `yaml:"eps_inf"`
	OmegaP    float64 `yaml:"omega_p"`
	GammaP    float64 `yaml:"gamma_p"`
	Thickness float64 `yaml:"thickness"`
}

type ObjectConfig struct {
	Shape    string         `yaml:"shape"`
	Material MaterialConfig `yaml:"material"`
	Center   [3]float64     `yaml:"center"`
	Size     [3]float64     `yaml:"size"`
	Radius   float64        `yaml:"radius"`
	Axis     string         `yaml:"axis"`
	Height   float64        `yaml:"height"`
}

type SourceConfig struct {
	Component string     `yaml:"component"`
	Shape     string     `yaml:"shape,omitempty"`
	Pos       [3]float64 `yaml:"pos"`
	Axis      string     `yaml:"axis,omitempty"`
	Waveform  string     `yaml:"waveform"`
	Freq      float64    `yaml:"freq"`
	Amp       float64    `yaml:"amp"`
	Phase     float64    `yaml:"phase"`
	Width     float64    `yaml:"width"`
	Delay     float64    `yaml:"delay"`
	Hard      bool       `yaml:"hard"`
}

type ProbeConfig struct {
	Component string     `yaml:"component"`
	Pos       [3]float64 `yaml:"pos"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:       "3d",
		Size:       [3]float64{DefaultSize, DefaultSize, DefaultSize},
		Resolution: DefaultResolution,
		Courant:    DefaultCourant,
		Steps:      DefaultSteps,
		Medium:     MaterialConfig{Type: "dielectric", Index: 1.0},
		Sources: []SourceConfig{
			{
				Component: "ez",
				Pos:       [3]float64{0, 0, 0},
				Waveform:  "continuous",
				Freq:      1.0,
				Amp:       1.0,
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
