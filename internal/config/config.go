package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGroup = "4/mmm"
	DefaultTheme = "amethyst"
	DefaultFPS   = 30
	DefaultZoom  = 1.0
)

type Config struct {
	Group      string       `yaml:"group"`
	System     string       `yaml:"system"`
	Theme      string       `yaml:"theme"`
	FPS        int          `yaml:"fps"`
	ShowAxes   bool         `yaml:"show_axes"`
	ShowPlanes bool         `yaml:"show_planes"`
	ShowCenter bool         `yaml:"show_center"`
	Camera     CameraConfig `yaml:"camera"`
}

type CameraConfig struct {
	RotX float64 `yaml:"rot_x"`
	RotY float64 `yaml:"rot_y"`
	Zoom float64 `yaml:"zoom"`
}

func DefaultConfig() *Config {
	return &Config{
		Group:      DefaultGroup,
		System:     "All",
		Theme:      DefaultTheme,
		FPS:        DefaultFPS,
		ShowAxes:   true,
		ShowPlanes: true,
		ShowCenter: true,
		Camera: CameraConfig{
			RotX: 0.4,
			RotY: -0.6,
			Zoom: DefaultZoom,
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
