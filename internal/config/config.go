package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGradientSpec = "bluered"
	DefaultResolution   = 1000
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

type Config struct {
	DataDir         string       `yaml:"data_dir"`
	VisSetPath      string       `yaml:"visset"`
	DefaultGradient string       `yaml:"default_gradient"`
	Resolution      int          `yaml:"sample_resolution"`
	Decode          DecodeConfig `yaml:"decode"`
	Log             LogConfig    `yaml:"log"`
}

type DecodeConfig struct {
	DropZeros       bool     `yaml:"drop_zeros"`
	ExcludedNodeIDs []uint32 `yaml:"excluded_node_ids"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:         ".",
		VisSetPath:      "visset.json",
		DefaultGradient: DefaultGradientSpec,
		Resolution:      DefaultResolution,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
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
