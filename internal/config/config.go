// Package config holds runtime settings for the assistant.
//
// Settings come from environment variables (parsed with caarlos0/env)
// and can be overridden by an optional YAML file.
package config

import (
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHistoryFile  = "physics_history.json"
	DefaultHistoryLimit = 10
)

type Config struct {
	// HistoryFile is the path of the persisted calculation log.
	HistoryFile string `env:"PHYSIKA_HISTORY_FILE" envDefault:"physics_history.json" yaml:"history_file"`

	// HistoryLimit caps how many entries the history views show.
	HistoryLimit int `env:"PHYSIKA_HISTORY_LIMIT" envDefault:"10" yaml:"history_limit"`

	// NoColor disables lipgloss styling in the interactive shell.
	NoColor bool `env:"PHYSIKA_NO_COLOR" yaml:"no_color"`
}

func Default() *Config {
	return &Config{
		HistoryFile:  DefaultHistoryFile,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// FromEnv builds a config from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load applies a YAML file on top of the given config.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
