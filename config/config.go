package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the ambient configuration surface. Gameplay tuning is fixed
// in the parameter package and deliberately not configurable.
type Config struct {
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	Session SessionConfig `toml:"session"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`  // zap level name: debug, info, warn, error
	Format  string `toml:"format"` // "json" or "console"
	File    string `toml:"file"`   // tcell owns the terminal, so logs go to a file
}

type SessionConfig struct {
	DataDir string `toml:"data_dir"`
}

// Default returns the built-in configuration used when no file is given
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Format:  "json",
			File:    "serpent.log",
		},
		Session: SessionConfig{
			DataDir: "data",
		},
	}
}

// Load reads a TOML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
