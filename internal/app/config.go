package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the demo configuration. Every field is optional.
//
//	log:
//	  level: debug   # disabled, trace, debug, info, warn, error
//	  format: color  # empty (autodetect), color, text, json
//	  output: stdout # stdout, stderr
type Config struct {
	Log LogConfig `yaml:"log"`
}

// LogConfig selects the level, format and output of the demo logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Output: "stdout",
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
