package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration for the CLI. Flags override it.
//
// Example:
//
//	logging:
//	  level: debug
//	  file: minima.log
//	  console: true
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig selects the trace sink variant and its verbosity.
type LoggingConfig struct {
	Level   string `yaml:"level"`   // "debug" or "info"
	File    string `yaml:"file"`    // empty disables the file sink
	Console bool   `yaml:"console"` // enables the console sink
}

// defaultConfig is used when no config file is given: console only, info.
func defaultConfig() Config {
	return Config{Logging: LoggingConfig{Level: "info", Console: true}}
}

// loadConfig reads and parses the YAML file at path.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
