package main

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Listen   string `yaml:"listen"`
	Password string `yaml:"password"`
	Inputs   string `yaml:"inputs"`
	Postgres string `yaml:"postgres"`
	LogLevel string `yaml:"log_level"`
	COS      *COS   `yaml:"cos"`
}

func defaultConfig() *Config {
	return &Config{
		Listen:   ":4004",
		Inputs:   "inputs",
		LogLevel: "info",
		COS:      &COS{},
	}
}

// loadConfig reads the yaml config at path.
// If the file does not exist a default one is written and created is true.
func loadConfig(path string) (config *Config, created bool, err error) {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		out, err := yaml.Marshal(defaultConfig())
		if err != nil {
			return nil, false, err
		}
		if err := os.WriteFile(path, out, 0644); err != nil {
			return nil, false, err
		}
		return defaultConfig(), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	config = defaultConfig()
	if err := yaml.Unmarshal(bytes, config); err != nil {
		return nil, false, err
	}
	if config.COS == nil {
		config.COS = &COS{}
	}
	return config, false, nil
}
