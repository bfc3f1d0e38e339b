package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file schema. Every field has a flag
// counterpart; flags given on the command line win over the file.
type Config struct {
	Prompt        string `yaml:"prompt"`
	HistoryFile   string `yaml:"history_file"`
	Stifle        int    `yaml:"stifle"`
	MaxLineLength int    `yaml:"max_line_length"`
	Mask          string `yaml:"mask"`
	LogFile       string `yaml:"log_file"`
}

func defaultConfig() Config {
	return Config{Prompt: "> "}
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if c.Stifle < 0 {
		return fmt.Errorf("parse %s: stifle must not be negative", path)
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("parse %s: max_line_length must not be negative", path)
	}
	return nil
}
