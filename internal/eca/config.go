package eca

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds parameters for a single automaton run.
type Config struct {
	Size  int   `yaml:"size" json:"size"`
	Rule  int   `yaml:"rule" json:"rule"`
	Steps int   `yaml:"steps" json:"steps"`
	Seed  int64 `yaml:"seed" json:"seed"`
}

// DefaultConfig returns the default configuration: rule 126 on 150 cells for
// 100 generations.
func DefaultConfig() Config {
	return Config{Size: 150, Rule: 126, Steps: 100, Seed: 0}
}

// Validate checks the configuration against the engine's parameter domain.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return paramErr("size", c.Size, "must be positive")
	}
	if c.Rule < 0 || c.Rule > 255 {
		return paramErr("rule", c.Rule, "must be in [0,255]")
	}
	if c.Steps < 0 {
		return paramErr("steps", c.Steps, "must be non-negative")
	}
	return nil
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML document over DefaultConfig. Missing keys keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}
