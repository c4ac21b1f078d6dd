package app

import (
	"strconv"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim    string
	Rule   int
	Width  int
	Height int
	Scale  int
	Rate   int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "elementary", Rule: 126, Width: 256, Height: 256, Scale: 3, Rate: 30, TPS: 60, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVarP(&c.Rule, "rule", "r", c.Rule, "Wolfram rule number (0-255)")
	fs.IntVarP(&c.Width, "width", "w", c.Width, "cells per generation")
	fs.IntVar(&c.Height, "height", c.Height, "generations kept on screen")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial state")
}

// SimConfig renders the sim-specific settings in the registry's map form.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"rule": strconv.Itoa(c.Rule),
	}
}
