package eca

import (
	"fmt"
	"log/slog"
)

// Report is the outcome of Run.
type Report struct {
	Config  Config  `json:"config"`
	Metrics Metrics `json:"metrics"`

	Engine *Engine `json:"-"`
}

// Run builds an engine from cfg, seeds it, advances cfg.Steps generations and
// measures the final state.
func Run(cfg Config, logger *slog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e, err := NewFromConfig(cfg, WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := e.SetInitialState(cfg.Seed); err != nil {
		return nil, fmt.Errorf("seed rule %d: %w", cfg.Rule, err)
	}
	if err := e.UpdateAll(cfg.Steps); err != nil {
		return nil, fmt.Errorf("evolve rule %d: %w", cfg.Rule, err)
	}
	m, err := e.Metrics()
	if err != nil {
		return nil, fmt.Errorf("measure rule %d: %w", cfg.Rule, err)
	}
	return &Report{Config: cfg, Metrics: m, Engine: e}, nil
}
