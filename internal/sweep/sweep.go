// Package sweep evaluates many elementary rules in parallel. Every task owns
// its own engine, so workers share nothing but the result slice, and each
// writes only its own slot.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"infoca/internal/eca"
)

// Config controls a sweep. An empty Rules list means all 256 rules.
type Config struct {
	Size    int   `yaml:"size" json:"size"`
	Steps   int   `yaml:"steps" json:"steps"`
	Seed    int64 `yaml:"seed" json:"seed"`
	Workers int   `yaml:"workers" json:"workers"`
	Rules   []int `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// DefaultConfig mirrors the reference sweep: 1000 cells for 500 generations.
func DefaultConfig() Config {
	return Config{Size: 1000, Steps: 500, Seed: 0, Workers: runtime.NumCPU()}
}

// LoadConfig reads a YAML document over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read sweep config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse sweep config %s: %w", path, err)
	}
	return c, nil
}

// RuleList returns the rules the sweep will evaluate.
func (c Config) RuleList() []int {
	if len(c.Rules) > 0 {
		return append([]int(nil), c.Rules...)
	}
	all := make([]int, 256)
	for i := range all {
		all[i] = i
	}
	return all
}

func (c Config) run(rule int) eca.Config {
	return eca.Config{Size: c.Size, Rule: rule, Steps: c.Steps, Seed: c.Seed}
}

// Validate checks every run the sweep would start.
func (c Config) Validate() error {
	for _, rule := range c.RuleList() {
		if err := c.run(rule).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Result is the immutable record one task contributes.
type Result struct {
	Rule              int     `json:"rule"`
	Entropy           float64 `json:"entropy"`
	JointUncertainty  float64 `json:"joint_uncertainty"`
	MutualInformation float64 `json:"mutual_information"`
}

// Run evaluates every rule of cfg on a bounded worker pool and returns the
// results ordered by rule. The first failure cancels outstanding tasks.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rules := cfg.RuleList()
	results := make([]Result, len(rules))

	start := time.Now()
	logger.Info("sweep started", "rules", len(rules), "workers", workers, "size", cfg.Size, "steps", cfg.Steps)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rule := range rules {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := eca.Run(cfg.run(rule), logger)
			if err != nil {
				return fmt.Errorf("rule %d: %w", rule, err)
			}
			results[i] = Result{
				Rule:              rule,
				Entropy:           rep.Metrics.Entropy,
				JointUncertainty:  rep.Metrics.JointUncertainty,
				MutualInformation: rep.Metrics.MutualInformation,
			}
			logger.Debug("rule evaluated", "rule", rule, "entropy", rep.Metrics.Entropy)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Rule < results[j].Rule })
	logger.Info("sweep finished", "rules", len(results), "elapsed", time.Since(start).Round(time.Millisecond))
	return results, nil
}
