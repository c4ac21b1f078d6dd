package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"infoca/internal/eca"
)

// RunOutput is the JSON payload of the run command.
type RunOutput struct {
	Config     eca.Config   `json:"config"`
	Metrics    *eca.Metrics `json:"metrics,omitempty"`
	Trajectory []string     `json:"trajectory,omitempty"`
}

type runOptions struct {
	cfg       eca.Config
	config    string
	show      bool
	noMetrics bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &runOptions{cfg: eca.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve one rule and report its final-state metrics",
		Long: `Seed a random ring of --size cells, apply --rule for --steps generations
and report H(X), H(X,Y) and I(X:Y) of the final state.

Values from --config (YAML) are overridden by flags given explicitly.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, opts, cmd)
		},
	}

	def := opts.cfg
	cmd.Flags().IntVarP(&opts.cfg.Size, "size", "n", def.Size, "number of cells")
	cmd.Flags().IntVarP(&opts.cfg.Rule, "rule", "r", def.Rule, "Wolfram rule number (0-255)")
	cmd.Flags().IntVarP(&opts.cfg.Steps, "steps", "t", def.Steps, "generations to evolve")
	cmd.Flags().Int64Var(&opts.cfg.Seed, "seed", def.Seed, "seed for the initial state")
	cmd.Flags().StringVar(&opts.config, "config", "", "YAML file with size, rule, steps and seed")
	cmd.Flags().BoolVar(&opts.show, "show", false, "print the trajectory")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "skip the information metrics")

	return cmd
}

func runRun(rootOpts *RootOptions, opts *runOptions, cmd *cobra.Command) error {
	out := rootOpts.formatter(cmd)
	logger := rootOpts.logger(cmd.ErrOrStderr())

	cfg, err := resolveRunConfig(opts, cmd)
	if err != nil {
		out.Error(err)
		return err
	}

	e, err := eca.NewFromConfig(cfg, eca.WithLogger(logger))
	if err == nil {
		err = e.SetInitialState(cfg.Seed)
	}
	if err == nil {
		err = e.UpdateAll(cfg.Steps)
	}
	if err != nil {
		err = classify(fmt.Sprintf("rule %d", cfg.Rule), err)
		out.Error(err)
		return err
	}
	logger.Debug("evolved", "rule", cfg.Rule, "size", cfg.Size, "states", e.Len())

	result := RunOutput{Config: cfg}
	if !opts.noMetrics {
		m, err := e.Metrics()
		if err != nil {
			err = classify("metrics", err)
			out.Error(err)
			return err
		}
		result.Metrics = &m
	}
	var traj bytes.Buffer
	if opts.show {
		if err := e.ShowTrajectory(&traj); err != nil {
			return WrapExitError(ExitFailure, "render trajectory", err)
		}
	}

	if out.JSON() {
		if opts.show {
			result.Trajectory = strings.Split(strings.TrimSuffix(traj.String(), "\n"), "\n")
		}
		return out.Success(result)
	}

	w := out.Writer
	if opts.show {
		if _, err := w.Write(traj.Bytes()); err != nil {
			return WrapExitError(ExitFailure, "write trajectory", err)
		}
	}
	fmt.Fprintf(w, "rule %d  size %d  steps %d  seed %d\n", cfg.Rule, cfg.Size, cfg.Steps, cfg.Seed)
	if result.Metrics != nil {
		fmt.Fprintf(w, "H(X)   = %.6f\n", result.Metrics.Entropy)
		fmt.Fprintf(w, "H(X,Y) = %.6f\n", result.Metrics.JointUncertainty)
		fmt.Fprintf(w, "I(X:Y) = %.6f\n", result.Metrics.MutualInformation)
	}
	return nil
}

// resolveRunConfig layers explicitly set flags over the YAML file, if any.
func resolveRunConfig(opts *runOptions, cmd *cobra.Command) (eca.Config, error) {
	cfg := opts.cfg
	if opts.config != "" {
		fileCfg, err := eca.LoadConfig(opts.config)
		if err != nil {
			return cfg, classify("load config", err)
		}
		flags := cmd.Flags()
		if !flags.Changed("size") {
			cfg.Size = fileCfg.Size
		}
		if !flags.Changed("rule") {
			cfg.Rule = fileCfg.Rule
		}
		if !flags.Changed("steps") {
			cfg.Steps = fileCfg.Steps
		}
		if !flags.Changed("seed") {
			cfg.Seed = fileCfg.Seed
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, classify("invalid run", err)
	}
	return cfg, nil
}
