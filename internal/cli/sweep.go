package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"infoca/internal/sweep"
)

// SweepOutput is the JSON payload of the sweep command.
type SweepOutput struct {
	Config  sweep.Config   `json:"config"`
	Results []sweep.Result `json:"results"`
	Top     []sweep.Result `json:"top,omitempty"`
}

type sweepOptions struct {
	cfg    sweep.Config
	config string
	out    string
	top    int
	by     string
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &sweepOptions{cfg: sweep.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate every elementary rule in parallel",
		Long: `Run one independent automaton per rule on a bounded worker pool and
collect the final-state metrics of each. With --out the results are written
one "[H, H(X,Y), I]" line per rule, in rule order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(rootOpts, opts, cmd)
		},
	}

	def := opts.cfg
	cmd.Flags().IntVarP(&opts.cfg.Size, "size", "n", def.Size, "number of cells per automaton")
	cmd.Flags().IntVarP(&opts.cfg.Steps, "steps", "t", def.Steps, "generations per automaton")
	cmd.Flags().Int64Var(&opts.cfg.Seed, "seed", def.Seed, "seed shared by every initial state")
	cmd.Flags().IntVarP(&opts.cfg.Workers, "workers", "w", def.Workers, "parallel workers")
	cmd.Flags().IntSliceVar(&opts.cfg.Rules, "rules", nil, "rules to evaluate (default all 256)")
	cmd.Flags().StringVar(&opts.config, "config", "", "YAML file with size, steps, seed, workers and rules")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write results to this file")
	cmd.Flags().IntVar(&opts.top, "top", 5, "number of top rules to report")
	cmd.Flags().StringVar(&opts.by, "by", string(sweep.ByMutualInformation), "ranking metric (entropy|joint|mutual)")

	return cmd
}

func runSweep(rootOpts *RootOptions, opts *sweepOptions, cmd *cobra.Command) error {
	out := rootOpts.formatter(cmd)
	logger := rootOpts.logger(cmd.ErrOrStderr())

	cfg, err := resolveSweepConfig(opts, cmd)
	if err != nil {
		out.Error(err)
		return err
	}
	metric, err := sweep.ParseMetric(opts.by)
	if err != nil {
		err = WrapExitError(ExitCommandError, "invalid --by", err)
		out.Error(err)
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := sweep.Run(ctx, cfg, logger)
	if err != nil {
		err = classify("sweep", err)
		out.Error(err)
		return err
	}

	if opts.out != "" {
		if err := writeResultsFile(opts.out, results); err != nil {
			err = WrapExitError(ExitFailure, "write results", err)
			out.Error(err)
			return err
		}
		out.VerboseLog("wrote %d results to %s", len(results), opts.out)
	}

	top := sweep.Top(results, metric, opts.top)
	if out.JSON() {
		return out.Success(SweepOutput{Config: cfg, Results: results, Top: top})
	}

	w := out.Writer
	fmt.Fprintf(w, "evaluated %d rules (size %d, steps %d, seed %d)\n", len(results), cfg.Size, cfg.Steps, cfg.Seed)
	fmt.Fprintf(w, "top %d by %s:\n", len(top), metric)
	for i, r := range top {
		fmt.Fprintf(w, "%2d) rule %3d  H=%.4f  H(X,Y)=%.4f  I=%.4f\n",
			i+1, r.Rule, r.Entropy, r.JointUncertainty, r.MutualInformation)
	}
	return nil
}

func resolveSweepConfig(opts *sweepOptions, cmd *cobra.Command) (sweep.Config, error) {
	cfg := opts.cfg
	if opts.config != "" {
		fileCfg, err := sweep.LoadConfig(opts.config)
		if err != nil {
			return cfg, WrapExitError(ExitCommandError, "load config", err)
		}
		flags := cmd.Flags()
		if !flags.Changed("size") {
			cfg.Size = fileCfg.Size
		}
		if !flags.Changed("steps") {
			cfg.Steps = fileCfg.Steps
		}
		if !flags.Changed("seed") {
			cfg.Seed = fileCfg.Seed
		}
		if !flags.Changed("workers") {
			cfg.Workers = fileCfg.Workers
		}
		if !flags.Changed("rules") {
			cfg.Rules = fileCfg.Rules
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, classify("invalid sweep", err)
	}
	return cfg, nil
}

func writeResultsFile(path string, results []sweep.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return sweep.WriteResults(f, results)
}
