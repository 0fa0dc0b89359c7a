// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli wires the benchmark runner to a cobra command.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/internal/bench"
)

type rootOptions struct {
	configPath   string
	samples      int
	timerSamples int
	warmup       int
	lengths      []int
	timerDelays  []time.Duration
	verbose      bool
}

// NewRootCommand builds the coopbench command. Configuration precedence
// is defaults, then the YAML config file, then explicitly set flags.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

func newRootCommand() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "coopbench",
		Short: "Measure early-exit guards against always-suspending loops",
		Long: `coopbench runs a matrix of cooperative traversal scenarios and reports
per-scenario timing: guarded vs unguarded entry, stack vs heap task
placement, and yield vs timer suspension, over configurable sequence
lengths.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file")
	f.IntVar(&opts.samples, "samples", 0, "timed iterations per yield scenario")
	f.IntVar(&opts.timerSamples, "timer-samples", 0, "timed iterations per timer scenario")
	f.IntVar(&opts.warmup, "warmup", 0, "untimed warmup iterations per scenario")
	f.IntSliceVar(&opts.lengths, "lengths", nil, "sequence lengths in the scenario matrix")
	f.DurationSliceVar(&opts.timerDelays, "timer-delays", nil, "timer delays in the scenario matrix")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd, opts
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "coopbench"})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	runner := bench.NewRunner(cfg, coop.SysClock{}, logger)
	report, err := runner.Run()
	if err != nil {
		return fmt.Errorf("benchmark run: %w", err)
	}
	return report.Render(cmd.OutOrStdout())
}

func resolveConfig(cmd *cobra.Command, opts *rootOptions) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := bench.LoadConfig(opts.configPath)
		if err != nil {
			return bench.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("samples") {
		cfg.Samples = opts.samples
	}
	if flags.Changed("timer-samples") {
		cfg.TimerSamples = opts.timerSamples
	}
	if flags.Changed("warmup") {
		cfg.Warmup = opts.warmup
	}
	if flags.Changed("lengths") {
		cfg.Lengths = opts.lengths
	}
	if flags.Changed("timer-delays") {
		cfg.TimerDelays = make([]bench.Duration, len(opts.timerDelays))
		for i, d := range opts.timerDelays {
			cfg.TimerDelays[i] = bench.Duration(d)
		}
	}

	if err := cfg.Validate(); err != nil {
		return bench.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
