// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/curioloop/benchfn/report"
	"github.com/curioloop/benchfn/runner"
	"github.com/spf13/cobra"
)

type runFlags struct {
	config      string
	methods     []string
	functions   []string
	runs        int
	seed        uint64
	concurrency int
	dim         int
	json        bool
	stats       bool
	quiet       bool
	metricsFile string
}

func newRunCmd(a *app) *cobra.Command {
	var fl runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark optimizers against the registered functions",
		Long: `Run every selected optimizer several times on every selected function
and print the best run of each pair. Flags override the YAML config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fl.load(cmd)
			if err != nil {
				return err
			}

			r, err := cfg.New(a.reg, a.logger)
			if err != nil {
				return err
			}
			if fl.metricsFile != "" {
				r.Metrics = runner.NewMetrics()
			}
			if !fl.quiet {
				p := report.NewProgress(a.errOut)
				defer p.Finish()
				r.OnProgress = p.Update
			}

			rep, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}

			if fl.metricsFile != "" {
				if err := r.Metrics.WriteTextfile(fl.metricsFile); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			if fl.json {
				return report.WriteJSON(a.out, rep)
			}
			opts := report.Options{Plain: !report.IsTerminal(a.out), Stats: fl.stats}
			return report.WriteTable(a.out, rep.Summaries(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fl.config, "config", "c", "", "YAML campaign file")
	f.StringSliceVarP(&fl.methods, "method", "m", nil, "optimizers: nelder-mead, cmaes, lbfgs, guess-and-check")
	f.StringSliceVarP(&fl.functions, "function", "f", nil, "benchmark functions, all when empty")
	f.IntVar(&fl.runs, "runs", 0, "independent runs per function and optimizer")
	f.Uint64Var(&fl.seed, "seed", 0, "base random seed")
	f.IntVar(&fl.concurrency, "concurrency", 0, "parallel runs, GOMAXPROCS when 0")
	f.IntVar(&fl.dim, "dim", 0, "dimension of variadic functions")
	f.BoolVar(&fl.json, "json", false, "print the full report as JSON")
	f.BoolVar(&fl.stats, "stats", false, "add mean, standard deviation and success rate columns")
	f.BoolVarP(&fl.quiet, "quiet", "q", false, "do not print progress")
	f.StringVar(&fl.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	return cmd
}

// load reads the config file when given and applies the flags set on the command line.
func (fl *runFlags) load(cmd *cobra.Command) (cfg runner.Config, err error) {

	cfg = runner.DefaultConfig()
	if fl.config != "" {
		if cfg, err = runner.LoadConfigFile(fl.config); err != nil {
			return
		}
	}

	changed := cmd.Flags().Changed
	if changed("method") {
		cfg.Methods = nil
		for _, name := range fl.methods {
			m, err := runner.ParseMethod(name)
			if err != nil {
				return cfg, err
			}
			cfg.Methods = append(cfg.Methods, m)
		}
	}
	if changed("function") {
		cfg.Functions = fl.functions
	}
	if changed("runs") {
		cfg.Runs = fl.runs
	}
	if changed("seed") {
		cfg.Seed = fl.seed
	}
	if changed("concurrency") {
		cfg.Concurrency = fl.concurrency
	}
	if changed("dim") {
		cfg.Dim = fl.dim
	}

	err = cfg.Validate()
	return
}
