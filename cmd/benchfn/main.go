// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchfn lists, evaluates, samples and benchmarks optimizer test functions.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/curioloop/benchfn/testfunc"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := runContext(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand.
type app struct {
	out, errOut io.Writer
	logLevel    string
	logger      *slog.Logger
	reg         *testfunc.Registry
}

func run(out, errOut io.Writer, args []string) error {
	return runContext(context.Background(), out, errOut, args)
}

func runContext(ctx context.Context, out, errOut io.Writer, args []string) error {
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, reg: testfunc.Default()}

	root := &cobra.Command{
		Use:   "benchfn",
		Short: "Benchmark functions for numerical optimizers",
		Long: `benchfn ships a catalog of classic optimization test functions with their
search domains and known minima, and benchmarks gonum optimizers against them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newListCmd(a),
		newEvalCmd(a),
		newGridCmd(a),
		newRunCmd(a),
	)
	return root
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
