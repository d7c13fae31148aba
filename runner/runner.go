// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner benchmarks gonum optimizers against the function registry.
package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/curioloop/benchfn/testfunc"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/optimize"
)

// Progress is reported after every finished run.
type Progress struct {
	Done, Total int
	Function    string
	Method      Method
}

// Runner executes a validated campaign.
// A Runner may be reused but Run must not be called concurrently.
type Runner struct {
	cfg     Config
	benches []*testfunc.Benchmark
	logger  *slog.Logger

	// Metrics receives one observation per finished run when not nil.
	Metrics *Metrics
	// OnProgress is called serially after every finished run when not nil.
	OnProgress func(Progress)
}

// New validates the config against reg and creates a runner for it.
func (c Config) New(reg *testfunc.Registry, logger *slog.Logger) (r *Runner, err error) {

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	switch {
	case reg == nil:
		err = errors.New("registry is required")
	default:
		err = c.Validate()
	}

	if err != nil {
		return
	}

	benches, err := reg.Select(c.Functions...)
	if err != nil {
		return
	}

	for i, b := range benches {
		if _, ok := b.Optimum(); !ok {
			return nil, errors.New("benchmark " + b.Name() + " has no known optimum")
		}
		if c.Dim > 0 && b.Variadic() {
			if benches[i], err = b.WithDim(c.Dim); err != nil {
				return
			}
		}
	}

	c.Methods = slices.Clone(c.Methods)
	r = &Runner{cfg: c, benches: benches, logger: logger}
	return
}

// Config returns the campaign config.
func (r *Runner) Config() Config { return r.cfg }

type job struct {
	bench  *testfunc.Benchmark
	method Method
	run    int
}

// Run executes every benchmark × optimizer × run combination.
// Outcomes are ordered by benchmark, optimizer and run regardless of completion order.
func (r *Runner) Run(ctx context.Context) (*Report, error) {

	var jobs []job
	for _, b := range r.benches {
		for _, m := range r.cfg.Methods {
			for k := range r.cfg.Runs {
				jobs = append(jobs, job{b, m, k})
			}
		}
	}

	report := &Report{
		ID:       uuid.NewString(),
		Started:  time.Now(),
		Outcomes: make([]Outcome, len(jobs)),
	}

	r.logger.Info("campaign started",
		"id", report.ID,
		"functions", len(r.benches),
		"methods", len(r.cfg.Methods),
		"runs", len(jobs),
		"workers", r.cfg.workers())

	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.workers())
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := r.runOne(gctx, j)
			if err != nil {
				return err
			}
			report.Outcomes[i] = o
			r.Metrics.observe(&o)

			r.logger.Debug("run finished",
				"function", o.Function,
				"method", o.Method,
				"run", o.Run,
				"best", o.Best,
				"evaluations", o.Evaluations,
				"status", o.Status,
				"success", o.Success)

			mu.Lock()
			defer mu.Unlock()
			done++
			if r.OnProgress != nil {
				r.OnProgress(Progress{Done: done, Total: len(jobs), Function: o.Function, Method: o.Method})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Elapsed = time.Since(report.Started)
	r.logger.Info("campaign finished", "id", report.ID, "elapsed", report.Elapsed)
	return report, nil
}

// runOne performs one optimizer run. Only context cancellation is returned as an error,
// optimizer failures are recorded in the outcome.
func (r *Runner) runOne(ctx context.Context, j job) (Outcome, error) {

	b, stop := j.bench, r.cfg.Stop
	src := rand.NewPCG(r.cfg.Seed, uint64(j.run))
	x0 := uniform(b.Bounds(), rand.New(src))

	obj := &objective{bench: b}
	problem, method, settings, err := j.method.setup(b, obj, stop, src)
	if err != nil {
		return Outcome{}, err
	}
	problem.Status = func() (optimize.Status, error) {
		if err := ctx.Err(); err != nil {
			return optimize.Failure, err
		}
		return optimize.NotTerminated, nil
	}

	o := Outcome{
		Function: b.Name(),
		Method:   j.method,
		Run:      j.run,
		Best:     math.NaN(),
	}

	start := time.Now()
	res, err := optimize.Minimize(problem, x0, settings, method)
	o.Elapsed = time.Since(start)
	o.Evaluations = obj.evals.Load()

	if cerr := ctx.Err(); cerr != nil {
		return o, cerr
	}
	if err != nil {
		o.Err = err.Error()
	}
	if res != nil {
		o.Best, o.X, o.Status = res.F, res.X, res.Status.String()
	}

	optimum, _ := b.Optimum()
	o.Success = !math.IsNaN(o.Best) && isClose(o.Best, optimum, r.cfg.AbsTol, r.cfg.RelTol)
	return o, nil
}
