// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/curioloop/benchfn/numdiff"
	"github.com/curioloop/benchfn/testfunc"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// Method names an optimizer of gonum/optimize.
type Method string

const (
	// NelderMead is the downhill simplex started from a uniform random point of the box.
	NelderMead Method = "nelder-mead"
	// CMAES is the covariance matrix adaptation evolution strategy, a global population method.
	CMAES Method = "cmaes"
	// LBFGS is the limited memory BFGS fed with a bound-aware finite-difference gradient.
	LBFGS Method = "lbfgs"
	// GuessAndCheck samples the box uniformly and keeps the best point.
	GuessAndCheck Method = "guess-and-check"
)

// Methods returns every supported optimizer.
func Methods() []Method {
	return []Method{NelderMead, CMAES, LBFGS, GuessAndCheck}
}

// ParseMethod returns the method with the given name.
func ParseMethod(name string) (Method, error) {
	for _, m := range Methods() {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown optimizer %q", name)
}

// objective counts evaluations and returns Penalty outside the box.
type objective struct {
	bench *testfunc.Benchmark
	evals atomic.Int64
}

func (o *objective) eval(x []float64) float64 {
	o.evals.Add(1)
	if !o.bench.Contains(x) {
		return testfunc.Penalty
	}
	return o.bench.Eval(x)
}

// meanWidth returns the average edge length of the bounding box.
func meanWidth(bounds []testfunc.Bound) float64 {
	var w float64
	for _, b := range bounds {
		w += b.Width()
	}
	return w / float64(len(bounds))
}

// uniform draws a point of the box.
func uniform(bounds []testfunc.Bound, rnd *rand.Rand) []float64 {
	x := make([]float64, len(bounds))
	for i, b := range bounds {
		x[i] = b.Lower + rnd.Float64()*b.Width()
	}
	return x
}

// setup builds the gonum problem and method for one run of m on b.
// Stochastic methods draw from src.
func (m Method) setup(b *testfunc.Benchmark, obj *objective, stop Termination, src rand.Source) (optimize.Problem, optimize.Method, *optimize.Settings, error) {

	bounds := b.Bounds()
	problem := optimize.Problem{Func: obj.eval}
	settings := &optimize.Settings{
		MajorIterations: stop.MaxIterations,
		FuncEvaluations: stop.MaxEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   stop.Tolerance,
			Iterations: stop.Patience,
		},
	}

	var method optimize.Method
	switch m {
	case NelderMead:
		method = &optimize.NelderMead{SimplexSize: 0.05 * meanWidth(bounds)}
	case CMAES:
		method = &optimize.CmaEsChol{InitStepSize: 0.25 * meanWidth(bounds), Src: src}
	case LBFGS:
		grad := numdiff.Gradient{Method: numdiff.Central, Bounds: bounds}
		problem.Grad = grad.Grad(obj.eval)
		method = &optimize.LBFGS{}
	case GuessAndCheck:
		box := make([]r1.Interval, len(bounds))
		for i, bnd := range bounds {
			box[i] = r1.Interval{Min: bnd.Lower, Max: bnd.Upper}
		}
		method = &optimize.GuessAndCheck{Rander: distmv.NewUniform(box, src)}
		settings.MajorIterations = 0
		settings.Converger = optimize.NeverTerminate{}
	default:
		return problem, nil, nil, fmt.Errorf("unknown optimizer %q", m)
	}
	return problem, method, settings, nil
}
