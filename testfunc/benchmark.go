// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfunc

import (
	"math"
	"slices"
)

// Penalty is returned by constrained functions for points outside their feasible region.
// It is finite so gradient-free optimizers can still rank infeasible points.
const Penalty = 1e6

// Bound represents the closed interval of one variable.
type Bound struct {
	Lower, Upper float64
}

// Width returns Upper - Lower.
func (b Bound) Width() float64 { return b.Upper - b.Lower }

// Contains reports whether v lies in [Lower, Upper].
func (b Bound) Contains(v float64) bool { return v >= b.Lower && v <= b.Upper }

// Repeat returns n copies of b.
func (b Bound) Repeat(n int) []Bound {
	return slices.Repeat([]Bound{b}, n)
}

// Func is the evaluation rule shared by every benchmark: 𝒇(𝐱) : ℝⁿ → ℝ.
// The length of x is checked by the Benchmark before Func is called.
type Func func(x []float64) float64

// Family groups benchmarks the same way the catalog is organized.
type Family string

const (
	Classical  Family = "classical"
	Multimodal Family = "multimodal"
	Nonlinear  Family = "nonlinear"
	Geometric  Family = "geometric"
)

// Spec declares a benchmark before it is admitted into a Registry.
type Spec struct {
	Name   string
	Func   Func
	Bounds []Bound // One interval per dimension, the arity is len(Bounds).
	// Argmin is a documented global minimizer, nil when the optimum is unknown.
	Argmin []float64
	// Optimum is the documented global minimum, ignored when Argmin is nil.
	Optimum float64
	// Variadic marks formulas defined for any dimension ≥ 2.
	Variadic    bool
	Constrained bool
	Family      Family
}

// Benchmark is an immutable registry entry.
type Benchmark struct {
	spec Spec
}

func (b *Benchmark) Name() string      { return b.spec.Name }
func (b *Benchmark) Dim() int          { return len(b.spec.Bounds) }
func (b *Benchmark) Family() Family    { return b.spec.Family }
func (b *Benchmark) Variadic() bool    { return b.spec.Variadic }
func (b *Benchmark) Constrained() bool { return b.spec.Constrained }

// Bounds returns a copy of the per-dimension domain.
func (b *Benchmark) Bounds() []Bound { return slices.Clone(b.spec.Bounds) }

// Optimum returns the documented global minimum and whether one is known.
func (b *Benchmark) Optimum() (float64, bool) {
	return b.spec.Optimum, b.spec.Argmin != nil
}

// Argmin returns a copy of the documented global minimizer, nil if unknown.
func (b *Benchmark) Argmin() []float64 { return slices.Clone(b.spec.Argmin) }

// Eval evaluates the benchmark at x.
// It panics with a *DimensionError when len(x) does not match the arity.
func (b *Benchmark) Eval(x []float64) float64 {
	if len(x) != len(b.spec.Bounds) {
		panic(&DimensionError{Name: b.spec.Name, Want: len(b.spec.Bounds), Got: len(x)})
	}
	return b.spec.Func(x)
}

// Evaluate is the checked variant of Eval.
func (b *Benchmark) Evaluate(x []float64) (float64, error) {
	if len(x) != len(b.spec.Bounds) {
		return math.NaN(), &DimensionError{Name: b.spec.Name, Want: len(b.spec.Bounds), Got: len(x)}
	}
	return b.spec.Func(x), nil
}

// Eval2 evaluates a 2-D benchmark at (x, y) for plotting.
func (b *Benchmark) Eval2(x, y float64) float64 {
	return b.Eval([]float64{x, y})
}

// Contains reports whether x lies inside the bounding box.
func (b *Benchmark) Contains(x []float64) bool {
	if len(x) != len(b.spec.Bounds) {
		return false
	}
	for i, bnd := range b.spec.Bounds {
		if !bnd.Contains(x[i]) {
			return false
		}
	}
	return true
}

// Clamp projects x onto the bounding box in place and returns it.
func (b *Benchmark) Clamp(x []float64) []float64 {
	if len(x) != len(b.spec.Bounds) {
		panic(&DimensionError{Name: b.spec.Name, Want: len(b.spec.Bounds), Got: len(x)})
	}
	for i, bnd := range b.spec.Bounds {
		x[i] = min(max(x[i], bnd.Lower), bnd.Upper)
	}
	return x
}

// WithDim returns an n-dimensional instance of a variadic benchmark.
// Bounds and argmin are replicated from the first dimension and
// the optimum is re-evaluated at the replicated argmin.
func (b *Benchmark) WithDim(n int) (*Benchmark, error) {
	switch {
	case !b.spec.Variadic:
		return nil, &DimensionError{Name: b.spec.Name, Want: b.Dim(), Got: n}
	case n < 2:
		return nil, definitionError(b.spec.Name, "dimension must not less than 2")
	case n == b.Dim():
		return b, nil
	}

	s := b.spec
	s.Bounds = s.Bounds[0].Repeat(n)
	if s.Argmin != nil {
		s.Argmin = slices.Repeat(s.Argmin[:1], n)
		s.Optimum = s.Func(s.Argmin)
	}
	return &Benchmark{spec: s}, nil
}

func (b *Benchmark) String() string {
	return "<Benchmark " + b.spec.Name + ">"
}
