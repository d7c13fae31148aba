package numdiff

import (
	"errors"
	"math"

	"github.com/curioloop/benchfn/testfunc"
)

var sqrtEps = math.Sqrt(math.Nextafter(1, 2) - 1)
var cubeEps = math.Pow(math.Nextafter(1, 2)-1, float64(1)/3)

type Method int

const (
	// Forward use the first order accuracy forward difference.
	Forward Method = iota
	// Central use central difference in interior points and the second order accuracy
	// forward or backward difference near the boundary.
	Central
)

// Gradient estimates the gradient of a scalar objective 𝒇(𝐱) : ℝⁿ → ℝ by finite differences.
// Steps are adjusted so that no evaluation point leaves Bounds, which keeps constrained
// benchmarks from being probed on their penalty plateau.
//
// # Reference:
//
//   - https://en.wikipedia.org/wiki/Finite_difference
//   - https://github.com/scipy/scipy/blob/main/scipy/optimize/_numdiff.py
//
// # License
//
//   - https://github.com/scipy/scipy/blob/main/LICENSE.txt
type Gradient struct {
	// Finite difference method to use.
	Method Method
	// Lower and upper bounds on independent variables, nil when unbounded.
	Bounds []testfunc.Bound
	// Relative step size used to compute absolute step size.
	// The default absolute step size is computed as h = RelStep * sign(x0) * max(1, abs(x0)) with RelStep being selected automatically.
	// Otherwise, absolute step size is computed as h = RelStep * sign(x0) * abs(x0) when RelStep is provided.
	RelStep float64
	// Absolute step size to use, possibly adjusted to fit into the bounds.
	// The RelStep is used when AbsStep is not provide.
	// For Central method the sign of AbsStep is ignored.
	AbsStep float64
}

// Check the dimensions of x0 and grad against the bounds.
func (g *Gradient) Check(x0, grad []float64) (err error) {

	switch {
	case len(x0) == 0:
		err = errors.New("empty x0")
	case g.Method != Forward && g.Method != Central:
		err = errors.New("unknown method")
	case len(x0) != len(grad):
		err = errors.New("invalid grad dimensions")
	case g.Bounds != nil && len(g.Bounds) != len(x0):
		err = errors.New("invalid bound dimension")
	}

	if err != nil {
		return
	}

	for i, b := range g.Bounds {
		if b.Lower > b.Upper {
			return errors.New("invalid bound range")
		}
		if x0[i] < b.Lower || x0[i] > b.Upper {
			return errors.New("x0 violates bound constraints")
		}
	}
	return
}

// Diff fills grad with the approximated gradient of f at x0.
// The content of x0 is restored before returning.
// Variables pinned by a zero-width bound have a zero derivative.
func (g *Gradient) Diff(f testfunc.Func, grad, x0 []float64) error {
	if err := g.Check(x0, grad); err != nil {
		return err
	}

	h := make([]float64, len(x0))
	absoluteStep(g.Method, g.AbsStep, g.RelStep, x0, h)

	if g.Method == Central {
		oneSide := make([]bool, len(x0))
		adjustCentral(g.Bounds, x0, h, oneSide)
		approxCentral(f, x0, h, oneSide, grad)
	} else {
		adjustForward(g.Bounds, x0, h)
		approxForward(f, x0, h, grad)
	}
	return nil
}

// Grad adapts f into the gradient callback of gonum/optimize.
// Points outside the bounds are clamped before differencing.
// It panics when the dimensions of grad and x differ.
func (g *Gradient) Grad(f testfunc.Func) func(grad, x []float64) {
	return func(grad, x []float64) {
		x0 := make([]float64, len(x))
		copy(x0, x)
		for i, b := range g.Bounds {
			x0[i] = min(max(x0[i], b.Lower), b.Upper)
		}
		if err := g.Diff(f, grad, x0); err != nil {
			panic(err)
		}
	}
}

func bounded(b []testfunc.Bound) bool {
	for _, bound := range b {
		if !(math.IsInf(bound.Lower, -1) && math.IsInf(bound.Upper, 1)) {
			return true
		}
	}
	return false
}

func absoluteStep(method Method, abs, rel float64, x0, h []float64) {
	var eps float64
	switch method {
	case Forward:
		eps = sqrtEps
	case Central:
		eps = cubeEps
	default:
		panic("unknown method")
	}

	if abs == 0 && rel == 0 {
		for i, v := range x0 {
			h[i] = math.Copysign(eps, v) * math.Max(1.0, math.Abs(v))
		}
		return
	}

	for i, v := range x0 {
		s := abs
		if s == 0 {
			s = math.Copysign(rel, v) * math.Abs(v)
		}
		if d := (v + s) - v; d == 0 {
			s = math.Copysign(eps, v) * math.Max(1.0, math.Abs(v))
		}
		h[i] = s
	}
}

func adjustForward(b []testfunc.Bound, x0, h []float64) {
	if !bounded(b) {
		return
	}
	for i, x := range x0 {
		ld, ud := x-b[i].Lower, b[i].Upper-x
		h0 := h[i]
		violated := !b[i].Contains(x + h0)
		fitting := math.Abs(h0) < math.Max(ld, ud)
		switch {
		case violated && fitting:
			h[i] = -h0
		case !fitting && ud >= ld:
			h[i] = ud
		case !fitting:
			h[i] = -ld
		}
	}
}

func adjustCentral(b []testfunc.Bound, x0, h []float64, oneSide []bool) {
	for i, v := range h {
		h[i] = math.Abs(v)
		oneSide[i] = false
	}
	if !bounded(b) {
		return
	}
	for i, x := range x0 {
		ld, ud := x-b[i].Lower, b[i].Upper-x
		central := ld >= h[i] && ud >= h[i]
		if !central {
			if ud >= ld {
				h[i] = math.Min(h[i], 0.5*ud)
			} else {
				h[i] = -math.Min(h[i], 0.5*ld)
			}
			oneSide[i] = true
		}
		minDist := math.Min(ud, ld)
		if !central && math.Abs(h[i]) <= minDist {
			h[i] = minDist
			oneSide[i] = false
		}
	}
}

func approxForward(f testfunc.Func, x0, h, grad []float64) {
	f0 := f(x0)
	for i, s := range h {
		if s == 0 {
			grad[i] = 0
			continue
		}
		t := x0[i]
		x0[i] = t + s
		grad[i] = (f(x0) - f0) / s
		x0[i] = t
	}
}

func approxCentral(f testfunc.Func, x0, h []float64, oneSide []bool, grad []float64) {
	f0 := f(x0)
	for i, s := range h {
		if s == 0 {
			grad[i] = 0
			continue
		}
		t := x0[i]
		d := 1.0 / (2 * s)
		if oneSide[i] {
			x0[i] = t + s
			f1 := f(x0)
			x0[i] = t + 2*s
			f2 := f(x0)
			grad[i] = (4*f1 - 3*f0 - f2) * d
		} else {
			x0[i] = t - s
			f1 := f(x0)
			x0[i] = t + s
			f2 := f(x0)
			grad[i] = (f2 - f1) * d
		}
		x0[i] = t
	}
}
