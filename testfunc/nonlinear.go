// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfunc

import "math"

// MishraBirdConstrained is Mishra's bird function restricted to the disk (x + 5)² + (y + 5)² < 25.
//
//	𝒇(x, y) = sin(y) exp((1 - cos x)²) + cos(x) exp((1 - sin y)²) + (x - y)²
func MishraBirdConstrained(x []float64) float64 {
	x1, x2 := x[0], x[1]
	if (x1+5)*(x1+5)+(x2+5)*(x2+5) >= 25 {
		return Penalty
	}
	c, s := 1-math.Cos(x1), 1-math.Sin(x2)
	d := x1 - x2
	return math.Sin(x2)*math.Exp(c*c) + math.Cos(x1)*math.Exp(s*s) + d*d
}

func rosenbrock2(x1, x2 float64) float64 {
	a, b := 1-x1, x2-x1*x1
	return a*a + 100*b*b
}

// RosenbrockConstrained is the 2-D Rosenbrock function restricted to the cube [-1, 1]²
// and the half plane y ≥ 1 - x.
func RosenbrockConstrained(x []float64) float64 {
	x1, x2 := x[0], x[1]
	outsideCube := x1 < -1 || x1 > 1 || x2 < -1 || x2 > 1
	outsideLine := x2 < -x1+1
	if outsideCube || outsideLine {
		return Penalty
	}
	return rosenbrock2(x1, x2)
}

// RosenbrockConstrainedDisk is the 2-D Rosenbrock function restricted to the disk x² + y² ≤ 1.5².
func RosenbrockConstrainedDisk(x []float64) float64 {
	const radius = 1.5
	x1, x2 := x[0], x[1]
	if x1*x1+x2*x2 > radius*radius {
		return Penalty
	}
	return rosenbrock2(x1, x2)
}

// region is a closed rectangle of the plane with its own quadratic.
type region struct {
	x1, x2 Bound
	f      func(x1, x2 float64) float64
}

func (r *region) contains(x1, x2 float64) bool {
	return r.x1.Contains(x1) && r.x2.Contains(x2)
}

func sq(v float64) float64 { return v * v }

// simionescuRegions partition [-2, 2]² into twelve rectangles.
// Rectangles share their edges, the first region listed owns a shared edge.
var simionescuRegions = [...]region{
	{Bound{-1, 0}, Bound{-1, 0}, func(x1, x2 float64) float64 { return 5*sq(x1+1) + 5*sq(x2+1) }},
	{Bound{0, 1}, Bound{-1, 0}, func(x1, x2 float64) float64 { return 3*sq(x1-1) + 5*sq(x2+1) }},
	{Bound{-1, 0}, Bound{0, 1}, func(x1, x2 float64) float64 { return 5*sq(x1+1) + 3*sq(x2-1) }},
	{Bound{0, 1}, Bound{0, 1}, func(x1, x2 float64) float64 { return 3*sq(x1-1) + 3*sq(x2-1) }},
	{Bound{-2, -1}, Bound{-2, -1}, func(x1, x2 float64) float64 { return sq(x1+2) + 5*sq(x2+2) }},
	{Bound{-2, -1}, Bound{1, 2}, func(x1, x2 float64) float64 { return sq(x1+2) + 5*sq(x2-2) }},
	{Bound{1, 2}, Bound{-2, -1}, func(x1, x2 float64) float64 { return sq(x1-2) + 5*sq(x2+2) }},
	{Bound{1, 2}, Bound{1, 2}, func(x1, x2 float64) float64 { return sq(x1-2) + 5*sq(x2-2) }},
	{Bound{-2, -1}, Bound{-1, 1}, func(x1, x2 float64) float64 { return sq(x1+2) + 3*x2*x2 }},
	{Bound{1, 2}, Bound{-1, 1}, func(x1, x2 float64) float64 { return sq(x1-2) + 3*x2*x2 }},
	{Bound{-1, 1}, Bound{-2, -1}, func(x1, x2 float64) float64 { return 3*x1*x1 + sq(x2+2) }},
	{Bound{-1, 1}, Bound{1, 2}, func(x1, x2 float64) float64 { return 3*x1*x1 + sq(x2-2) }},
}

// Simionescu is a piecewise quadratic over twelve rectangles of [-2, 2]².
// Points outside every rectangle evaluate to Penalty.
func Simionescu(x []float64) float64 {
	x1, x2 := x[0], x[1]
	for i := range simionescuRegions {
		if r := &simionescuRegions[i]; r.contains(x1, x2) {
			return r.f(x1, x2)
		}
	}
	return Penalty
}

// TownsendModified function centered at (1.8, 1.8)
//
//	𝒇(x, y) = ½((x - a)² + (y - b)²) - cos(c(x - a)) cos(d(y - b)) + 1
func TownsendModified(x []float64) float64 {
	const a, b, c, d = 1.8, 1.8, 10, 10
	dx, dy := x[0]-a, x[1]-b
	return 0.5*(dx*dx+dy*dy) - math.Cos(c*dx)*math.Cos(d*dy) + 1
}

func nonlinear() []Spec {
	return []Spec{
		{
			Name:        "mishra_bird_constrained",
			Func:        MishraBirdConstrained,
			Bounds:      []Bound{{-10, 0}, {-6.5, 0}},
			Argmin:      []float64{-3.1302468001536683, -1.5821421760091305},
			Optimum:     -106.76453674926476,
			Constrained: true,
		},
		{
			Name:        "rosenbrock_constrained",
			Func:        RosenbrockConstrained,
			Bounds:      []Bound{{-1.5, 1.5}, {-0.5, 2.5}},
			Argmin:      []float64{1, 1},
			Optimum:     0,
			Constrained: true,
		},
		{
			Name:        "rosenbrock_constrained_disk",
			Func:        RosenbrockConstrainedDisk,
			Bounds:      Bound{-2, 2}.Repeat(2),
			Argmin:      []float64{1, 1},
			Optimum:     0,
			Constrained: true,
		},
		{
			Name:        "simionescu",
			Func:        Simionescu,
			Bounds:      Bound{-2, 2}.Repeat(2),
			Argmin:      []float64{1, 1},
			Optimum:     0,
			Constrained: true,
		},
		{
			Name:    "townsend_modified",
			Func:    TownsendModified,
			Bounds:  Bound{-10, 10}.Repeat(2),
			Argmin:  []float64{1.8, 1.8},
			Optimum: 0,
		},
	}
}
