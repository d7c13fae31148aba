// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfunc

// Beale function
//
//	𝒇(x, y) = (1.5 - x + xy)² + (2.25 - x + xy²)² + (2.625 - x + xy³)²
func Beale(x []float64) float64 {
	x1, x2 := x[0], x[1]
	t1 := 1.5 - x1 + x1*x2
	t2 := 2.25 - x1 + x1*x2*x2
	t3 := 2.625 - x1 + x1*x2*x2*x2
	return t1*t1 + t2*t2 + t3*t3
}

// Booth function
//
//	𝒇(x, y) = (x + 2y - 7)² + (2x + y - 5)²
func Booth(x []float64) float64 {
	x1, x2 := x[0], x[1]
	t1 := x1 + 2*x2 - 7
	t2 := 2*x1 + x2 - 5
	return t1*t1 + t2*t2
}

// Matyas function
//
//	𝒇(x, y) = 0.26(x² + y²) - 0.48xy
func Matyas(x []float64) float64 {
	x1, x2 := x[0], x[1]
	return 0.26*(x1*x1+x2*x2) - 0.48*x1*x2
}

// Rosenbrock function of any dimension n ≥ 2
//
//	𝒇(𝐱) = ∑ᵢ₌₁ⁿ⁻¹ 100(xᵢ₊₁ - xᵢ²)² + (1 - xᵢ)²
func Rosenbrock(x []float64) float64 {
	var sum float64
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		sum += 100*a*a + b*b
	}
	return sum
}

// Sphere function of any dimension
//
//	𝒇(𝐱) = ∑ᵢ xᵢ²
func Sphere(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func classical() []Spec {
	return []Spec{
		{
			Name:    "beale",
			Func:    Beale,
			Bounds:  Bound{-5.12, 5.12}.Repeat(2),
			Argmin:  []float64{3, 0.5},
			Optimum: 0,
		},
		{
			Name:    "booth",
			Func:    Booth,
			Bounds:  Bound{-5.12, 5.12}.Repeat(2),
			Argmin:  []float64{1, 3},
			Optimum: 0,
		},
		{
			Name:    "matyas",
			Func:    Matyas,
			Bounds:  Bound{-10, 10}.Repeat(2),
			Argmin:  []float64{0, 0},
			Optimum: 0,
		},
		{
			Name:     "rosenbrock",
			Func:     Rosenbrock,
			Bounds:   []Bound{{-2.12, 2.12}, {-1, 3}},
			Argmin:   []float64{1, 1},
			Optimum:  0,
			Variadic: true,
		},
		{
			Name:     "sphere",
			Func:     Sphere,
			Bounds:   Bound{-5.12, 5.12}.Repeat(2),
			Argmin:   []float64{0, 0},
			Optimum:  0,
			Variadic: true,
		},
	}
}
