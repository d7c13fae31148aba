// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfunc

import "math"

// Ackley function of any dimension
//
//	𝒇(𝐱) = -20 exp(-0.2 √(∑xᵢ²/n)) - exp(∑cos(2πxᵢ)/n) + 20 + e
func Ackley(x []float64) float64 {
	n := float64(len(x))
	var sq, cs float64
	for _, v := range x {
		sq += v * v
		cs += math.Cos(2 * math.Pi * v)
	}
	return -20*math.Exp(-0.2*math.Sqrt(sq/n)) - math.Exp(cs/n) + 20 + math.E
}

// Easom function
//
//	𝒇(x, y) = -cos(x) cos(y) exp(-(x - π)² - (y - π)²)
func Easom(x []float64) float64 {
	x1, x2 := x[0], x[1]
	d1, d2 := x1-math.Pi, x2-math.Pi
	return -math.Cos(x1) * math.Cos(x2) * math.Exp(-d1*d1-d2*d2)
}

// Eggholder function
//
//	𝒇(x, y) = -(y + 47) sin(√|x/2 + y + 47|) - x sin(√|x - (y + 47)|)
func Eggholder(x []float64) float64 {
	x1, x2 := x[0], x[1]
	return -(x2+47)*math.Sin(math.Sqrt(math.Abs(x2+x1/2+47))) - x1*math.Sin(math.Sqrt(math.Abs(x1-(x2+47))))
}

// Rastrigin function of any dimension
//
//	𝒇(𝐱) = ∑ᵢ 10 + xᵢ² - 10 cos(2πxᵢ)
func Rastrigin(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += 10 + v*v - 10*math.Cos(2*math.Pi*v)
	}
	return sum
}

// SchafferN2 function
//
//	𝒇(x, y) = 0.5 + (sin²(√(x² + y²)) - 0.5) / (1 + 0.001(x² + y²))²
func SchafferN2(x []float64) float64 {
	x1, x2 := x[0], x[1]
	r := x1*x1 + x2*x2
	s := math.Sin(math.Sqrt(r))
	d := 1 + 0.001*r
	return 0.5 + (s*s-0.5)/(d*d)
}

// SchafferN4 function
//
//	𝒇(x, y) = 0.5 + (cos²(sin|x² - y²|) - 0.5) / (1 + 0.001(x² + y²))²
func SchafferN4(x []float64) float64 {
	x1, x2 := x[0], x[1]
	r := x1*x1 + x2*x2
	c := math.Cos(math.Sin(math.Abs(x1*x1 - x2*x2)))
	d := 1 + 0.001*r
	return 0.5 + (c*c-0.5)/(d*d)
}

// StyblinskiTang function of any dimension
//
//	𝒇(𝐱) = ½ ∑ᵢ xᵢ⁴ - 16xᵢ² + 5xᵢ
func StyblinskiTang(x []float64) float64 {
	var sum float64
	for _, v := range x {
		v2 := v * v
		sum += v2*v2 - 16*v2 + 5*v
	}
	return 0.5 * sum
}

// ThreeHumpCamel function
//
//	𝒇(x, y) = 2x² - 1.05x⁴ + x⁶/6 + xy + y²
func ThreeHumpCamel(x []float64) float64 {
	x1, x2 := x[0], x[1]
	x12 := x1 * x1
	return 2*x12 - 1.05*x12*x12 + x12*x12*x12/6 + x1*x2 + x2*x2
}

// styblinskiTangArgmin is the per-dimension minimizer of StyblinskiTang.
const styblinskiTangArgmin = -2.903534037

func multimodal() []Spec {
	return []Spec{
		{
			Name:     "ackley",
			Func:     Ackley,
			Bounds:   Bound{-32.768, 32.768}.Repeat(2),
			Argmin:   []float64{0, 0},
			Optimum:  0,
			Variadic: true,
		},
		{
			Name:    "easom",
			Func:    Easom,
			Bounds:  Bound{-10, 10}.Repeat(2),
			Argmin:  []float64{math.Pi, math.Pi},
			Optimum: -1,
		},
		{
			Name:    "eggholder",
			Func:    Eggholder,
			Bounds:  Bound{-512, 512}.Repeat(2),
			Argmin:  []float64{512, 404.23180493766966},
			Optimum: -959.640662720851,
		},
		{
			Name:     "rastrigin",
			Func:     Rastrigin,
			Bounds:   Bound{-5.12, 5.12}.Repeat(2),
			Argmin:   []float64{0, 0},
			Optimum:  0,
			Variadic: true,
		},
		{
			Name:    "schaffer_n2",
			Func:    SchafferN2,
			Bounds:  Bound{-100, 100}.Repeat(2),
			Argmin:  []float64{0, 0},
			Optimum: 0,
		},
		{
			Name:    "schaffer_n4",
			Func:    SchafferN4,
			Bounds:  Bound{-100, 100}.Repeat(2),
			Argmin:  []float64{0, 1.253131831057016},
			Optimum: 0.29257863203598045,
		},
		{
			Name:     "styblinski_tang",
			Func:     StyblinskiTang,
			Bounds:   Bound{-5, 5}.Repeat(2),
			Argmin:   []float64{styblinskiTangArgmin, styblinskiTangArgmin},
			Optimum:  -78.33233140754285,
			Variadic: true,
		},
		{
			Name:    "three_hump_camel",
			Func:    ThreeHumpCamel,
			Bounds:  Bound{-5, 5}.Repeat(2),
			Argmin:  []float64{0, 0},
			Optimum: 0,
		},
	}
}
