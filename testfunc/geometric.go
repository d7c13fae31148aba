// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfunc

import "math"

// Bukin function N.6
//
//	𝒇(x, y) = 100 √|y - 0.01x²| + 0.01|x + 10|
func Bukin(x []float64) float64 {
	x1, x2 := x[0], x[1]
	return 100*math.Sqrt(math.Abs(x2-0.01*x1*x1)) + 0.01*math.Abs(x1+10)
}

// CrossInTray function
//
//	𝒇(x, y) = -0.0001 (|sin x sin y exp|100 - √(x² + y²)/π|| + 1)⁰˙¹
func CrossInTray(x []float64) float64 {
	x1, x2 := x[0], x[1]
	r := math.Sqrt(x1*x1 + x2*x2)
	v := math.Abs(math.Sin(x1)*math.Sin(x2)*math.Exp(math.Abs(100-r/math.Pi))) + 1
	return -0.0001 * math.Pow(v, 0.1)
}

// GoldsteinPrice function
func GoldsteinPrice(x []float64) float64 {
	x1, x2 := x[0], x[1]
	a := x1 + x2 + 1
	b := 2*x1 - 3*x2
	t1 := 1 + a*a*(19-14*x1+3*x1*x1-14*x2+6*x1*x2+3*x2*x2)
	t2 := 30 + b*b*(18-32*x1+12*x1*x1+48*x2-36*x1*x2+27*x2*x2)
	return t1 * t2
}

// HolderTable function
//
//	𝒇(x, y) = -|sin x cos y exp|1 - √(x² + y²)/π||
func HolderTable(x []float64) float64 {
	x1, x2 := x[0], x[1]
	r := math.Sqrt(x1*x1 + x2*x2)
	return -math.Abs(math.Sin(x1) * math.Cos(x2) * math.Exp(math.Abs(1-r/math.Pi)))
}

// Levi function N.13
//
//	𝒇(x, y) = sin²(3πx) + (x - 1)²(1 + sin²(3πy)) + (y - 1)²(1 + sin²(2πy))
func Levi(x []float64) float64 {
	x1, x2 := x[0], x[1]
	s1 := math.Sin(3 * math.Pi * x1)
	s2 := math.Sin(3 * math.Pi * x2)
	s3 := math.Sin(2 * math.Pi * x2)
	return s1*s1 + (x1-1)*(x1-1)*(1+s2*s2) + (x2-1)*(x2-1)*(1+s3*s3)
}

func geometric() []Spec {
	return []Spec{
		{
			Name:    "bukin",
			Func:    Bukin,
			Bounds:  []Bound{{-15, -5}, {-3, 3}},
			Argmin:  []float64{-10, 1},
			Optimum: 0,
		},
		{
			Name:    "cross_in_tray",
			Func:    CrossInTray,
			Bounds:  Bound{-10, 10}.Repeat(2),
			Argmin:  []float64{1.3494066438114645, 1.349406643140912},
			Optimum: -2.0626118708227397,
		},
		{
			Name:    "goldstein_price",
			Func:    GoldsteinPrice,
			Bounds:  Bound{-5.12, 5.12}.Repeat(2),
			Argmin:  []float64{0, -1},
			Optimum: 3,
		},
		{
			Name:    "holder_table",
			Func:    HolderTable,
			Bounds:  Bound{-10, 10}.Repeat(2),
			Argmin:  []float64{8.055023490447997, 9.664590009536743},
			Optimum: -19.208502567886747,
		},
		{
			Name:    "levi",
			Func:    Levi,
			Bounds:  Bound{-10, 10}.Repeat(2),
			Argmin:  []float64{1, 1},
			Optimum: 0,
		},
	}
}
