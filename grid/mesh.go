// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid samples 2-D benchmarks over a regular mesh for surface and contour plots.
package grid

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/curioloop/benchfn/testfunc"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mesh holds Z sampled over the cartesian product of X and Y.
// Rows of Z follow Y and columns follow X, so Z.At(i, j) = 𝒇(X[j], Y[i]).
type Mesh struct {
	Name string
	X, Y []float64
	Z    *mat.Dense
}

// Sample evaluates a 2-D benchmark over nx × ny evenly spaced points spanning its bounds.
func Sample(b *testfunc.Benchmark, nx, ny int) (*Mesh, error) {

	switch {
	case b == nil:
		return nil, errors.New("benchmark is required")
	case b.Dim() != 2:
		return nil, &testfunc.DimensionError{Name: b.Name(), Want: 2, Got: b.Dim()}
	case nx < 2 || ny < 2:
		return nil, errors.New("mesh size must not less than 2")
	}

	bnd := b.Bounds()
	m := &Mesh{
		Name: b.Name(),
		X:    floats.Span(make([]float64, nx), bnd[0].Lower, bnd[0].Upper),
		Y:    floats.Span(make([]float64, ny), bnd[1].Lower, bnd[1].Upper),
		Z:    mat.NewDense(ny, nx, nil),
	}

	pt := make([]float64, 2)
	for i, y := range m.Y {
		pt[1] = y
		for j, x := range m.X {
			pt[0] = x
			m.Z.Set(i, j, b.Eval(pt))
		}
	}
	return m, nil
}

// Shape returns the (rows, cols) of Z.
func (m *Mesh) Shape() (rows, cols int) {
	return m.Z.Dims()
}

// Finite counts cells of Z that are neither NaN nor infinite.
func (m *Mesh) Finite() int {
	var n int
	for _, v := range m.Z.RawMatrix().Data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			n++
		}
	}
	return n
}

// Range returns the extrema of the finite cells of Z.
// Both values are NaN when no cell is finite.
func (m *Mesh) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range m.Z.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo > hi {
		return math.NaN(), math.NaN()
	}
	return
}

// Argmin returns the mesh point with the lowest finite value.
// All results are NaN when no cell is finite.
func (m *Mesh) Argmin() (x, y, z float64) {
	data := m.Z.RawMatrix()
	k := -1
	for i, v := range data.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if k < 0 || v < data.Data[k] {
			k = i
		}
	}
	if k < 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	i, j := k/data.Stride, k%data.Stride
	return m.X[j], m.Y[i], data.Data[k]
}

// WriteCSV writes one "x,y,z" record per cell with a header line.
func (m *Mesh) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	rec := make([]string, 3)
	for i, y := range m.Y {
		rec[1] = format(y)
		for j, x := range m.X {
			rec[0] = format(x)
			rec[2] = format(m.Z.At(i, j))
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMatrix writes the gnuplot "nonuniform matrix" layout:
// the first row is the column count followed by X, every next row is Y[i] followed by Z[i, :].
func (m *Mesh) WriteMatrix(w io.Writer) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprint(bw, len(m.X))
	for _, x := range m.X {
		_, _ = fmt.Fprint(bw, " ", format(x))
	}
	_, _ = fmt.Fprintln(bw)
	for i, y := range m.Y {
		_, _ = fmt.Fprint(bw, format(y))
		for j := range m.X {
			_, _ = fmt.Fprint(bw, " ", format(m.Z.At(i, j)))
		}
		_, _ = fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
