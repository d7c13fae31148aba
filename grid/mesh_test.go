// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bytes"
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/curioloop/benchfn/testfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Case Sources : test_plotting_feasibility.py (test_function_meshgrid_evaluates_correctly)
func TestSampleCatalog(t *testing.T) {
	const n = 250

	for _, b := range testfunc.Default().All() {
		require.Equal(t, 2, b.Dim(), b.Name())

		m, err := Sample(b, n, n)
		require.NoError(t, err, b.Name())

		rows, cols := m.Shape()
		require.Equal(t, n, rows, b.Name())
		require.Equal(t, n, cols, b.Name())
		require.Len(t, m.X, n)
		require.Len(t, m.Y, n)
		require.Positive(t, m.Finite(), b.Name())

		if !b.Constrained() {
			require.Equal(t, n*n, m.Finite(), b.Name())
		}

		bnd := b.Bounds()
		assert.Equal(t, bnd[0].Lower, m.X[0])
		assert.InDelta(t, bnd[0].Upper, m.X[n-1], 1e-9)
		assert.Equal(t, bnd[1].Lower, m.Y[0])
		assert.InDelta(t, bnd[1].Upper, m.Y[n-1], 1e-9)
	}
}

func TestSampleLayout(t *testing.T) {
	b := testfunc.Default().MustGet("booth")

	m, err := Sample(b, 3, 5)
	require.NoError(t, err)

	rows, cols := m.Shape()
	require.Equal(t, 5, rows)
	require.Equal(t, 3, cols)

	for i, y := range m.Y {
		for j, x := range m.X {
			require.Equal(t, b.Eval2(x, y), m.Z.At(i, j))
		}
	}

	lo, hi := m.Range()
	require.LessOrEqual(t, lo, hi)
}

func TestSampleArgmin(t *testing.T) {
	m, err := Sample(testfunc.Default().MustGet("sphere"), 11, 11)
	require.NoError(t, err)

	x, y, z := m.Argmin()
	require.InDelta(t, 0, x, 1e-12)
	require.InDelta(t, 0, y, 1e-12)
	require.InDelta(t, 0, z, 1e-12)
}

func TestArgminSkipsNonFinite(t *testing.T) {
	m := &Mesh{
		X: []float64{0, 1},
		Y: []float64{0, 1},
		Z: mat.NewDense(2, 2, []float64{math.NaN(), 3, math.Inf(-1), 2}),
	}
	x, y, z := m.Argmin()
	require.Equal(t, 1.0, x)
	require.Equal(t, 1.0, y)
	require.Equal(t, 2.0, z)

	m.Z = mat.NewDense(2, 2, []float64{math.NaN(), math.NaN(), math.Inf(1), math.NaN()})
	x, y, z = m.Argmin()
	require.True(t, math.IsNaN(x) && math.IsNaN(y) && math.IsNaN(z))
}

func TestSampleInvalid(t *testing.T) {
	reg := testfunc.Default()

	_, err := Sample(nil, 10, 10)
	require.Error(t, err)

	_, err = Sample(reg.MustGet("sphere"), 1, 10)
	require.Error(t, err)

	sphere3, err := reg.MustGet("sphere").WithDim(3)
	require.NoError(t, err)
	_, err = Sample(sphere3, 10, 10)
	require.ErrorIs(t, err, testfunc.ErrDimension)
}

func TestWrite(t *testing.T) {
	m, err := Sample(testfunc.Default().MustGet("matyas"), 4, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.WriteCSV(&buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+4*3)
	require.Equal(t, []string{"x", "y", "z"}, records[0])
	require.Equal(t, []string{"-10", "-10"}, records[1][:2])

	buf.Reset()
	require.NoError(t, m.WriteMatrix(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+3)
	require.Len(t, strings.Fields(lines[0]), 1+4)
	require.Equal(t, "4", strings.Fields(lines[0])[0])
	for _, line := range lines[1:] {
		require.Len(t, strings.Fields(line), 1+4)
	}
}
