// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimionescu(t *testing.T) {

	tests := []struct {
		x    []float64
		want float64
	}{
		// interior of each region
		{[]float64{-0.5, -0.5}, 2.5},
		{[]float64{0.5, -0.5}, 0.75 + 1.25},
		{[]float64{-0.5, 0.5}, 1.25 + 0.75},
		{[]float64{0.5, 0.5}, 1.5},
		{[]float64{-1.5, -1.5}, 0.25 + 1.25},
		{[]float64{-1.5, 1.5}, 0.25 + 1.25},
		{[]float64{1.5, -1.5}, 0.25 + 1.25},
		{[]float64{1.5, 1.5}, 0.25 + 1.25},
		{[]float64{-1.5, 0.5}, 0.25 + 0.75},
		{[]float64{1.5, 0.5}, 0.25 + 0.75},
		{[]float64{0.5, -1.5}, 0.75 + 0.25},
		{[]float64{0.5, 1.5}, 0.75 + 0.25},
		// shared edges resolve to the first region listed
		{[]float64{0, 0}, 10},
		{[]float64{1, 1}, 0},
		{[]float64{-1, -1}, 0},
		{[]float64{-1, 0}, 5},
		{[]float64{1, -1}, 0},
		// outside every region
		{[]float64{2.5, 0}, Penalty},
		{[]float64{0, -2.01}, Penalty},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Simionescu(tt.x), 1e-12, "simionescu(%v)", tt.x)
	}
}

func TestPenalty(t *testing.T) {

	tests := []struct {
		name string
		f    Func
		x    []float64
		feas bool
	}{
		{"rosenbrock_constrained", RosenbrockConstrained, []float64{1, 1}, true},
		{"rosenbrock_constrained", RosenbrockConstrained, []float64{0.5, 0.6}, true},
		{"rosenbrock_constrained", RosenbrockConstrained, []float64{0, 0}, false},
		{"rosenbrock_constrained", RosenbrockConstrained, []float64{1.2, 0.5}, false},
		{"rosenbrock_constrained", RosenbrockConstrained, []float64{0.5, 1.2}, false},
		{"rosenbrock_constrained_disk", RosenbrockConstrainedDisk, []float64{1, 1}, true},
		{"rosenbrock_constrained_disk", RosenbrockConstrainedDisk, []float64{1.5, 0}, true},
		{"rosenbrock_constrained_disk", RosenbrockConstrainedDisk, []float64{1.5, 1.5}, false},
		{"mishra_bird_constrained", MishraBirdConstrained, []float64{-5, -5}, true},
		{"mishra_bird_constrained", MishraBirdConstrained, []float64{0, 0}, false},
		{"mishra_bird_constrained", MishraBirdConstrained, []float64{-10, -5}, false},
	}

	for _, tt := range tests {
		v := tt.f(tt.x)
		if tt.feas {
			assert.NotEqual(t, Penalty, v, "%s(%v)", tt.name, tt.x)
		} else {
			assert.Equal(t, Penalty, v, "%s(%v)", tt.name, tt.x)
		}
	}
}
