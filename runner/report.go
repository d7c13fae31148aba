// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Outcome is the result of one optimizer run on one benchmark.
type Outcome struct {
	Function    string        `json:"function"`
	Method      Method        `json:"method"`
	Run         int           `json:"run"`
	Best        float64       `json:"best"`
	X           []float64     `json:"x"`
	Evaluations int64         `json:"evaluations"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Status      string        `json:"status"`
	Err         string        `json:"error,omitempty"`
	Success     bool          `json:"success"`
}

// Report gathers every outcome of a campaign.
type Report struct {
	ID       string        `json:"id"`
	Started  time.Time     `json:"started"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	Outcomes []Outcome     `json:"outcomes"`
}

// Summary aggregates the runs of one optimizer on one benchmark.
type Summary struct {
	Function string  `json:"function"`
	Method   Method  `json:"method"`
	Best     Outcome `json:"best"` // Run with the lowest value.
	Runs     int     `json:"runs"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	// Fraction of runs that reached the known optimum.
	SuccessRate float64 `json:"success_rate"`
}

// Summaries groups the outcomes by benchmark and optimizer in the order they first appear.
func (r *Report) Summaries() []Summary {
	type key struct {
		function string
		method   Method
	}

	var order []key
	groups := make(map[key][]Outcome)
	for _, o := range r.Outcomes {
		k := key{o.Function, o.Method}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], o)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		runs := groups[k]
		values := make([]float64, len(runs))
		best, success := 0, 0
		for i, o := range runs {
			values[i] = o.Best
			if o.Best < runs[best].Best || math.IsNaN(runs[best].Best) {
				best = i
			}
			if o.Success {
				success++
			}
		}

		mean, std := stat.MeanStdDev(values, nil)
		if len(values) < 2 {
			std = 0
		}
		out = append(out, Summary{
			Function:    k.function,
			Method:      k.method,
			Best:        runs[best],
			Runs:        len(runs),
			Mean:        mean,
			StdDev:      std,
			SuccessRate: float64(success) / float64(len(runs)),
		})
	}
	return out
}

// isClose reports |v - want| ≤ atol + rtol × |want|.
func isClose(v, want, atol, rtol float64) bool {
	return math.Abs(v-want) <= atol+rtol*math.Abs(want)
}
