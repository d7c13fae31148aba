// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects campaign counters on a private registry.
// A nil *Metrics records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates and registers the campaign collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "benchfn",
			Name:      "evaluations_total",
			Help:      "Objective evaluations performed by optimizer runs.",
		}, []string{"function", "method"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "benchfn",
			Name:      "runs_total",
			Help:      "Finished optimizer runs by result.",
		}, []string{"function", "method", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "benchfn",
			Name:      "run_duration_seconds",
			Help:      "Wall time of optimizer runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"method"}),
	}
	m.registry.MustRegister(m.evaluations, m.runs, m.duration)
	return m
}

// Gatherer exposes the collected metrics.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the metrics in the text exposition format,
// suitable for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(o *Outcome) {
	if m == nil {
		return
	}
	result := "failure"
	if o.Success {
		result = "success"
	}
	m.evaluations.WithLabelValues(o.Function, string(o.Method)).Add(float64(o.Evaluations))
	m.runs.WithLabelValues(o.Function, string(o.Method), result).Inc()
	m.duration.WithLabelValues(string(o.Method)).Observe(o.Elapsed.Seconds())
}
