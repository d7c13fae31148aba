// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Termination specifies the stopping criteria of every optimizer run.
type Termination struct {
	// The run stop when the number of major iterations exceeds limit.
	MaxIterations int `yaml:"max_iterations" validate:"min=1"`
	// The run stop when the number of objective evaluations exceeds limit.
	MaxEvaluations int `yaml:"max_evaluations" validate:"min=1"`
	// The run stop when the best value improves less than Tolerance for Patience iterations.
	Tolerance float64 `yaml:"tolerance" validate:"gt=0"`
	Patience  int     `yaml:"patience" validate:"min=1"`
}

// Config describes a benchmark campaign.
type Config struct {
	// Benchmarks to run, all registered benchmarks when empty.
	Functions []string `yaml:"functions"`
	// Optimizers to run on every benchmark.
	Methods []Method `yaml:"methods" validate:"min=1,dive,oneof=nelder-mead cmaes lbfgs guess-and-check"`
	// Independent runs per benchmark and optimizer, run k is seeded with (Seed, k).
	Runs int    `yaml:"runs" validate:"min=1"`
	Seed uint64 `yaml:"seed"`
	// Runs executed at the same time, GOMAXPROCS when 0.
	Concurrency int `yaml:"concurrency" validate:"min=0"`
	// Dimension of variadic benchmarks, their registered dimension when 0.
	Dim  int         `yaml:"dim" validate:"omitempty,min=2"`
	Stop Termination `yaml:"stop"`
	// A run succeeds when |best - optimum| ≤ AbsTol + RelTol × |optimum|.
	AbsTol float64 `yaml:"abs_tol" validate:"gte=0"`
	RelTol float64 `yaml:"rel_tol" validate:"gte=0"`
}

// DefaultConfig mirrors the classic campaign: a global and a local optimizer, five runs each.
func DefaultConfig() Config {
	return Config{
		Methods: []Method{CMAES, NelderMead},
		Runs:    5,
		Stop: Termination{
			MaxIterations:  1000,
			MaxEvaluations: 20000,
			Tolerance:      1e-6,
			Patience:       50,
		},
		AbsTol: 1e-6,
		RelTol: 1e-6,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint of the config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			fe := ve[0]
			return fmt.Errorf("invalid config field %s: %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
		}
		return err
	}
	return nil
}

func (c *Config) workers() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

// LoadConfig decodes a YAML document over DefaultConfig and validates the result.
// Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig over the named file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}
