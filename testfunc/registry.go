// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfunc

import (
	"math"
	"slices"
)

// Registry maps benchmark names to immutable entries.
// It is built once and safe for concurrent use.
type Registry struct {
	byName map[string]*Benchmark
	names  []string
}

// New validates the given specs and builds a registry from them.
func New(specs ...Spec) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Benchmark, len(specs)),
		names:  make([]string, 0, len(specs)),
	}
	for _, s := range specs {
		if err := check(s); err != nil {
			return nil, err
		}
		if _, ok := r.byName[s.Name]; ok {
			return nil, definitionError(s.Name, "duplicate name")
		}
		s.Bounds = slices.Clone(s.Bounds)
		s.Argmin = slices.Clone(s.Argmin)
		r.byName[s.Name] = &Benchmark{spec: s}
		r.names = append(r.names, s.Name)
	}
	slices.Sort(r.names)
	return r, nil
}

func check(s Spec) (err error) {

	switch {
	case s.Name == "":
		err = definitionError(s.Name, "name is required")
	case s.Func == nil:
		err = definitionError(s.Name, "evaluation rule is required")
	case len(s.Bounds) == 0:
		err = definitionError(s.Name, "bounds are required")
	case s.Argmin != nil && len(s.Argmin) != len(s.Bounds):
		err = definitionError(s.Name, "argmin size must equal to bounds size")
	case s.Variadic && len(s.Bounds) < 2:
		err = definitionError(s.Name, "variadic dimension must not less than 2")
	}

	if err != nil {
		return
	}

	for k, b := range s.Bounds {
		switch {
		case math.IsNaN(b.Lower) || math.IsNaN(b.Upper) || math.IsInf(b.Lower, 0) || math.IsInf(b.Upper, 0):
			return definitionError(s.Name, "bound at %d must be finite", k)
		case b.Lower > b.Upper:
			return definitionError(s.Name, "bound range at %d has no feasible solution", k)
		}
	}
	return
}

// Get returns the benchmark registered under name.
func (r *Registry) Get(name string) (*Benchmark, error) {
	b, ok := r.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return b, nil
}

// MustGet is like Get but panics on unknown names.
func (r *Registry) MustGet(name string) *Benchmark {
	b, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of registered benchmarks.
func (r *Registry) Len() int { return len(r.names) }

// Names returns the sorted benchmark names.
func (r *Registry) Names() []string { return slices.Clone(r.names) }

// All returns every benchmark sorted by name.
func (r *Registry) All() []*Benchmark {
	all := make([]*Benchmark, len(r.names))
	for i, name := range r.names {
		all[i] = r.byName[name]
	}
	return all
}

// Filter returns the benchmarks of the given family sorted by name.
func (r *Registry) Filter(f Family) []*Benchmark {
	var out []*Benchmark
	for _, name := range r.names {
		if b := r.byName[name]; b.spec.Family == f {
			out = append(out, b)
		}
	}
	return out
}

// Select resolves names in order. An empty list selects every benchmark.
func (r *Registry) Select(names ...string) ([]*Benchmark, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	out := make([]*Benchmark, 0, len(names))
	for _, name := range names {
		b, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Default returns a registry with the full catalog.
func Default() *Registry {
	r, err := New(Catalog()...)
	if err != nil {
		panic(err)
	}
	return r
}
