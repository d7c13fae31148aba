// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfunc

// Catalog returns the specs of every built-in benchmark, tagged with their family.
// Each call returns fresh slices.
func Catalog() []Spec {
	var specs []Spec
	for _, group := range []struct {
		family Family
		specs  []Spec
	}{
		{Classical, classical()},
		{Multimodal, multimodal()},
		{Nonlinear, nonlinear()},
		{Geometric, geometric()},
	} {
		for _, s := range group.specs {
			s.Family = group.family
			specs = append(specs, s)
		}
	}
	return specs
}
