// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testfunc

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every lookup failure of the registry.
	ErrNotFound = errors.New("benchmark not found")
	// ErrDimension is matched by every evaluation with a vector of the wrong length.
	ErrDimension = errors.New("dimension mismatch")
	// ErrDefinition is matched by every invalid benchmark definition rejected by New.
	ErrDefinition = errors.New("invalid benchmark definition")
)

// NotFoundError reports a name absent from the registry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("benchmark %q not found in registry", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DimensionError reports an input vector whose length differs from the benchmark arity.
type DimensionError struct {
	Name      string
	Want, Got int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("benchmark %q expects %d dimensions, got %d", e.Name, e.Want, e.Got)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrDimension
}

func definitionError(name, format string, a ...any) error {
	return fmt.Errorf("%w %q: %s", ErrDefinition, name, fmt.Sprintf(format, a...))
}
