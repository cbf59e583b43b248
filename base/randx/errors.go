// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"fmt"

	"github.com/mingminQ/navis-ros/base/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidBounds is wrapped by the panics of bounded draws
	// whose lower bound is not strictly less than the upper bound.
	ErrInvalidBounds = errors.New("randx: invalid bounds: lower >= upper")

	// ErrInvalidBias is wrapped by the panics of folded gaussian draws
	// whose bias is not strictly positive.
	ErrInvalidBias = errors.New("randx: invalid bias: bias <= 0")
)

// CheckBounds returns an error wrapping [ErrInvalidBounds] unless
// lower < upper. NaN bounds are always invalid. Bounded draws panic
// with this error, so callers that take bounds from user input should
// check them first.
func CheckBounds(lower, upper float64) error {
	if lower < upper {
		return nil
	}
	return fmt.Errorf("%w (lower %g, upper %g)", ErrInvalidBounds, lower, upper)
}

// CheckBias returns an error wrapping [ErrInvalidBias] unless bias > 0.
func CheckBias(bias float64) error {
	if bias > 0 {
		return nil
	}
	return fmt.Errorf("%w (bias %g)", ErrInvalidBias, bias)
}

// mustIntBounds compares integer bounds exactly, since distinct large
// integers can round to the same float64.
func mustIntBounds[T constraints.Integer](lower, upper T) {
	if lower < upper {
		return
	}
	panic(fmt.Errorf("%w (lower %d, upper %d)", ErrInvalidBounds, lower, upper))
}

func mustBounds(lower, upper float64) {
	errors.Must(CheckBounds(lower, upper))
}
