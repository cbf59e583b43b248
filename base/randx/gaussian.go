// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "github.com/mingminQ/navis-ros/base/errors"

// Gaussian draws normally distributed values, and folded gaussian
// values bounded to an interval. It is not safe for concurrent use.
type Gaussian struct {
	Base
	dist normalDist
}

// NewGaussian returns a new [Gaussian] whose local seed is the next seed
// from the process-wide dispatcher.
func NewGaussian() *Gaussian {
	return NewGaussianSeed(NextSeed())
}

// NewGaussianSeed returns a new [Gaussian] with the given local seed.
// It does not consult the dispatcher.
func NewGaussianSeed(seed uint64) *Gaussian {
	g := &Gaussian{}
	g.init(seed)
	return g
}

// SetLocalSeed reseeds the engine and drops the cached normal value.
func (g *Gaussian) SetLocalSeed(seed uint64) {
	g.reseed(seed)
	g.dist.reset()
}

// Standard returns a standard normal value (mean 0, standard deviation 1).
func (g *Gaussian) Standard() float64 {
	return g.dist.next(&g.Base)
}

// Double returns a normal value with the given mean and standard deviation.
func (g *Gaussian) Double(mean, stdDev float64) float64 {
	return g.dist.next(&g.Base)*stdDev + mean
}

// FoldedDouble returns a value in [lower, upper] concentrated near upper.
//
// A normal value is drawn with mean upper-lower (the interval width) and
// standard deviation width/bias, relative to lower. Values above the
// width are reflected back below it, values that still fall below zero
// saturate to exactly lower, and the result is capped at upper.
// A larger bias narrows the distribution around upper.
//
// It panics with [ErrInvalidBounds] unless lower < upper, and with
// [ErrInvalidBias] unless bias > 0.
func (g *Gaussian) FoldedDouble(lower, upper, bias float64) float64 {
	mustBounds(lower, upper)
	errors.Must(CheckBias(bias))
	width := upper - lower
	half := g.Double(width, width/bias)
	if half > width {
		half = 2*width - half
	}
	if half < 0 {
		return lower
	}
	return min(half+lower, upper)
}

// FoldedInt returns an integer in [lower, upper], both inclusive, with
// the distribution of [Gaussian.FoldedDouble] over [lower, upper+1).
// It panics with [ErrInvalidBounds] unless lower < upper, and with
// [ErrInvalidBias] unless bias > 0.
func (g *Gaussian) FoldedInt(lower, upper int, bias float64) int {
	mustIntBounds(lower, upper)
	span := uint64(upper) - uint64(lower)
	f := g.FoldedDouble(0, float64(span)+1, bias)
	if f >= float64(span) {
		return upper
	}
	return lower + int(uint64(f))
}
