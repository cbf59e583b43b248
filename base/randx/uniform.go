// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Uniform draws uniformly distributed reals, integers and booleans.
// It is not safe for concurrent use.
type Uniform struct {
	Base
	dist uniformDist
}

// NewUniform returns a new [Uniform] whose local seed is the next seed
// from the process-wide dispatcher.
func NewUniform() *Uniform {
	return NewUniformSeed(NextSeed())
}

// NewUniformSeed returns a new [Uniform] with the given local seed.
// It does not consult the dispatcher.
func NewUniformSeed(seed uint64) *Uniform {
	u := &Uniform{}
	u.init(seed)
	return u
}

// SetLocalSeed reseeds the engine and resets the distribution.
func (u *Uniform) SetLocalSeed(seed uint64) {
	u.reseed(seed)
	u.dist.reset()
}

// Float returns a uniform value in [0, 1).
func (u *Uniform) Float() float64 {
	return u.dist.next(&u.Base)
}

// Double returns a uniform value in [lower, upper).
// It panics with [ErrInvalidBounds] unless lower < upper.
func (u *Uniform) Double(lower, upper float64) float64 {
	mustBounds(lower, upper)
	r := (upper-lower)*u.dist.next(&u.Base) + lower
	if r >= upper {
		// a range only a few ulps wide can round up to upper
		r = math.Nextafter(upper, lower)
	}
	return r
}

// Int returns a uniform integer in [lower, upper], both inclusive.
// It panics with [ErrInvalidBounds] unless lower < upper.
func (u *Uniform) Int(lower, upper int) int {
	mustIntBounds(lower, upper)
	return lower + int(u.offset(uint64(upper)-uint64(lower)))
}

// offset returns a uniform integer in [0, span] from a single draw.
// Spans beyond 2^53 are not resolved to every integer.
func (u *Uniform) offset(span uint64) uint64 {
	f := u.dist.next(&u.Base) * (float64(span) + 1)
	if f >= float64(span) {
		return span
	}
	return uint64(f)
}

// Bool returns true with probability one half.
func (u *Uniform) Bool() bool {
	return u.dist.next(&u.Base) < 0.5
}

// Float32Range returns a uniform float32 in [lower, upper).
// It panics with [ErrInvalidBounds] unless lower < upper.
func (u *Uniform) Float32Range(lower, upper float32) float32 {
	mustBounds(float64(lower), float64(upper))
	r := float32(float64(upper-lower)*u.dist.next(&u.Base)) + lower
	if r >= upper {
		// rounding to float32 can land on upper itself
		r = math32.Nextafter(upper, lower)
	}
	return r
}

// UniformInteger returns a uniform value of any integer type in
// [lower, upper], both inclusive, drawn from u. It consumes the same
// draw as [Uniform.Int], so the two agree on ranges both can express.
// It panics with [ErrInvalidBounds] unless lower < upper.
func UniformInteger[T constraints.Integer](u *Uniform, lower, upper T) T {
	mustIntBounds(lower, upper)
	return T(uint64(lower) + u.offset(uint64(upper)-uint64(lower)))
}
