// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides reproducible random number generation:
// a process-wide [SeedDispatcher] that derives per-instance seeds,
// and seeded [Uniform] and [Gaussian] randomizers built on it.
//
// Call [SetGlobalSeed] once at program start and construct randomizers
// in the same order to reproduce every draw across runs.
package randx

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext/prng"
)

// Rand provides the subset of the standard [rand.Rand] methods used by
// the sampling helpers in this package, so that they can draw from any
// randomizer's engine.
type Rand interface {
	// Uint64 returns a pseudo-random 64-bit value as a uint64.
	Uint64() uint64

	// IntN returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
	// It panics if n <= 0.
	IntN(n int) int

	// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
	Float64() float64

	// Float32 returns, as a float32, a pseudo-random number in the half-open interval [0.0,1.0).
	Float32() float32

	// NormFloat64 returns a normally distributed float64 with
	// standard normal distribution (mean = 0, stddev = 1).
	NormFloat64() float64

	// ExpFloat64 returns an exponentially distributed float64 with rate 1.
	ExpFloat64() float64

	// Perm returns, as a slice of n ints, a pseudo-random permutation of the integers
	// in the half-open interval [0,n).
	Perm(n int) []int

	// Shuffle pseudo-randomizes the order of elements.
	// n is the number of elements. Shuffle panics if n < 0.
	// swap swaps the elements with indexes i and j.
	Shuffle(n int, swap func(i, j int))
}

// Randomizer is a seeded source of randomness that owns its engine.
// SetLocalSeed must reseed the engine and also drop any state cached
// by the randomizer's distribution, so that the draws following two
// calls with the same seed are identical.
type Randomizer interface {
	// LocalSeed returns the seed last applied to the engine.
	LocalSeed() uint64

	// SetLocalSeed reseeds the engine and resets the distribution state.
	SetLocalSeed(seed uint64)

	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// noCopy may be embedded into structs which must not be copied
// after first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Base holds the engine and local seed shared by all randomizers.
// It is embedded by [Uniform] and [Gaussian]; it implements [Rand]
// but not [Randomizer], since every concrete randomizer has to
// reset its own distribution when reseeded.
//
// A Base must not be copied, and is not safe for concurrent use.
type Base struct {
	noCopy noCopy

	localSeed uint64

	// engine is a 32-bit Mersenne Twister; only the low 32 bits
	// of the seed affect its state.
	engine *prng.MT19937
	rnd    *rand.Rand
}

// init sets up the engine with the given seed.
func (b *Base) init(seed uint64) {
	b.engine = prng.NewMT19937()
	b.rnd = rand.New(b.engine)
	b.reseed(seed)
}

// reseed restarts the engine from the given seed. Callers must also
// reset their distribution state.
func (b *Base) reseed(seed uint64) {
	b.localSeed = seed
	b.engine.Seed(seed)
}

// LocalSeed returns the seed last applied to the engine.
func (b *Base) LocalSeed() uint64 {
	return b.localSeed
}

// Uint64 returns a pseudo-random 64-bit value as a uint64.
func (b *Base) Uint64() uint64 {
	return b.rnd.Uint64()
}

// IntN returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
// It panics if n <= 0.
func (b *Base) IntN(n int) int {
	return b.rnd.IntN(n)
}

// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
func (b *Base) Float64() float64 {
	return b.rnd.Float64()
}

// Float32 returns, as a float32, a pseudo-random number in the half-open interval [0.0,1.0).
func (b *Base) Float32() float32 {
	return b.rnd.Float32()
}

// NormFloat64 returns a standard normal float64 straight from the engine,
// bypassing any distribution state.
func (b *Base) NormFloat64() float64 {
	return b.rnd.NormFloat64()
}

// ExpFloat64 returns an exponentially distributed float64 with rate 1.
func (b *Base) ExpFloat64() float64 {
	return b.rnd.ExpFloat64()
}

// Perm returns, as a slice of n ints, a pseudo-random permutation of the integers
// in the half-open interval [0,n).
func (b *Base) Perm(n int) []int {
	return b.rnd.Perm(n)
}

// Shuffle pseudo-randomizes the order of elements with a Fisher-Yates
// shuffle driven by this engine.
// n is the number of elements. Shuffle panics if n < 0.
// swap swaps the elements with indexes i and j.
func (b *Base) Shuffle(n int, swap func(i, j int)) {
	b.rnd.Shuffle(n, swap)
}

// ShuffleSlice shuffles the elements of s in place using r.
func ShuffleSlice[S ~[]E, E any](r Randomizer, s S) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
