// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// SeedDispatcher derives per-instance seeds from a single initial seed.
// Fixing the initial seed and keeping the order in which randomizers are
// constructed reproduces every derived seed across runs.
//
// Once the first seed has been dispatched the initial seed is frozen:
// later calls to [SeedDispatcher.SetSeed] are ignored with a warning.
// All methods are safe for concurrent use.
type SeedDispatcher struct {
	mu          sync.Mutex
	initialSeed uint64
	dispatched  bool
	engine      *prng.SplitMix64
	rnd         *rand.Rand
}

// NewSeedDispatcher returns a new dispatcher starting from the given
// initial seed. A zero seed is replaced by 1. The result is independent
// of the process-wide dispatcher, which is only reachable through
// [SetGlobalSeed], [GlobalSeed] and [NextSeed]. Use it, for example with
// [Seeds.Dispatch], for a separate reproducible seed sequence.
func NewSeedDispatcher(seed uint64) *SeedDispatcher {
	if seed == 0 {
		seed = 1
	}
	d := &SeedDispatcher{initialSeed: seed}
	d.engine = prng.NewSplitMix64(seed)
	d.rnd = rand.New(d.engine)
	return d
}

// SetSeed sets the initial seed and restarts the derived sequence.
// It is a no-op, apart from a warning, once any seed has been dispatched.
// Zero is not a valid seed; it is replaced by 1.
func (d *SeedDispatcher) SetSeed(seed uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dispatched {
		if seed == 0 {
			slog.Warn("randx: seed cannot be 0; ignoring it")
			return
		}
		slog.Warn("randx: seeds have already been dispatched; changing the global seed now would break deterministic sampling, ignoring it", "seed", seed, "initialSeed", d.initialSeed)
		return
	}
	if seed == 0 {
		slog.Warn("randx: seed cannot be 0; using 1 instead")
		seed = 1
	}
	d.initialSeed = seed
	d.engine.Seed(seed)
}

// InitialSeed returns the seed the dispatched sequence is derived from.
func (d *SeedDispatcher) InitialSeed() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialSeed
}

// NextSeed returns the next derived seed, in [1, math.MaxInt32],
// and freezes the initial seed.
func (d *SeedDispatcher) NextSeed() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dispatched = true
	return uint64(d.rnd.Int32N(math.MaxInt32)) + 1
}

// hasDispatched reports whether any seed has been handed out yet.
func (d *SeedDispatcher) hasDispatched() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dispatched
}

// dispatcher is the process-wide dispatcher, created on first use
// and seeded from the wall clock.
var dispatcher = sync.OnceValue(func() *SeedDispatcher {
	return NewSeedDispatcher(uint64(time.Now().UnixMicro()))
})

// SetGlobalSeed sets the initial seed of the process-wide dispatcher.
// It must be called before any auto-seeded randomizer is created;
// afterwards it only logs a warning. See [SeedDispatcher.SetSeed].
func SetGlobalSeed(seed uint64) {
	dispatcher().SetSeed(seed)
}

// GlobalSeed returns the initial seed of the process-wide dispatcher.
func GlobalSeed() uint64 {
	return dispatcher().InitialSeed()
}

// NextSeed returns the next seed from the process-wide dispatcher.
// It is what [NewUniform] and [NewGaussian] use for their local seed.
func NextSeed() uint64 {
	return dispatcher().NextSeed()
}
