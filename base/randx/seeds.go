// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// Seeds is a set of local seeds, typically one per run or per randomizer.
type Seeds []uint64

// Init allocates given number of seeds and initializes them to
// sequential numbers 1..n
func (rs *Seeds) Init(n int) {
	*rs = make([]uint64, n)
	for i := range *rs {
		(*rs)[i] = uint64(i) + 1
	}
}

// Dispatch allocates n seeds drawn in order from the given dispatcher.
// A nil dispatcher uses the process-wide one.
func (rs *Seeds) Dispatch(d *SeedDispatcher, n int) {
	if d == nil {
		d = dispatcher()
	}
	*rs = make([]uint64, n)
	for i := range *rs {
		(*rs)[i] = d.NextSeed()
	}
}

// Set applies the seed at the given index to the given randomizer.
func (rs Seeds) Set(idx int, r Randomizer) {
	r.SetLocalSeed(rs[idx])
}

// NewSeeds sets a new set of seeds based on the current time.
func (rs Seeds) NewSeeds() {
	rn := uint64(time.Now().UnixNano())
	for i := range rs {
		rs[i] = rn + uint64(i)
	}
}
