// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "golang.org/x/exp/constraints"

// PChoose returns an index into ps chosen at random with the probability
// given by each entry. The entries should sum to 1; any shortfall falls
// to the last index.
func PChoose[F constraints.Float](r Rand, ps []F) int {
	pv := F(r.Float64())
	var sum F
	for i, p := range ps {
		sum += p
		if pv < sum {
			return i
		}
	}
	return len(ps) - 1
}

// PChoose32 is [PChoose] for float32 weights.
func PChoose32(r Rand, ps []float32) int { return PChoose(r, ps) }

// PChoose64 is [PChoose] for float64 weights.
func PChoose64(r Rand, ps []float64) int { return PChoose(r, ps) }
