// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "math"

// uniformDist draws from [0, 1). It keeps no state between draws,
// but is reset with its engine like every distribution.
type uniformDist struct{}

func (d *uniformDist) reset() {}

func (d *uniformDist) next(r Rand) float64 {
	return r.Float64()
}

// normalDist draws standard normal values with the Marsaglia polar
// method. Each accepted point yields two independent values; the second
// one is cached and returned by the following draw.
type normalDist struct {
	saved    float64
	hasSaved bool
}

// reset drops the cached value. It must be called whenever the engine
// is reseeded, or the first draw after reseeding would come from the
// previous sequence.
func (d *normalDist) reset() {
	d.saved = 0
	d.hasSaved = false
}

func (d *normalDist) next(r Rand) float64 {
	if d.hasSaved {
		d.hasSaved = false
		return d.saved
	}
	var x, y, r2 float64
	for {
		x = 2*r.Float64() - 1
		y = 2*r.Float64() - 1
		r2 = x*x + y*y
		if r2 <= 1 && r2 != 0 {
			break
		}
	}
	mult := math.Sqrt(-2 * math.Log(r2) / r2)
	d.saved = x * mult
	d.hasSaved = true
	return y * mult
}
