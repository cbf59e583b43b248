// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestUniformDoubleBounds(t *testing.T) {
	u := NewUniformSeed(1)
	ranges := [][2]float64{{0, 1}, {-10, -5}, {-3.5, 2.25}, {1e6, 1e6 + 1e-3}, {-1, 0}, {1e16, 1e16 + 2}, {-1e16 - 2, -1e16}}
	for _, r := range ranges {
		for range 10000 {
			v := u.Double(r[0], r[1])
			require.GreaterOrEqual(t, v, r[0])
			require.Less(t, v, r[1])
		}
	}
	for range 10000 {
		v := u.Float()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestUniformDoubleMoments(t *testing.T) {
	u := NewUniformSeed(5)
	xs := make([]float64, 100000)
	for i := range xs {
		xs[i] = u.Double(-2, 6)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	assert.InDelta(t, 2.0, mean, 0.05)
	assert.InDelta(t, 8/math.Sqrt(12), std, 0.05)
}

func TestUniformIntBounds(t *testing.T) {
	u := NewUniformSeed(2)
	ranges := [][2]int{{1, 6}, {-6, -1}, {-3, 3}, {0, 1}, {math.MaxInt32 - 2, math.MaxInt32}, {1 << 60, 1<<60 + 1}}
	for _, r := range ranges {
		seen := map[int]bool{}
		for range 10000 {
			v := u.Int(r[0], r[1])
			require.GreaterOrEqual(t, v, r[0])
			require.LessOrEqual(t, v, r[1])
			seen[v] = true
		}
		assert.Len(t, seen, r[1]-r[0]+1, "range %v", r)
	}
}

// TestUniformIntDie rolls a die 10 000 times and checks the counts with
// a chi-square goodness of fit test.
func TestUniformIntLargeBounds(t *testing.T) {
	u := NewUniformSeed(3)
	lo := math.MaxInt64 - 1
	seen := map[int]int{}
	for range 1000 {
		seen[u.Int(lo, math.MaxInt64)]++
		v := u.Int(math.MinInt64, math.MinInt64+2)
		require.GreaterOrEqual(t, v, math.MinInt64)
		require.LessOrEqual(t, v, math.MinInt64+2)
	}
	assert.Len(t, seen, 2)
	assert.InDelta(t, 500, seen[lo], 100)

	assert.NotPanics(t, func() { u.Int(math.MinInt64, math.MaxInt64) })
	for range 1000 {
		w := UniformInteger[uint64](u, math.MaxUint64-1, math.MaxUint64)
		require.GreaterOrEqual(t, w, uint64(math.MaxUint64-1))
	}
}

func TestUniformIntDie(t *testing.T) {
	const n = 10000
	u := NewUniformSeed(7)
	counts := make([]float64, 6)
	for range n {
		v := u.Int(1, 6)
		require.True(t, v >= 1 && v <= 6)
		counts[v-1]++
	}
	expected := make([]float64, 6)
	for i := range expected {
		assert.NotZero(t, counts[i], "face %d never rolled", i+1)
		expected[i] = n / 6.0
	}
	chi2 := stat.ChiSquare(counts, expected)
	limit := distuv.ChiSquared{K: 5}.Quantile(0.999)
	assert.Less(t, chi2, limit)
}

func TestUniformBoolBalance(t *testing.T) {
	const n = 100000
	u := NewUniformSeed(11)
	trues := 0
	for range n {
		if u.Bool() {
			trues++
		}
	}
	assert.InDelta(t, 0.5, float64(trues)/n, 0.01)
}

func TestUniformFloat32(t *testing.T) {
	u := NewUniformSeed(4)
	for range 10000 {
		v := u.Float32Range(-1, 1)
		require.GreaterOrEqual(t, v, float32(-1))
		require.Less(t, v, float32(1))
	}
	// a range only a few ulps wide still never returns upper
	lo := float32(1)
	hi := lo + 4*float32(math.Nextafter32(1, 2)-1)
	for range 10000 {
		v := u.Float32Range(lo, hi)
		require.GreaterOrEqual(t, v, lo)
		require.Less(t, v, hi)
	}
}

func TestUniformInteger(t *testing.T) {
	u := NewUniformSeed(8)
	for range 10000 {
		v := UniformInteger[int8](u, -3, 4)
		require.GreaterOrEqual(t, v, int8(-3))
		require.LessOrEqual(t, v, int8(4))

		w := UniformInteger[uint16](u, 10, 12)
		require.GreaterOrEqual(t, w, uint16(10))
		require.LessOrEqual(t, w, uint16(12))
	}
	a := NewUniformSeed(8)
	b := NewUniformSeed(8)
	for range 100 {
		assert.Equal(t, a.Int(-50, 50), int(UniformInteger[int64](b, -50, 50)))
	}
}

func TestUniformReseed(t *testing.T) {
	u := NewUniformSeed(1)
	draw := func() []float64 {
		var out []float64
		for range 7 {
			out = append(out, u.Double(-1, 1), float64(u.Int(0, 100)))
			if u.Bool() {
				out = append(out, 1)
			}
		}
		return out
	}
	u.SetLocalSeed(99)
	first := draw()
	u.SetLocalSeed(99)
	second := draw()
	assert.Equal(t, first, second)

	fresh := NewUniformSeed(99)
	assert.Equal(t, first[0], fresh.Double(-1, 1))
}

func TestUniformInvalidBounds(t *testing.T) {
	u := NewUniformSeed(1)
	cases := []struct {
		name string
		fn   func()
	}{
		{"equal", func() { u.Double(1, 1) }},
		{"reversed", func() { u.Double(2, 1) }},
		{"nan", func() { u.Double(math.NaN(), 1) }},
		{"int reversed", func() { u.Int(6, 1) }},
		{"int equal", func() { u.Int(3, 3) }},
		{"float32", func() { u.Float32Range(1, 0) }},
		{"generic", func() { UniformInteger(u, 3, 3) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertPanicsWith(t, ErrInvalidBounds, c.fn)
		})
	}
	assert.NoError(t, CheckBounds(3, 4))
}
