// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command distsplot draws samples from the seeded randomizers and
// prints a histogram of the results with summary statistics.
package main

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LogPrec is precision for printing float values
const LogPrec = 4

// barWidth is the width of the longest histogram bar, in characters.
const barWidth = 50

// Sim holds the samples and histogram settings for one run.
type Sim struct {

	// number of samples
	NSamp int

	// number of bins in the histogram
	NBins int

	// raw data, sorted after Run
	Values []float64
}

// Run draws NSamp values from gen.
func (ss *Sim) Run(gen func() float64) {
	ss.Values = make([]float64, ss.NSamp)
	for vi := range ss.Values {
		ss.Values[vi] = gen()
	}
	slices.Sort(ss.Values)
}

// Histogram returns the NBins+1 bin dividers spanning the data and the
// count of values in each bin. The last divider is just above the
// maximum so that every value falls in a bin.
func (ss *Sim) Histogram() (dividers, counts []float64) {
	if len(ss.Values) == 0 {
		return nil, nil
	}
	lo, hi := ss.Values[0], ss.Values[len(ss.Values)-1]
	nbins := ss.NBins
	if lo == hi {
		nbins = 1
	}
	dividers = floats.Span(make([]float64, nbins+1), lo, hi)
	dividers[nbins] = math.Nextafter(hi, math.Inf(1))
	counts = stat.Histogram(nil, dividers, ss.Values, nil)
	return dividers, counts
}

// Report writes summary statistics and the histogram to w,
// styling the bars for out.
func (ss *Sim) Report(w io.Writer, out *termenv.Output) {
	if len(ss.Values) == 0 {
		fmt.Fprintln(w, "no samples")
		return
	}
	mean, std := stat.MeanStdDev(ss.Values, nil)
	median := stat.Quantile(0.5, stat.Empirical, ss.Values, nil)
	fmt.Fprintf(w, "n=%d mean=%.*f std=%.*f min=%.*f median=%.*f max=%.*f\n",
		len(ss.Values), LogPrec, mean, LogPrec, std, LogPrec, ss.Values[0],
		LogPrec, median, LogPrec, ss.Values[len(ss.Values)-1])

	dividers, counts := ss.Histogram()
	mx := floats.Max(counts)
	for i, c := range counts {
		n := 0
		if mx > 0 {
			n = int(math.Round(c / mx * barWidth))
		}
		bar := out.String(strings.Repeat("#", n)).Foreground(out.Color("6")).String()
		fmt.Fprintf(w, "%12.*f | %s %d\n", LogPrec, dividers[i], bar, int(c))
	}
}
