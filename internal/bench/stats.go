// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"math"
	"time"
)

// Aggregate summarizes the timed samples of one scenario.
type Aggregate struct {
	Label  string
	Count  int
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Aggregated reduces a non-empty sample set to its summary statistics.
// StdDev is the population standard deviation.
func Aggregated(label string, samples []time.Duration) Aggregate {
	agg := Aggregate{
		Label: label,
		Count: len(samples),
		Min:   samples[0],
		Max:   samples[0],
	}

	var sum time.Duration
	for _, s := range samples {
		sum += s
		if s < agg.Min {
			agg.Min = s
		}
		if s > agg.Max {
			agg.Max = s
		}
	}
	mean := float64(sum) / float64(len(samples))
	agg.Mean = time.Duration(mean)

	var variance float64
	for _, s := range samples {
		d := float64(s) - mean
		variance += d * d
	}
	variance /= float64(len(samples))
	agg.StdDev = time.Duration(math.Sqrt(variance))

	return agg
}
