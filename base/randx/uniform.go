// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "math"

// UniformRound returns a uniform random value in [min, min+span],
// rounded to the given resolution (e.g., 1 for whole numbers,
// 0.1 for one decimal place). If rnd is nil the global source is used.
func UniformRound(min, span, resolution float64, rnd Rand) float64 {
	if rnd == nil {
		rnd = NewGlobalRand()
	}
	v := min + rnd.Float64()*span
	if resolution <= 0 {
		return v
	}
	return math.Round(v/resolution) / (1 / resolution)
}
