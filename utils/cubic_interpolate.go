// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through y0..y3 at x,
// the fractional position between y1 and y2 (0 <= x <= 1).
func CubicInterpolate(y0, y1, y2, y3, x float64) float64 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return ((a0*x+a1)*x+a2)*x + a3
}

// CubicAt interpolates samples at fractional index pos. The first and last
// samples are repeated where the four-point window runs off either end.
// samples must not be empty.
func CubicAt(samples []float64, pos float64) float64 {
	i := int(pos)
	frac := pos - float64(i)

	last := len(samples) - 1
	at := func(k int) float64 {
		if k < 0 {
			return samples[0]
		}
		if k > last {
			return samples[last]
		}
		return samples[k]
	}

	return CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), frac)
}
