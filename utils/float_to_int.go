// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToPCM scales a sample in [-1, 1] to a signed integer of bitDepth bits.
// Values outside the range are clamped. The positive side uses max-1 so that
// 1.0 never overflows.
func FloatToPCM(x float64, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	maxVal := float64(int64(1)<<(bitDepth-1) - 1)

	return int(x * maxVal)
}

// Float64ToInt16 is FloatToPCM for 16-bit output.
func Float64ToInt16(x float64) int16 {
	return int16(FloatToPCM(x, 16))
}

// PCMToFloat is the inverse of FloatToPCM, dividing by 2^(bitDepth-1).
func PCMToFloat(v int, bitDepth int) float64 {
	return float64(v) / float64(int64(1)<<(bitDepth-1))
}
