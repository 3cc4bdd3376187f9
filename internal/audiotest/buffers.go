// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds helpers shared by the package tests.
package audiotest

import "math"

// Waveform produces channel-major sample data. It returns plain slices (not
// audio.Buffer) so the audio package tests can use it without an import cycle.
func Waveform(channels, frames int, fn func(frame, channel int) float64) [][]float64 {
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, frames)
		for f := range frames {
			data[c][f] = fn(f, c)
		}
	}

	return data
}

// Sine generates a sine wave of the given amplitude.
func Sine(sampleRate, channels, frames int, frequency, amplitude float64) [][]float64 {
	return Waveform(channels, frames, func(frame, _ int) float64 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * math.Sin(2*math.Pi*frequency*t)
	})
}

// Constant fills every sample with value.
func Constant(channels, frames int, value float64) [][]float64 {
	return Waveform(channels, frames, func(int, int) float64 { return value })
}

// Silence is Constant(channels, frames, 0).
func Silence(channels, frames int) [][]float64 {
	return Constant(channels, frames, 0)
}

// Ramp spans [-peak, peak] linearly over the frames.
func Ramp(channels, frames int, peak float64) [][]float64 {
	return Waveform(channels, frames, func(frame, _ int) float64 {
		if frames == 1 {
			return peak
		}
		return -peak + 2*peak*float64(frame)/float64(frames-1)
	})
}

// Flatten concatenates channel-major data row by row.
func Flatten(data [][]float64) []float64 {
	var out []float64
	for _, ch := range data {
		out = append(out, ch...)
	}
	return out
}
