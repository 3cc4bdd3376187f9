// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float64
		x              float64
		want           float64
		tolerance      float64
	}{
		{name: "start returns y1", y0: 0, y1: 1, y2: 2, y3: 3, x: 0, want: 1, tolerance: 1e-12},
		{name: "end returns y2", y0: 0, y1: 1, y2: 2, y3: 3, x: 1, want: 2, tolerance: 1e-12},
		{name: "linear data stays linear", y0: 1, y1: 2, y2: 3, y3: 4, x: 0.25, want: 2.25, tolerance: 1e-12},
		{name: "symmetric crossing", y0: -1, y1: -0.5, y2: 0.5, y3: 1, x: 0.5, want: 0, tolerance: 1e-12},
		{name: "waveform peak", y0: 0.5, y1: 0.9, y2: 0.7, y3: 0.3, x: 0.3, want: 0.85, tolerance: 0.1},
		{name: "silence", x: 0.5, want: 0, tolerance: 0},
		{name: "constant", y0: 0.7, y1: 0.7, y2: 0.7, y3: 0.7, x: 0.37, want: 0.7, tolerance: 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if diff := math.Abs(got - tt.want); diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (diff %v)", got, tt.want, diff)
			}
		})
	}
}

func TestCubicAt(t *testing.T) {
	t.Parallel()

	ramp := []float64{0, 1, 2, 3, 4, 5}

	tests := []struct {
		name    string
		samples []float64
		pos     float64
		want    float64
	}{
		{name: "on a sample", samples: ramp, pos: 3, want: 3},
		{name: "between samples", samples: ramp, pos: 2.5, want: 2.5},
		{name: "first interval clamps left edge", samples: ramp, pos: 0.5, want: 0.4375},
		{name: "last sample", samples: ramp, pos: 5, want: 5},
		{name: "single sample", samples: []float64{0.3}, pos: 0.8, want: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CubicAt(tt.samples, tt.pos); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CubicAt(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestCubicAt_NoAllocations(t *testing.T) {
	samples := make([]float64, 64)
	for i := range samples {
		samples[i] = math.Sin(float64(i) / 4)
	}

	allocs := testing.AllocsPerRun(100, func() {
		_ = CubicAt(samples, 17.25)
	})
	if allocs != 0 {
		t.Errorf("CubicAt allocated %v times per call, want 0", allocs)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CubicInterpolate(0.1, 0.5, 0.3, -0.2, 0.5)
	}
}

// BenchmarkCubicAt simulates the inner loop of a 44.1kHz -> 8kHz pass
func BenchmarkCubicAt(b *testing.B) {
	samples := make([]float64, 4410)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 44100)
	}
	ratio := 44100.0 / 8000.0
	frames := int(float64(len(samples)) / ratio)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range frames {
			_ = CubicAt(samples, float64(j)*ratio)
		}
	}
}
