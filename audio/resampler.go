// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audman/utils"
)

// Resampler converts whole buffers between sample rates using cubic
// interpolation. Channel count is preserved.
// Includes basic anti-aliasing filtering when downsampling.
type Resampler struct {
	srcRate int
	dstRate int
	ratio   float64 // srcRate / dstRate - how many source frames per output frame

	// Simple low-pass filter for anti-aliasing (when downsampling)
	useFilter   bool
	filterAlpha float64
}

func NewResampler(srcRate, dstRate int) (*Resampler, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, srcRate, dstRate)
	}

	ratio := float64(srcRate) / float64(dstRate)

	// Enable simple low-pass filter when downsampling
	useFilter := ratio > 1.0
	var filterAlpha float64
	if useFilter {
		// One-pole low-pass. This is a simplified filter - a windowed FIR would
		// reject more of the band above the new Nyquist frequency.
		filterAlpha = 0.5
	}

	return &Resampler{
		srcRate:     srcRate,
		dstRate:     dstRate,
		ratio:       ratio,
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
	}, nil
}

func (r *Resampler) SourceRate() int { return r.srcRate }
func (r *Resampler) TargetRate() int { return r.dstRate }

// OutputFrames is the number of frames produced for n input frames,
// n * dst / src rounded to the nearest integer.
func (r *Resampler) OutputFrames(n int) int {
	src := int64(r.srcRate)
	return int((int64(n)*int64(r.dstRate) + src/2) / src)
}

// Process returns a new buffer at the target rate. buf is not modified.
func (r *Resampler) Process(buf *Buffer) *Buffer {
	out := NewBuffer(buf.Channels(), r.OutputFrames(buf.Frames()))
	for c, in := range buf.Data {
		r.channel(in, out.Data[c])
	}

	return out
}

func (r *Resampler) channel(src, dst []float64) {
	if len(src) == 0 {
		return
	}
	if r.useFilter {
		src = r.lowPass(src)
	}

	for j := range dst {
		dst[j] = utils.CubicAt(src, float64(j)*r.ratio)
	}
}

// lowPass applies y[n] = alpha * x[n] + (1-alpha) * y[n-1], starting from the
// first sample to avoid warm-up transients.
func (r *Resampler) lowPass(src []float64) []float64 {
	out := make([]float64, len(src))
	state := src[0]
	for i, x := range src {
		state = r.filterAlpha*x + (1-r.filterAlpha)*state
		out[i] = state
	}

	return out
}

// Resample converts buf from srcRate to dstRate. When the rates match buf is
// returned as is.
func Resample(buf *Buffer, srcRate, dstRate int) (*Buffer, error) {
	if srcRate == dstRate && srcRate > 0 {
		return buf, nil
	}

	r, err := NewResampler(srcRate, dstRate)
	if err != nil {
		return nil, err
	}

	return r.Process(buf), nil
}
