// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Buffer is the canonical (channels, frames) sample layout. Every channel holds
// the same number of frames.
type Buffer struct {
	Data [][]float64
}

// NewBuffer allocates a silent buffer.
func NewBuffer(channels, frames int) *Buffer {
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, frames)
	}

	return &Buffer{Data: data}
}

func (b *Buffer) Channels() int { return len(b.Data) }

func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Shape returns (channels, frames).
func (b *Buffer) Shape() [2]int { return [2]int{b.Channels(), b.Frames()} }

// Peak returns the largest absolute sample value across all channels.
func (b *Buffer) Peak() float64 {
	var peak float64
	for _, ch := range b.Data {
		if len(ch) == 0 {
			continue
		}
		peak = math.Max(peak, math.Max(floats.Max(ch), -floats.Min(ch)))
	}

	return peak
}

// Interleaved returns the samples frame by frame: c0f0, c1f0, c0f1, ...
func (b *Buffer) Interleaved() []float64 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]float64, channels*frames)
	for c, ch := range b.Data {
		for f, v := range ch {
			out[f*channels+c] = v
		}
	}

	return out
}

// Deinterleave builds a buffer from interleaved samples. Trailing samples that
// do not complete a frame are dropped.
func Deinterleave(samples []float64, channels int) *Buffer {
	if channels <= 0 {
		return &Buffer{}
	}

	frames := len(samples) / channels
	b := NewBuffer(channels, frames)
	for f := range frames {
		base := f * channels
		for c := range channels {
			b.Data[c][f] = samples[base+c]
		}
	}

	return b
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{Data: make([][]float64, len(b.Data))}
	for c, ch := range b.Data {
		out.Data[c] = append([]float64(nil), ch...)
	}

	return out
}
