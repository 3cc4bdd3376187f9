// SPDX-License-Identifier: EPL-2.0

// Package audio provides the canonical sample buffer and the steps that bring
// an arbitrary host payload into it.
//
// This package contains the core building blocks:
//   - Payload variants (Tensor, Structure, ArrayLike) and Resolve
//   - Coerce for untyped numeric data
//   - Canonical for shape normalization to (channels, frames)
//   - Resampler for sample rate conversion
//   - NormalizePeak for amplitude limiting
//   - Registry for encoder and decoder registration
//
// # Payloads
//
// The host may hand over a typed tensor, a keyed structure or plain nested
// slices. Prepare resolves any of them once into a *Buffer:
//
//	buf, rate, err := audio.Prepare(audio.Structure{
//	    "waveform":    audio.Tensor{Shape: []int{1, 2, 22050}, Data: samples},
//	    "sample_rate": 22050,
//	}, audio.DefaultSampleRate)
//
// A structure without a "waveform" key fails with ErrUnrecognizedStructure and
// names the keys it did have. A "sample_rate" entry overrides the default.
//
// # Shapes
//
// Canonical accepts 1-D (single channel), 2-D (channels, frames) and 3-D
// (batch, channels, frames) data. The batch axis must be 1. Everything else
// fails with ErrBadShape.
//
// # Resampling
//
// Resample changes the sample rate of a buffer using cubic interpolation:
//
//	out, err := audio.Resample(buf, 22050, 44100)
//
// When the rates are equal the same buffer is returned. Downsampling runs a
// one-pole low-pass before interpolation.
//
// # Peak Normalization
//
// NormalizePeak divides every sample by the absolute peak when it exceeds 1.0
// and leaves quieter buffers untouched.
//
// # Codec Registry
//
// Encoders and decoders are registered by format key:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Encoder{})
//	enc, ok := registry.Get("wav")
//
// The registry is safe for concurrent use.
package audio
