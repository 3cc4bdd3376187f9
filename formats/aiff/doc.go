// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. It is
// an input format only: files can be loaded and saved as another container
// but not written back as AIFF.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit
//   - Any channel count and sample rate
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("audio.aif")
//	buf, rate, err := aiff.Decoder{}.Decode(f)
//
// Samples come back as float64 in [-1.0, 1.0] in a (channels, frames)
// buffer. Inputs that are not seekable are read into memory first.
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//
// The decoder handles all format differences automatically.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: the sample size is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: the file declares no usable format
package aiff
