// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV encoding, decoding and tagging.
//
// It uses the github.com/go-audio libraries for the RIFF container and
// handles integer PCM only.
//
// # Supported Formats
//
//   - PCM 16-bit (default for encoding)
//   - PCM 24-bit and 32-bit
//   - Any channel count and sample rate
//
// # Encoding
//
// Encoder implements audio.Encoder and needs an io.WriteSeeker because the
// RIFF header sizes are patched after the samples are written:
//
//	f, _ := os.Create("out.wav")
//	err := wav.Encoder{BitDepth: 24}.Encode(ctx, f, buf, 48000)
//
// Samples are clamped to [-1, 1] before conversion.
//
// # Decoding
//
// Decoder implements audio.Decoder. Inputs that are not seekable are read
// into memory first.
//
// # Tagging
//
// Tagger rewrites a file with a LIST/INFO chunk. Well-known keys such as
// title, artist, genre or copyright go into their INFO fields; anything else
// is appended to the comment field as key=value. The rewrite goes through a
// temporary file that replaces the original atomically.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrOnlyPCMSupported: the stream uses a compressed or float format
//   - ErrUnsupportedBitDepth: the bit depth is not 16, 24 or 32
//   - ErrUnsupportedWavLayout: the sample data could not be read
package wav
