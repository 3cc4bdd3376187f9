// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding and encoding.
//
// Decoding uses github.com/jfreymuth/oggvorbis, a pure Go decoder. Samples
// arrive as float32 in [-1, 1] and are widened to float64.
//
// Encoding pipes 16-bit PCM through an external ffmpeg process with
// libvorbis. Quality follows the libvorbis -q:a scale and defaults to 5.
//
// There is no tagger for this container.
package vorbis
