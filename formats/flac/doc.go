// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC encoding, decoding and Vorbis-comment tagging
// on top of github.com/mewkiz/flac.
//
// The encoder writes 16-bit samples in blocks of up to BlockSize frames using
// verbatim (uncompressed) subframes. A short final block borrows frames from
// the one before it so that no block is smaller than 16 frames, and buffers
// shorter than that are padded with silence. Up to eight channels are
// supported, mapped onto the independent FLAC channel assignments.
//
// Tagger re-encodes an existing stream with a VORBIS_COMMENT block. Field
// names are upper-cased; a tag replaces any existing comment with the same
// name. Seek tables are dropped because frame offsets change.
package flac
