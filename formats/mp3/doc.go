// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding, encoding and ID3v2 tagging.
//
// Decoding uses github.com/hajimehoshi/go-mp3, which always yields
// 16-bit stereo; mono files come back with both channels equal.
//
// Encoding pipes 16-bit PCM through an external ffmpeg process using
// libmp3lame. Encoder reports ffmpeg.ErrUnavailable when no ffmpeg binary is
// in PATH. Quality selects VBR output, Bitrate selects CBR.
//
// Tagger writes ID3v2.4 frames with github.com/bogem/id3v2. Title, artist,
// album, year, genre, composer, track and comment map to their standard
// frames; other keys become TXXX frames named after the key.
package mp3
