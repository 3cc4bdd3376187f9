// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"context"
	"io"
	"strconv"

	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/internal/ffmpeg"
)

// DefaultQuality is the libvorbis quality used when Encoder.Quality is zero.
const DefaultQuality = 5

// Encoder produces Ogg Vorbis through ffmpeg's libvorbis.
type Encoder struct {
	// Quality is the libvorbis VBR quality, 1 to 10.
	Quality int
}

func (e Encoder) codec() ffmpeg.Codec {
	q := e.Quality
	if q <= 0 {
		q = DefaultQuality
	}

	return ffmpeg.Codec{
		Name:      "libvorbis",
		Container: "ogg",
		Args:      []string{"-q:a", strconv.Itoa(min(q, 10))},
	}
}

func (e Encoder) Encode(ctx context.Context, w io.WriteSeeker, buf *audio.Buffer, sampleRate int) error {
	return ffmpeg.Encode(ctx, w, buf, sampleRate, e.codec())
}
