// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"context"
	"io"
	"strconv"

	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/internal/ffmpeg"
)

// DefaultQuality is the LAME VBR quality used when Encoder.Quality is zero.
const DefaultQuality = 2

// Encoder produces MP3 through ffmpeg's libmp3lame.
//
// libmp3lame only accepts the MPEG sample rates 8000, 11025, 12000, 16000,
// 22050, 24000, 32000, 44100 and 48000 Hz. Any other rate fails in Encode
// with the ffmpeg error.
type Encoder struct {
	// Quality is the LAME VBR scale, 0 (best) to 9. Zero means DefaultQuality;
	// use Bitrate for constant bitrate output.
	Quality int
	// Bitrate selects CBR in kbit/s when set, e.g. 192.
	Bitrate int
}

func (e Encoder) codec() ffmpeg.Codec {
	c := ffmpeg.Codec{Name: "libmp3lame", Container: "mp3"}
	if e.Bitrate > 0 {
		c.Args = []string{"-b:a", strconv.Itoa(e.Bitrate) + "k"}
		return c
	}

	q := e.Quality
	if q == 0 {
		q = DefaultQuality
	}
	c.Args = []string{"-q:a", strconv.Itoa(q)}

	return c
}

func (e Encoder) Encode(ctx context.Context, w io.WriteSeeker, buf *audio.Buffer, sampleRate int) error {
	return ffmpeg.Encode(ctx, w, buf, sampleRate, e.codec())
}
