// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/utils"
)

// go-mp3 always produces interleaved stereo s16le.
const decodedChannels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNotMP3File, err)
	}

	return decodeStream(dec)
}

func decodeStream(dec mp3Reader) (*audio.Buffer, int, error) {
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, fmt.Errorf("reading mp3 frames: %w", err)
	}

	n := len(raw) / 2
	if n < decodedChannels {
		return nil, 0, ErrEmptyMP3
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = utils.PCMToFloat(int(int16(binary.LittleEndian.Uint16(raw[2*i:]))), 16)
	}

	return audio.Deinterleave(samples, decodedChannels), dec.SampleRate(), nil
}
