// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audman/audio"
	"github.com/jfreymuth/oggvorbis"
)

const readChunk = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, int, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNotOggVorbis, err)
	}

	return decodeStream(dec)
}

// decodeStream drains dec. Read returns interleaved sample counts.
func decodeStream(dec oggReader) (*audio.Buffer, int, error) {
	channels := dec.Channels()
	if channels <= 0 {
		return nil, 0, ErrNoChannels
	}

	chunk := make([]float32, readChunk*channels)
	var samples []float64

	for {
		n, err := dec.Read(chunk)
		for _, v := range chunk[:n] {
			samples = append(samples, float64(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading vorbis packets: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if len(samples) < channels {
		return nil, 0, ErrEmptyStream
	}

	return audio.Deinterleave(samples, channels), dec.SampleRate(), nil
}
