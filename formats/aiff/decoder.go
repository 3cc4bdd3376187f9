// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/utils"
)

const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, int, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return decodeStream(dec, int(dec.BitDepth))
}

func decodeStream(dec aiffReader, bitDepth int) (*audio.Buffer, int, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, 0, ErrUnsupportedAiffLayout
	}

	pcm := &goaudio.IntBuffer{
		Data:   make([]int, readChunk*format.NumChannels),
		Format: format,
	}

	var samples []float64
	for {
		n, err := dec.PCMBuffer(pcm)
		for _, v := range pcm.Data[:n] {
			samples = append(samples, utils.PCMToFloat(v, bitDepth))
		}

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading aiff samples: %w", err)
		}
	}

	return audio.Deinterleave(samples, format.NumChannels), format.SampleRate, nil
}
