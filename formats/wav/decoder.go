// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/utils"
)

type Decoder struct{}

// Decode reads a whole integer PCM WAV stream.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, int, error) {
	d, pcm, err := decodePCM(r)
	if err != nil {
		return nil, 0, err
	}

	depth := int(d.BitDepth)
	samples := make([]float64, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = utils.PCMToFloat(v, depth)
	}

	return audio.Deinterleave(samples, int(d.NumChans)), int(d.SampleRate), nil
}

func decodePCM(r io.Reader) (*gowav.Decoder, *goaudio.IntBuffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	d := gowav.NewDecoder(rs)
	if !d.IsValidFile() {
		return nil, nil, ErrNotWavFile
	}

	if d.WavAudioFormat != formatPCM {
		return nil, nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, d.WavAudioFormat)
	}

	switch d.BitDepth {
	case 16, 24, 32:
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, d.BitDepth)
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedWavLayout, err)
	}

	return d, pcm, nil
}
