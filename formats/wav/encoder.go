// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"context"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/utils"
)

// DefaultBitDepth is used when Encoder.BitDepth is zero.
const DefaultBitDepth = 16

const formatPCM = 1

// Encoder writes integer PCM WAV files.
type Encoder struct {
	// BitDepth is 16, 24 or 32. Zero means DefaultBitDepth.
	BitDepth int
}

func (e Encoder) bitDepth() int {
	if e.BitDepth == 0 {
		return DefaultBitDepth
	}
	return e.BitDepth
}

func (e Encoder) Encode(ctx context.Context, w io.WriteSeeker, buf *audio.Buffer, sampleRate int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w", err)
	}

	depth := e.bitDepth()
	switch depth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	channels := buf.Channels()
	interleaved := buf.Interleaved()

	pcm := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(interleaved)),
		SourceBitDepth: depth,
	}
	for i, v := range interleaved {
		pcm.Data[i] = utils.FloatToPCM(v, depth)
	}

	enc := gowav.NewEncoder(w, sampleRate, depth, channels, formatPCM)
	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
