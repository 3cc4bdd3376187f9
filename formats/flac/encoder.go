// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/meta"
)

const (
	// BlockSize is the largest number of frames per FLAC frame.
	BlockSize = 4096

	bitsPerSample = 16

	// streaminfo rejects block sizes below this
	minBlockSize = 16
)

// writeSeeker hides Close so the encoder leaves the destination open.
type writeSeeker struct {
	io.WriteSeeker
}

// Encoder writes 16-bit FLAC with verbatim subframes.
//
// Buffers shorter than 16 frames are padded with trailing silence up to 16
// frames, the smallest block a FLAC stream may declare.
type Encoder struct{}

func (Encoder) Encode(ctx context.Context, w io.WriteSeeker, buf *audio.Buffer, sampleRate int) error {
	layout, err := layoutFor(buf.Channels())
	if err != nil {
		return err
	}

	frames := max(buf.Frames(), minBlockSize)
	sizes := blockSizes(frames)
	fixed := uniform(sizes)

	info := &meta.StreamInfo{
		BlockSizeMin:  uint16(slices.Min(sizes)),
		BlockSizeMax:  uint16(sizes[0]),
		SampleRate:    uint32(sampleRate),
		NChannels:     uint8(buf.Channels()),
		BitsPerSample: bitsPerSample,
		NSamples:      uint64(frames),
	}

	enc, err := flac.NewEncoder(writeSeeker{w}, info)
	if err != nil {
		return fmt.Errorf("writing flac header: %w", err)
	}

	pcm := make([][]int32, buf.Channels())
	start := 0
	for num, size := range sizes {
		if err := ctx.Err(); err != nil {
			enc.Close()
			return fmt.Errorf("%w", err)
		}

		for c, ch := range buf.Data {
			samples := make([]int32, size)
			// frames past the end of ch stay zero
			for i, v := range ch[min(start, len(ch)):min(start+size, len(ch))] {
				samples[i] = int32(utils.FloatToPCM(v, bitsPerSample))
			}
			pcm[c] = samples
		}
		start += size

		f := verbatimFrame(fixed, info.SampleRate, bitsPerSample, layout, pcm)
		if err := enc.WriteFrame(f); err != nil {
			enc.Close()
			return fmt.Errorf("writing flac frame %d: %w", num, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing flac stream: %w", err)
	}

	return nil
}
