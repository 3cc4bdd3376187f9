// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"

	"github.com/mewkiz/flac/frame"
)

// independent channel assignments indexed by channel count - 1.
var layouts = [...]frame.Channels{
	frame.ChannelsMono,
	frame.ChannelsLR,
	frame.ChannelsLRC,
	frame.ChannelsLRLsRs,
	frame.ChannelsLRCLsRs,
	frame.ChannelsLRCLfeLsRs,
	frame.ChannelsLRCLfeCsSlSr,
	frame.ChannelsLRCLfeLsRsSlSr,
}

func layoutFor(channels int) (frame.Channels, error) {
	if channels < 1 || channels > len(layouts) {
		return 0, fmt.Errorf("%w: got %d", ErrTooManyChannels, channels)
	}
	return layouts[channels-1], nil
}

// verbatimFrame wraps per-channel samples into a frame with uncompressed
// subframes. The encoder fills in the frame or sample number.
func verbatimFrame(fixed bool, sampleRate uint32, bitsPerSample uint8, layout frame.Channels, channels [][]int32) *frame.Frame {
	n := len(channels[0])
	f := &frame.Frame{
		Header: frame.Header{
			HasFixedBlockSize: fixed,
			BlockSize:         uint16(n),
			SampleRate:        sampleRate,
			Channels:          layout,
			BitsPerSample:     bitsPerSample,
		},
		Subframes: make([]*frame.Subframe, len(channels)),
	}

	for c, samples := range channels {
		f.Subframes[c] = &frame.Subframe{
			SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
			Samples:   samples,
			NSamples:  n,
		}
	}

	return f
}

// blockSizes splits frames into blocks of at most BlockSize. A tail shorter
// than minBlockSize borrows from the block before it. frames must be at
// least minBlockSize.
func blockSizes(frames int) []int {
	full, tail := frames/BlockSize, frames%BlockSize

	sizes := make([]int, full, full+1)
	for i := range sizes {
		sizes[i] = BlockSize
	}
	if tail == 0 {
		return sizes
	}

	if tail < minBlockSize {
		sizes[full-1] -= minBlockSize - tail
		tail = minBlockSize
	}

	return append(sizes, tail)
}

// uniform reports whether every block but the last has the same size, which
// the fixed-blocksize strategy requires.
func uniform(sizes []int) bool {
	for _, n := range sizes[:max(len(sizes)-1, 0)] {
		if n != sizes[0] {
			return false
		}
	}
	return true
}
