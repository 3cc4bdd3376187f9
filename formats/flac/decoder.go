// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/utils"
	"github.com/mewkiz/flac"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, int, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNotFlacFile, err)
	}
	defer stream.Close()

	bits := int(stream.Info.BitsPerSample)
	if bits < 4 || bits > 32 {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	buf := &audio.Buffer{Data: make([][]float64, stream.Info.NChannels)}
	for {
		f, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading flac frame: %w", err)
		}

		for c, sub := range f.Subframes {
			for _, s := range sub.Samples {
				buf.Data[c] = append(buf.Data[c], utils.PCMToFloat(int(s), bits))
			}
		}
	}

	return buf, int(stream.Info.SampleRate), nil
}
