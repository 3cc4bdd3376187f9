// SPDX-License-Identifier: EPL-2.0

package audman

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audman/audio"
)

// LoadFile decodes an audio file into a Structure payload holding the
// waveform as [][]float64 and the file's sample rate. The decoder is chosen
// by file extension.
func LoadFile(path string) (audio.Structure, error) {
	return LoadFileWith(DefaultRegistry(), path)
}

func LoadFileWith(r *audio.Registry, path string) (audio.Structure, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	dec, ok := r.GetDecoder(ext)
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %q", audio.ErrUnsupportedContainer, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer f.Close()

	buf, rate, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return audio.Structure{
		audio.KeyWaveform:   buf.Data,
		audio.KeySampleRate: rate,
	}, nil
}
