// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile         = errors.New("not a FLAC stream")
	ErrTooManyChannels     = errors.New("FLAC supports at most 8 channels")
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)
