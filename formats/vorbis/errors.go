// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	ErrNotOggVorbis = errors.New("not an Ogg Vorbis stream")
	ErrNoChannels   = errors.New("vorbis stream declares no channels")
	ErrEmptyStream  = errors.New("vorbis stream holds no samples")
)
