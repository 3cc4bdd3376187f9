// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrBadShape reports a buffer whose dimensionality cannot be brought to
	// (channels, frames).
	ErrBadShape = errors.New("bad audio shape")

	// ErrUnsupportedType reports a payload value that is neither a tensor nor
	// numeric array-like data.
	ErrUnsupportedType = errors.New("unsupported audio format")

	// ErrUnrecognizedStructure reports a keyed payload without a waveform entry.
	ErrUnrecognizedStructure = errors.New("unrecognized audio format")

	// ErrIO reports filesystem failures around the output file.
	ErrIO = errors.New("audio i/o failure")

	// ErrUnsupportedContainer reports a container format with no registered codec.
	ErrUnsupportedContainer = errors.New("unsupported container format")

	// ErrEncode reports a codec failure while writing the container.
	ErrEncode = errors.New("audio encode failure")

	// ErrInvalidOption reports an output option outside its declared range.
	ErrInvalidOption = errors.New("invalid output option")

	// ErrInvalidRate reports a non-positive sample rate.
	ErrInvalidRate = errors.New("sample rate must be positive")
)

// ErrNonFinite reports NaN or infinite samples, which cannot be normalized.
var ErrNonFinite = errors.New("non-finite audio sample")
