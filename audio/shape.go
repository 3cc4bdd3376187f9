// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Canonical brings a tensor into (channels, frames) layout:
//   - 3-D input must have a batch axis of size 1, which is dropped
//   - 1-D input becomes a single channel
//   - anything that is still not 2-D is rejected
//
// The samples are copied, so the tensor is never modified by later steps.
func Canonical(t Tensor) (*Buffer, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	shape := t.Shape
	switch len(shape) {
	case 3:
		if shape[0] != 1 {
			return nil, fmt.Errorf("%w: batch dimension is %d, want 1", ErrBadShape, shape[0])
		}
		shape = shape[1:]
	case 1:
		shape = []int{1, shape[0]}
	}

	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: expected 1, 2 or 3 dimensions, got %d %v", ErrBadShape, len(t.Shape), t.Shape)
	}

	channels, frames := shape[0], shape[1]
	if channels == 0 || frames == 0 {
		return nil, fmt.Errorf("%w: empty buffer %v", ErrBadShape, t.Shape)
	}

	buf := NewBuffer(channels, frames)
	for c := range channels {
		row := t.Data[c*frames : (c+1)*frames]
		for f, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: channel %d frame %d", ErrNonFinite, c, f)
			}
		}
		copy(buf.Data[c], row)
	}

	return buf, nil
}
