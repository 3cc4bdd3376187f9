// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// Keys read from a Structure payload.
const (
	KeyWaveform   = "waveform"
	KeySampleRate = "sample_rate"
)

// DefaultSampleRate is assumed when a payload does not declare its own rate.
const DefaultSampleRate = 44100

// Payload is the audio value handed over by the host. It is one of Tensor,
// *Tensor, Structure or ArrayLike.
type Payload interface {
	payload()
}

// Tensor is an already typed n-dimensional buffer stored row-major.
type Tensor struct {
	Shape []int
	Data  []float64
}

// Structure is a keyed payload carrying the samples under KeyWaveform and an
// optional KeySampleRate.
type Structure map[string]any

// ArrayLike wraps untyped numeric data: nested slices or arrays of any numeric
// element type, including []any as produced by encoding/json.
type ArrayLike struct {
	Value any
}

func (Tensor) payload()    {}
func (Structure) payload() {}
func (ArrayLike) payload() {}

// NewTensor validates that shape describes exactly len(data) values.
func NewTensor(shape []int, data []float64) (Tensor, error) {
	t := Tensor{Shape: shape, Data: data}
	if err := t.validate(); err != nil {
		return Tensor{}, err
	}

	return t, nil
}

// Dims is the number of dimensions.
func (t Tensor) Dims() int { return len(t.Shape) }

func (t Tensor) validate() error {
	size := 1
	for _, d := range t.Shape {
		if d < 0 {
			return fmt.Errorf("%w: negative dimension in %v", ErrBadShape, t.Shape)
		}
		size *= d
	}

	if len(t.Shape) > 0 && size != len(t.Data) {
		return fmt.Errorf("%w: shape %v holds %d values, got %d", ErrBadShape, t.Shape, size, len(t.Data))
	}

	return nil
}

// Resolve turns any payload variant into a tensor and the rate it was
// recorded at. defaultRate is used when the payload does not carry a rate.
func Resolve(p Payload, defaultRate int) (Tensor, int, error) {
	switch v := p.(type) {
	case Tensor:
		t, err := Coerce(v)
		return t, defaultRate, err
	case *Tensor:
		if v == nil {
			return Tensor{}, 0, fmt.Errorf("%w: nil tensor", ErrUnsupportedType)
		}
		t, err := Coerce(*v)
		return t, defaultRate, err
	case ArrayLike:
		t, err := Coerce(v.Value)
		return t, defaultRate, err
	case Structure:
		return resolveStructure(v, defaultRate)
	case nil:
		return Tensor{}, 0, fmt.Errorf("%w: nil payload", ErrUnsupportedType)
	default:
		return Tensor{}, 0, fmt.Errorf("%w: %T", ErrUnsupportedType, p)
	}
}

func resolveStructure(s Structure, defaultRate int) (Tensor, int, error) {
	wf, ok := s[KeyWaveform]
	if !ok {
		keys := slices.Sorted(maps.Keys(s))
		return Tensor{}, 0, fmt.Errorf("%w: expected key %q, got keys [%s]",
			ErrUnrecognizedStructure, KeyWaveform, strings.Join(keys, ", "))
	}

	rate := defaultRate
	if raw, ok := s[KeySampleRate]; ok && raw != nil {
		r, err := sampleRate(raw)
		if err != nil {
			return Tensor{}, 0, err
		}
		rate = r
	}

	t, err := Coerce(wf)
	if err != nil {
		return Tensor{}, 0, err
	}

	return t, rate, nil
}

func sampleRate(v any) (int, error) {
	var rate int
	switch r := v.(type) {
	case int:
		rate = r
	case int32:
		rate = int(r)
	case int64:
		rate = int(r)
	case uint32:
		rate = int(r)
	case uint64:
		rate = int(r)
	case float64:
		if r != math.Trunc(r) {
			return 0, fmt.Errorf("%w: fractional rate %v", ErrInvalidRate, r)
		}
		rate = int(r)
	case float32:
		if float64(r) != math.Trunc(float64(r)) {
			return 0, fmt.Errorf("%w: fractional rate %v", ErrInvalidRate, r)
		}
		rate = int(r)
	default:
		return 0, fmt.Errorf("%w: %s of type %T", ErrInvalidRate, KeySampleRate, v)
	}

	if rate <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRate, rate)
	}

	return rate, nil
}

// Prepare resolves p and brings it into canonical (channels, frames) layout.
func Prepare(p Payload, defaultRate int) (*Buffer, int, error) {
	t, rate, err := Resolve(p, defaultRate)
	if err != nil {
		return nil, 0, err
	}

	buf, err := Canonical(t)
	if err != nil {
		return nil, 0, err
	}

	return buf, rate, nil
}
