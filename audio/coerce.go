// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"reflect"
)

// Coerce converts v into a float64 Tensor. Tensors pass through after a shape
// check; numeric slices and arrays of any depth are flattened row-major.
// Nested data must be rectangular.
func Coerce(v any) (Tensor, error) {
	switch t := v.(type) {
	case Tensor:
		return t, t.validate()
	case *Tensor:
		if t == nil {
			return Tensor{}, fmt.Errorf("%w: nil tensor", ErrUnsupportedType)
		}
		return *t, t.validate()
	case ArrayLike:
		return Coerce(t.Value)
	case []float64:
		return Tensor{Shape: []int{len(t)}, Data: t}, nil
	case []float32:
		data := make([]float64, len(t))
		for i, x := range t {
			data[i] = float64(x)
		}
		return Tensor{Shape: []int{len(t)}, Data: data}, nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Tensor{}, fmt.Errorf("%w: nil value", ErrUnsupportedType)
	}
	if !isList(rv) {
		return Tensor{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	shape, err := inferShape(rv)
	if err != nil {
		return Tensor{}, err
	}

	size := 1
	for _, d := range shape {
		size *= d
	}

	data := make([]float64, 0, size)
	data, err = flatten(rv, shape, data)
	if err != nil {
		return Tensor{}, err
	}

	return Tensor{Shape: shape, Data: data}, nil
}

// inferShape follows the first element of every level.
func inferShape(rv reflect.Value) ([]int, error) {
	var shape []int
	for {
		rv = unwrap(rv)
		switch {
		case isList(rv):
			shape = append(shape, rv.Len())
			if rv.Len() == 0 {
				return shape, nil
			}
			rv = rv.Index(0)
		case isNumber(rv):
			return shape, nil
		default:
			return nil, fmt.Errorf("%w: element of type %s", ErrUnsupportedType, typeName(rv))
		}
	}
}

func flatten(rv reflect.Value, shape []int, dst []float64) ([]float64, error) {
	rv = unwrap(rv)
	if len(shape) == 0 {
		if !isNumber(rv) {
			if isList(rv) {
				return nil, fmt.Errorf("%w: ragged nesting", ErrBadShape)
			}
			return nil, fmt.Errorf("%w: element of type %s", ErrUnsupportedType, typeName(rv))
		}
		return append(dst, number(rv)), nil
	}

	if !isList(rv) {
		if isNumber(rv) {
			return nil, fmt.Errorf("%w: ragged nesting", ErrBadShape)
		}
		return nil, fmt.Errorf("%w: element of type %s", ErrUnsupportedType, typeName(rv))
	}
	if rv.Len() != shape[0] {
		return nil, fmt.Errorf("%w: ragged nesting, length %d where %d expected", ErrBadShape, rv.Len(), shape[0])
	}

	var err error
	for i := range rv.Len() {
		dst, err = flatten(rv.Index(i), shape[1:], dst)
		if err != nil {
			return nil, err
		}
	}

	return dst, nil
}

func unwrap(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func isList(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

func isNumber(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func number(rv reflect.Value) float64 {
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

func typeName(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	return rv.Type().String()
}
