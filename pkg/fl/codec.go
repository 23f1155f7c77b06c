package fl

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"unsafe"

	"github.com/fxamacker/cbor/v2"
)

// Tensors travel as nested arrays whose depth equals the rank; a scalar is a
// bare number. Both JSON and CBOR share this layout.

func (t Tensor[T]) MarshalJSON() ([]byte, error) {
	v, err := t.nested()
	if err != nil {
		return nil, err
	}

	return json.Marshal(v)
}

func (t *Tensor[T]) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	return t.fromNested(v)
}

func (t Tensor[T]) MarshalCBOR() ([]byte, error) {
	v, err := t.nested()
	if err != nil {
		return nil, err
	}

	return cbor.Marshal(v)
}

func (t *Tensor[T]) UnmarshalCBOR(data []byte) error {
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}

	return t.fromNested(v)
}

func (t Tensor[T]) nested() (any, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.Rank() == 0 {
		return t.Data[0], nil
	}
	v, _ := build(t.Shape, t.Data)

	return v, nil
}

// build consumes len(shape) levels of data and returns the nested value
// along with the remaining elements.
func build[T Number](shape []int, data []T) (any, []T) {
	if len(shape) == 0 {
		return data[0], data[1:]
	}
	out := make([]any, shape[0])
	for i := range out {
		out[i], data = build(shape[1:], data)
	}

	return out, data
}

func (t *Tensor[T]) fromNested(v any) error {
	shape, err := shapeOf(v)
	if err != nil {
		return err
	}
	data := make([]T, 0)
	if data, err = flatten(v, data); err != nil {
		return err
	}
	*t = Tensor[T]{Shape: shape, Data: data}

	return nil
}

// shapeOf walks the first element of each level and checks that every
// sibling agrees.
func shapeOf(v any) ([]int, error) {
	arr, ok := v.([]any)
	if !ok {
		if _, ok := toFloat(v); !ok {
			return nil, fmt.Errorf("%w: unsupported tensor element %T", ErrShapeMismatch, v)
		}

		return []int{}, nil
	}
	if len(arr) == 0 {
		return []int{0}, nil
	}
	inner, err := shapeOf(arr[0])
	if err != nil {
		return nil, err
	}
	for _, e := range arr[1:] {
		s, err := shapeOf(e)
		if err != nil {
			return nil, err
		}
		if !slices.Equal(s, inner) {
			return nil, fmt.Errorf("%w: ragged array, found sub-shapes %v and %v", ErrShapeMismatch, inner, s)
		}
	}

	return append([]int{len(arr)}, inner...), nil
}

func flatten[T Number](v any, data []T) ([]T, error) {
	if arr, ok := v.([]any); ok {
		var err error
		for _, e := range arr {
			if data, err = flatten(e, data); err != nil {
				return nil, err
			}
		}

		return data, nil
	}
	f, _ := toFloat(v)
	if !finite(f) {
		return nil, fmt.Errorf("%w: non-finite value %v", ErrInvalidInput, f)
	}
	if integral[T]() {
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("%w: value %v is not an integer", ErrInvalidInput, f)
		}
		if lo, hi := intRange[T](); f < lo || f >= hi {
			return nil, fmt.Errorf("%w: value %v overflows %T", ErrInvalidInput, f, T(0))
		}
	}

	return append(data, T(f)), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func integral[T Number]() bool {
	half := 0.5

	return T(half) == 0
}

// intRange returns the inclusive lower and exclusive upper bound of the
// integer type T as float64 values.
func intRange[T Number]() (float64, float64) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if zero-1 < zero {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}

	return 0, math.Ldexp(1, bits)
}
