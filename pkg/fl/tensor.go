package fl

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Tensor may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tensor is a dense row-major array. A tensor with an empty shape is a scalar
// and holds exactly one element.
type Tensor[T Number] struct {
	Shape []int
	Data  []T
}

func NewTensor[T Number](shape []int, data []T) (Tensor[T], error) {
	t := Tensor[T]{Shape: shape, Data: data}
	if err := t.Validate(); err != nil {
		return Tensor[T]{}, err
	}

	return t, nil
}

func Scalar[T Number](v T) Tensor[T] {
	return Tensor[T]{Shape: []int{}, Data: []T{v}}
}

// Vector returns a rank-1 tensor over a copy of values.
func Vector[T Number](values ...T) Tensor[T] {
	return Tensor[T]{Shape: []int{len(values)}, Data: slices.Clone(values)}
}

func (t Tensor[T]) Rank() int {
	return len(t.Shape)
}

// Len returns the number of elements implied by the shape, or -1 when the
// shape is invalid or its element count does not fit in an int.
func (t Tensor[T]) Len() int {
	n, err := elements(t.Shape)
	if err != nil {
		return -1
	}

	return n
}

func (t Tensor[T]) Validate() error {
	n, err := elements(t.Shape)
	if err != nil {
		return err
	}
	if len(t.Data) != n {
		return fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrShapeMismatch, t.Shape, n, len(t.Data))
	}

	return nil
}

func elements(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in shape %v", ErrShapeMismatch, shape)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, fmt.Errorf("%w: shape %v overflows element count", ErrShapeMismatch, shape)
		}
		n *= d
	}

	return n, nil
}

func (t Tensor[T]) Clone() Tensor[T] {
	shape := slices.Clone(t.Shape)
	if shape == nil {
		shape = []int{}
	}

	return Tensor[T]{Shape: shape, Data: slices.Clone(t.Data)}
}

func (t Tensor[T]) SameShape(other Tensor[T]) bool {
	return slices.Equal(t.Shape, other.Shape)
}

func (t Tensor[T]) Equal(other Tensor[T]) bool {
	return t.SameShape(other) && slices.Equal(t.Data, other.Data)
}

// ParameterSet maps layer or parameter names to tensors.
type ParameterSet[T Number] map[string]Tensor[T]

// Keys returns the parameter names in sorted order.
func (ps ParameterSet[T]) Keys() []string {
	keys := make([]string, 0, len(ps))
	for k := range ps {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func (ps ParameterSet[T]) Clone() ParameterSet[T] {
	if ps == nil {
		return nil
	}
	out := make(ParameterSet[T], len(ps))
	for k, t := range ps {
		out[k] = t.Clone()
	}

	return out
}

func (ps ParameterSet[T]) Validate() error {
	for _, k := range ps.Keys() {
		if err := ps[k].Validate(); err != nil {
			return fmt.Errorf("parameter %q: %w", k, err)
		}
	}

	return nil
}

func (ps ParameterSet[T]) Equal(other ParameterSet[T]) bool {
	if len(ps) != len(other) {
		return false
	}
	for k, t := range ps {
		o, ok := other[k]
		if !ok || !t.Equal(o) {
			return false
		}
	}

	return true
}

// Convert copies ps into a parameter set with element type U.
func Convert[U, T Number](ps ParameterSet[T]) ParameterSet[U] {
	if ps == nil {
		return nil
	}
	out := make(ParameterSet[U], len(ps))
	for k, t := range ps {
		data := make([]U, len(t.Data))
		for i, v := range t.Data {
			data[i] = U(v)
		}
		shape := slices.Clone(t.Shape)
		if shape == nil {
			shape = []int{}
		}
		out[k] = Tensor[U]{Shape: shape, Data: data}
	}

	return out
}
