package fl

import (
	"fmt"
	"math"
	"slices"
)

// Average returns the element-wise mean of the given parameter sets.
//
// All sets must share the same keys and, per key, the same shape. The inputs
// are never modified and the result never shares memory with them. Integer
// inputs are averaged with floating-point division. Non-finite inputs, and
// sums that overflow float64, fail with ErrInvalidInput.
func Average[T Number](parameters []ParameterSet[T]) (ParameterSet[float64], error) {
	if len(parameters) == 0 {
		return nil, fmt.Errorf("%w: empty parameter collection", ErrInvalidInput)
	}
	if err := checkConsistent(parameters); err != nil {
		return nil, err
	}

	avg := Convert[float64](parameters[0])
	n := float64(len(parameters))
	for k, acc := range avg {
		for _, ps := range parameters[1:] {
			for i, v := range ps[k].Data {
				acc.Data[i] += float64(v)
			}
		}
		for i := range acc.Data {
			acc.Data[i] /= n
			if !finite(acc.Data[i]) {
				return nil, fmt.Errorf("%w: parameter %q[%d] averages to %v", ErrInvalidInput, k, i, acc.Data[i])
			}
		}
	}

	return avg, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// checkConsistent verifies every set against the first one before any
// accumulation takes place.
func checkConsistent[T Number](parameters []ParameterSet[T]) error {
	first := parameters[0]
	keys := first.Keys()
	for i, ps := range parameters {
		if err := ps.Validate(); err != nil {
			return fmt.Errorf("participant %d: %w", i, err)
		}
		for _, k := range keys {
			for j, v := range ps[k].Data {
				if !finite(float64(v)) {
					return fmt.Errorf("%w: participant %d parameter %q[%d] is %v", ErrInvalidInput, i, k, j, v)
				}
			}
		}
		if i == 0 {
			continue
		}
		if !slices.Equal(keys, ps.Keys()) {
			return fmt.Errorf("%w: participant %d has keys %v, expected %v", ErrKeyMismatch, i, ps.Keys(), keys)
		}
		for _, k := range keys {
			if !first[k].SameShape(ps[k]) {
				return fmt.Errorf("%w: participant %d parameter %q has shape %v, expected %v", ErrShapeMismatch, i, k, ps[k].Shape, first[k].Shape)
			}
		}
	}

	return nil
}
