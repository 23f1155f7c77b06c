package fl

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates an empty parameter collection or an update without parameters.
	ErrInvalidInput = errors.New("invalid input for aggregation")

	// ErrKeyMismatch indicates participants disagree on parameter names.
	ErrKeyMismatch = errors.New("parameter keys do not match")

	// ErrShapeMismatch indicates participants disagree on tensor shapes,
	// or a tensor's data does not fit its declared shape.
	ErrShapeMismatch = errors.New("parameter shapes do not match")

	// ErrRoundMismatch indicates updates from different rounds were mixed.
	ErrRoundMismatch = errors.New("updates belong to different rounds")

	ErrNoUpdates = fmt.Errorf("%w: no updates provided for aggregation", ErrInvalidInput)
)
