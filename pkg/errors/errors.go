package errors

import "errors"

// ErrInvalidData indicates a value of an unexpected type crossed a layer boundary.
var ErrInvalidData = errors.New("invalid data type")
