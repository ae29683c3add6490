package neuro

import (
	"errors"
	"fmt"
)

// Domain errors for model evaluation and configuration.
var (
	// ErrShapeMismatch indicates state, coupling and output fields with
	// incompatible dimensions.
	ErrShapeMismatch = errors.New("neuro: field shape mismatch")

	// ErrNonFinite indicates a NaN or Inf in a derivative output,
	// reported only when debug validation is enabled.
	ErrNonFinite = errors.New("neuro: non-finite value in derivative")

	// ErrParameterBounds indicates a parameter outside its documented domain.
	ErrParameterBounds = errors.New("neuro: parameter out of documented domain")

	// ErrUnknownParam indicates a parameter name a model does not declare.
	ErrUnknownParam = errors.New("neuro: unknown parameter")
)

// ParamError wraps a parameter-related error with the offending name.
type ParamError struct {
	Name    string
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s", e.Wrapped, e.Name)
}

func (e *ParamError) Unwrap() error { return e.Wrapped }
