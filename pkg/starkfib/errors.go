package starkfib

import "fmt"

// ErrorCode classifies a StarkError by the stage of the pipeline that
// raised it.
type ErrorCode int

const (
	// ErrUnknown represents an unclassified error.
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid Config (see Config.Validate).
	ErrInvalidConfig

	// ErrInvalidTrace represents a trace that fails its shape invariants
	// (ragged rows, zero rows) before proof construction can begin.
	ErrInvalidTrace

	// ErrProofGeneration represents a failure while building a proof.
	ErrProofGeneration

	// ErrSamplingMismatch represents a trace passed to PopulateSampling
	// that does not match the commitment already recorded in the proof.
	ErrSamplingMismatch
)

// StarkError wraps a pipeline failure with the stage it occurred at and,
// where applicable, the underlying error.
type StarkError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message.
func (e *StarkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("starkfib error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("starkfib error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *StarkError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StarkError with the same code.
func (e *StarkError) Is(target error) bool {
	t, ok := target.(*StarkError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
