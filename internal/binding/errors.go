package binding

import (
	"errors"
	"fmt"
)

// Domain errors for binding operations. Parse and type errors are always
// recovered locally by falling back to the identity transform; they are
// advisory, never fatal.
var (
	// ErrParse indicates malformed function text.
	ErrParse = errors.New("binding: malformed function")

	// ErrTypeMismatch indicates a function whose result type disagrees
	// with the sink's declared return type.
	ErrTypeMismatch = errors.New("binding: function result type mismatch")

	// ErrMissingData indicates a bound source with no value for the
	// current entity and timestep.
	ErrMissingData = errors.New("binding: no data for entity at timestep")

	// ErrEval indicates a function that failed at evaluation time.
	ErrEval = errors.New("binding: function evaluation failed")
)

// MissingDataError wraps ErrMissingData with lookup context.
type MissingDataError struct {
	Source   string
	NodeID   uint32
	Timestep int
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("binding: source %q has no value for node %d at timestep %d",
		e.Source, e.NodeID, e.Timestep)
}

func (e *MissingDataError) Unwrap() error { return ErrMissingData }
