package lifecycle

import "errors"

var (
	// ErrInvalidTransition is returned by Step when the requested
	// transition is not declared in the table.
	ErrInvalidTransition = errors.New("lifecycle: invalid transition")

	// ErrEmptyTable is returned by NewTable when no transitions are declared.
	ErrEmptyTable = errors.New("lifecycle: table has no transitions")
)
