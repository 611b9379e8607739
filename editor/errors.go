package editor

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected form draft. It is recoverable: the
// draft is retained so the user can correct and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StoreError wraps a failure from the document store. Local state is left
// unchanged except for delete's documented optimistic removal, which the
// next snapshot corrects.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

var (
	// ErrConfirmationMismatch is returned when the typed delete
	// confirmation does not equal the fabric name exactly. Recoverable:
	// the user is re-prompted with a cleared input.
	ErrConfirmationMismatch = errors.New("confirmation does not match the fabric full name")

	// ErrLastFabric guards the delete workflow: the catalog always keeps
	// at least one fabric.
	ErrLastFabric = errors.New("the last remaining fabric cannot be deleted")

	// ErrNoFabricSelected is returned by mutating workflows when the
	// selection is empty, typically because the fabric disappeared while
	// its modal was open.
	ErrNoFabricSelected = errors.New("no fabric selected")

	// ErrRequestInFlight rejects re-entrant submission while a mutating
	// store request is still outstanding.
	ErrRequestInFlight = errors.New("another request is in flight")
)
