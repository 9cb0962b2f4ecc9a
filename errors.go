package schemauml

import (
	"errors"
	"fmt"
)

// ErrMissingReference is matched by every *MissingReferenceError.
var ErrMissingReference = errors.New("missing reference")

// MissingReferenceError reports a $ref whose target schema is not defined in
// any loaded document.
type MissingReferenceError struct {
	Owner    string
	Property string
	Ref      string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("schema %s: %s references undefined schema %q (%s)", e.Owner, e.Property, RefName(e.Ref), e.Ref)
}

func (e *MissingReferenceError) Unwrap() error {
	return ErrMissingReference
}
