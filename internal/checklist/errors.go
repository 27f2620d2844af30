package checklist

import (
	"errors"
	"fmt"
)

// ErrMalformedChecklist is matched by every *MalformedChecklistError.
var ErrMalformedChecklist = errors.New("malformed checklist")

// MalformedChecklistError reports a body that does not follow the
// checklist layout.
type MalformedChecklistError struct {
	Reason string
	Err    error
}

func (e *MalformedChecklistError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed checklist: %s: %v", e.Reason, e.Err)
	}
	return "malformed checklist: " + e.Reason
}

func (e *MalformedChecklistError) Unwrap() error { return e.Err }

func (e *MalformedChecklistError) Is(target error) bool {
	return target == ErrMalformedChecklist
}

func malformed(reason string, err error) error {
	return &MalformedChecklistError{Reason: reason, Err: err}
}
