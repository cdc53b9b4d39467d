package cast

import (
	"fmt"

	"github.com/xy-planning-network/trailhead"
)

// An Error reports a raw value that could not be cast as the requested Type.
//
// Type is always the Type passed to the Caster,
// never that of a step the Caster took on the way there.
type Error struct {
	Value any
	Type  Type

	// Cause holds parser-level detail, if any.
	Cause error
}

func newError(v any, t Type) *Error { return &Error{Value: v, Type: t} }

func (e *Error) Error() string {
	msg := fmt.Sprintf("parameter value, %#v, could not be cast as %s", e.Value, e.Type)
	if e.Cause != nil {
		msg += " (" + e.Cause.Error() + ")"
	}

	return msg
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{trailhead.ErrNotValid}
	}

	return []error{trailhead.ErrNotValid, e.Cause}
}
