package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repos when no row matches both the resource id
// and the requesting user's id. Callers cannot tell a missing resource from
// one owned by somebody else.
var ErrNotFound = errors.New("resource not found or not owned by user")

// ErrMemberLimit is returned when an insert would push a team past
// MaxMembers.
var ErrMemberLimit = errors.New("team member limit reached")

// DuplicateError reports a unique-constraint violation on the named field.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s '%s' already exists.", e.Field, e.Value)
}
