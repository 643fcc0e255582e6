// Package guard provides the constructor guard pattern used by domain objects.
// Embedding a ConstructorGuard and checking it in Validate ensures that value
// objects, commands, and aggregates cannot be used as bare zero values and
// must go through their validating constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no specific error was supplied by the caller.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through a
// constructor. The zero value is invalid; NewConstructorGuard produces a
// valid guard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Constructors call this as the first step of building their object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
