// Package guard provides the constructor guard shared by commands, queries and
// domain value objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its constructor. The zero
// value is "not constructed", so embedding a guard lets Validate tell a struct
// literal apart from a properly validated instance.
//
// Example:
//
//	type CreateOrderCommand struct {
//	    username string
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
