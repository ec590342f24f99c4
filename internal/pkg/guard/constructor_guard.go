// Package guard holds ConstructorGuard, the marker that tells a value built by
// its constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in domain types as a private field. Only
// NewConstructorGuard sets it, so a struct literal or zero value fails Validate.
//
//	type OrderTable struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (t *OrderTable) Validate() error {
//	    return t.guard.Validate(ErrOrderTableIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
