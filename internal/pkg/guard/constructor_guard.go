// Package guard lets value objects detect that they were built by their
// constructor rather than as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries. Its zero value is
// "not constructed"; only NewConstructorGuard produces a constructed guard.
//
// Example:
//
//	type ExecuteOrderActionCommand struct {
//	    orderID kernel.UUID
//	    action  services.Action
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ExecuteOrderActionCommand) Validate() error {
//	    return c.guard.Validate(ErrExecuteOrderActionCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
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
