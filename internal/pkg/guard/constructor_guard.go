// Package guard detects zero-value structs that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into commands, queries and value objects.
// Only NewConstructorGuard marks it as constructed, so a zero value struct
// fails Validate.
//
// Example:
//
//	type TakeOrderCommand struct {
//	    orderNumber kernel.ID
//	    guard       guard.ConstructorGuard
//	}
//
//	func (c TakeOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns err,
// or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}

	if err == nil {
		return ErrDefaultConstructorGuard
	}

	return err
}
