// Package guard implements the constructor guard pattern used by value
// objects, commands and queries to detect zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is passed, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding it in a struct makes zero-value instances
// distinguishable from properly constructed ones.
//
// Example usage:
//
//	type Item struct {
//	    product string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewItem(product string) (Item, error) {
//	    if product == "" {
//	        return Item{}, errors.New("product is required")
//	    }
//	    return Item{product: product, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Item) Validate() error {
//	    return i.guard.Validate(ErrItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor, the provided validationError otherwise. A nil validationError
// is replaced with ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
