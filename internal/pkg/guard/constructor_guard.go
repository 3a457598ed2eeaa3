// Package guard provides a construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect whether the struct was produced by its designated
// constructor or created as a zero value, so validation can reject objects
// that bypassed their invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific validation error is supplied. It guarantees that validation of an
// unconstructed object always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor function. The zero value of the guard marks the object as not
// constructed.
//
// Example usage:
//
//	var ErrAdoptionRequestNotConstructed = errors.New("AdoptionRequest must be created via NewAdoptionRequest")
//
//	type AdoptionRequest struct {
//	    petID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAdoptionRequest(petID kernel.UUID) (AdoptionRequest, error) {
//	    if err := petID.Validate(); err != nil {
//	        return AdoptionRequest{}, err
//	    }
//	    return AdoptionRequest{petID: petID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r AdoptionRequest) Validate() error {
//	    return r.guard.Validate(ErrAdoptionRequestNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the embedding object as
// properly constructed. Call it in every constructor whose object embeds the
// guard.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its
// constructor.
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if it was not
//   - ErrDefaultConstructorGuard if validationError is nil and the object was not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
