package ports

import (
	"context"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/pet"
)

// PetRepository defines the persistence contract for pet aggregates.
//
// Reserve and Release are the availability transitions of the adoption
// lifecycle. Both are specified as conditional updates so the availability
// check and the flip happen as one indivisible storage operation; a
// read-then-write pair would let two concurrent adoptions of the same pet
// both succeed.
type PetRepository interface {
	// Add persists a newly listed pet to storage.
	Add(ctx context.Context, aggregate *pet.Pet) error

	// Get retrieves a pet by its unique identifier.
	// Fails with errs.ErrObjectNotFound if no such pet exists.
	Get(ctx context.Context, id kernel.UUID) (*pet.Pet, error)

	// Reserve atomically claims the pet for an adoption order: it flips
	// available to false only if it is currently true, as a single
	// conditional update.
	//
	// Fails with errs.ErrObjectNotFound if the pet does not exist and with
	// errs.ErrConflict if the pet is not available, including when a
	// concurrent reservation won the race.
	Reserve(ctx context.Context, id kernel.UUID) error

	// Release returns the pet to the adoptable pool after its claiming
	// order is rejected. Releasing an already available pet succeeds.
	//
	// Fails with errs.ErrObjectNotFound if the pet does not exist.
	Release(ctx context.Context, id kernel.UUID) error

	// ReconcileAvailability repairs any divergence between the available
	// flag and the set of active orders: pets with no pending or approved
	// order are released, pets with one are reserved. Returns how many
	// rows each direction repaired.
	//
	// The lifecycle engine keeps both sides consistent transactionally, so
	// repairs only occur after out-of-band writes to the store.
	ReconcileAvailability(ctx context.Context) (released, reserved int64, err error)
}
