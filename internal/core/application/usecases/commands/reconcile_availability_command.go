package commands

import (
	"errors"

	"petadoption/internal/pkg/guard"
)

var ErrReconcileAvailabilityCommandIsNotConstructed = errors.New(
	"ReconcileAvailabilityCommand must be created via NewReconcileAvailabilityCommand constructor",
)

// ReconcileAvailabilityCommand triggers a sweep that realigns every pet's
// availability flag with its orders: pets without an active order become
// available, pets with one become unavailable. A safety net for flags left
// inconsistent by crashes mid-transaction.
type ReconcileAvailabilityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileAvailabilityCommand creates a command to reconcile
// availability flags. The command carries no parameters; the sweep always
// covers every pet.
func NewReconcileAvailabilityCommand() (ReconcileAvailabilityCommand, error) {
	return ReconcileAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileAvailabilityCommandIsNotConstructed if validation fails.
func (c ReconcileAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileAvailabilityCommandIsNotConstructed)
}
