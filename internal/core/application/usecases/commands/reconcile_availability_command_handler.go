package commands

import (
	"context"
)

// ReconciliationReport summarizes one availability sweep.
type ReconciliationReport struct {
	Released int64 // pets flipped back to available
	Reserved int64 // pets flipped to unavailable
}

// ReconcileAvailabilityCommandHandler handles the periodic availability
// sweep. Both corrective updates run inside one transaction so the sweep
// never observes, or leaves behind, a half-reconciled state.
type ReconcileAvailabilityCommandHandler struct {
	uowFactory PetUoWFactory
}

// NewReconcileAvailabilityCommandHandler creates a handler for the
// availability sweep.
func NewReconcileAvailabilityCommandHandler(uowFactory PetUoWFactory) ReconcileAvailabilityCommandHandler {
	return ReconcileAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command and reports how many flags
// moved in each direction.
func (h ReconcileAvailabilityCommandHandler) Handle(ctx context.Context, cmd ReconcileAvailabilityCommand) (ReconciliationReport, error) {
	if err := cmd.Validate(); err != nil {
		return ReconciliationReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReconciliationReport{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	released, reserved, err := uow.PetRepository().ReconcileAvailability(ctx)
	if err != nil {
		return ReconciliationReport{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReconciliationReport{}, err
	}

	return ReconciliationReport{Released: released, Reserved: reserved}, nil
}
