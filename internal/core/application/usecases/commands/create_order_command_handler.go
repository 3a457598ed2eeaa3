package commands

import (
	"context"

	"petadoption/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing adoption
// orders. Reserving the pet and inserting the order happen inside one
// transaction, with the reservation executed as a conditional update, so two
// concurrent orders for the same pet cannot both succeed: one commits, the
// other observes the pet as unavailable and fails with a conflict.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), actorID, petID, shipping)
//
//	placed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // pet does not exist
//	case errors.Is(err, errs.ErrConflict):
//	    // pet already claimed by another order
//	case err != nil:
//	    // infrastructure failure
//	default:
//	    fmt.Printf("Order %s placed for %s", placed.ID(), placed.PetName())
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence across the
// order and pet repositories.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Atomically reserves the pet, captures its name, and creates the order in
// pending status. The whole sequence commits or rolls back as one unit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	petRepo := uow.PetRepository()

	// The conditional update carries the availability check; a plain read
	// here would reopen the race between concurrent orders.
	if err := petRepo.Reserve(ctx, cmd.PetID()); err != nil {
		return nil, err
	}

	reservedPet, err := petRepo.Get(ctx, cmd.PetID())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), cmd.PetID(), reservedPet.Name(), cmd.Shipping())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
