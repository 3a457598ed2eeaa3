package commands

import (
	"context"

	"petadoption/internal/core/domain/model/order"
	"petadoption/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles admin decisions on pending orders.
// Approving keeps the pet claimed; rejecting releases it back to the
// available pool. The status change and the release happen in the same
// transaction, so a rejected order never leaves the pet stuck unavailable.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Rejected, actor.Role())
//
//	decided, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAccessForbidden):
//	    // actor is not an admin
//	case errors.Is(err, errs.ErrConflict):
//	    // order already decided
//	case err != nil:
//	    // not found or infrastructure failure
//	default:
//	    fmt.Printf("Order %s is now %s", decided.ID(), decided.Status())
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order decisions.
// Requires an OrderUoWFactory because rejection spans the order and pet
// repositories.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order decision command.
// Only admins may decide orders, and only pending orders can be decided.
// The actor's role is validated here rather than trusted from the transport
// layer alone.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.ActorRole().IsAdmin() {
		return nil, errs.NewAccessForbiddenError("admin access required")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	decided, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	switch cmd.Status() {
	case order.Approved:
		err = decided.Approve()
	case order.Rejected:
		err = decided.Reject()
	default:
		return nil, ErrStatusIsNotDecision
	}

	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, decided); err != nil {
		return nil, err
	}

	if cmd.Status() == order.Rejected {
		if err = uow.PetRepository().Release(ctx, decided.PetID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return decided, nil
}
