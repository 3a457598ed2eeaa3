package commands

import (
	"errors"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/order"
	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrStatusIsNotDecision = errors.New("status must be approved or rejected")
)

// UpdateOrderStatusCommand represents an admin decision on a pending
// adoption order: approve or reject. The actor's role travels with the
// command so the handler can enforce the admin requirement regardless of
// what the transport layer checked.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Approved, actor.Role())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	decided, err := handler.Handle(ctx, cmd)
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	status    order.Status
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to decide a pending order.
// Validates that the order ID is valid, the target status is a decision
// (Approved or Rejected), and the actor role is valid. Returns an error if
// any validation fails.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status, actorRole user.Role) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
		statusCommand.setActorRole(actorRole),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being decided.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the decision: order.Approved or order.Rejected.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// ActorRole returns the role of the user making the decision.
func (c UpdateOrderStatusCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if status != order.Approved && status != order.Rejected {
		return ErrStatusIsNotDecision
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
