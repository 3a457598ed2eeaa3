package commands

import (
	"errors"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/order"
	"petadoption/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new adoption order.
// Encapsulates the adopting user, the targeted pet, and the shipping details
// captured with the order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, actorID, petID, shipping)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s is pending review", placed.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	userID   kernel.UUID
	petID    kernel.UUID
	shipping order.ShippingInfo

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new adoption order.
// Validates that all identifiers are valid and the shipping details are
// complete. Returns an error if any validation fails.
func NewCreateOrderCommand(orderID, userID, petID kernel.UUID, shipping order.ShippingInfo) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setPetID(petID),
		orderCommand.setShipping(shipping),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the adopting user's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// PetID returns the identifier of the pet being adopted.
func (c CreateOrderCommand) PetID() kernel.UUID {
	return c.petID
}

// Shipping returns the shipping details captured with the order.
func (c CreateOrderCommand) Shipping() order.ShippingInfo {
	return c.shipping
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setPetID(petID kernel.UUID) error {
	if err := petID.Validate(); err != nil {
		return err
	}

	c.petID = petID
	return nil
}

func (c *CreateOrderCommand) setShipping(shipping order.ShippingInfo) error {
	if err := shipping.Validate(); err != nil {
		return err
	}

	c.shipping = shipping
	return nil
}
