package queries

import (
	"errors"
	"time"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves adoption orders scoped to the actor: regular
// users see only their own orders, admins see every order.
//
// Example:
//
//	query, err := NewGetOrdersQuery(actor.ID(), actor.Role())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the actor's order view.
// Returns an error if the actor ID or role is invalid.
func NewGetOrdersQuery(actorID kernel.UUID, actorRole user.Role) (GetOrdersQuery, error) {
	ordersQuery := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ordersQuery.setActorID(actorID),
		ordersQuery.setActorRole(actorRole),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return ordersQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns the identifier of the user viewing orders.
func (q GetOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role of the user viewing orders.
func (q GetOrdersQuery) ActorRole() user.Role {
	return q.actorRole
}

func (q *GetOrdersQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetOrdersQuery) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}

// OrderResponse represents one adoption order in a listing.
type OrderResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	PetID           kernel.UUID
	PetName         string
	ShippingName    string
	ShippingAddress string
	ShippingPhone   string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
