package ports

import (
	"context"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for adoption order
// aggregates.
type OrderRepository interface {
	// Add persists a newly placed order to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and update timestamp of an existing order.
	// Fails with errs.ErrObjectNotFound if no such order exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Fails with errs.ErrObjectNotFound if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
