package queries

import (
	"errors"
	"time"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/pkg/guard"
)

var ErrGetAvailablePetsQueryIsNotConstructed = errors.New(
	"GetAvailablePetsQuery must be created via NewGetAvailablePetsQuery constructor",
)

// GetAvailablePetsQuery retrieves the pets currently open for adoption.
// This is the public browse view: pets claimed by a pending or approved
// order are excluded.
//
// Example:
//
//	query := NewGetAvailablePetsQuery()
//	handler := NewGetAvailablePetsQueryHandler(db)
//
//	pets, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available pets: %w", err)
//	}
//
//	fmt.Printf("%d pets looking for a home\n", len(pets))
type GetAvailablePetsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailablePetsQuery creates a query for the public pet listing.
// This is a parameterless query that fetches every available pet.
func NewGetAvailablePetsQuery() GetAvailablePetsQuery {
	return GetAvailablePetsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailablePetsQueryIsNotConstructed if validation fails.
func (q GetAvailablePetsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePetsQueryIsNotConstructed)
}

// PetResponse represents one pet in a listing. The photo itself is not
// included; clients fetch it separately by pet ID.
type PetResponse struct {
	ID          kernel.UUID
	Name        string
	Category    string
	Breed       string
	Gender      string
	Weight      float64
	Height      float64
	Description string
	Available   bool
	CreatedAt   time.Time
}
