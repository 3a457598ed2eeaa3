package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailablePetsQueryHandler retrieves adoptable pets from the database.
// Reads rows directly; listing freshness relies on the lifecycle engine
// keeping the available flag consistent with active orders.
type GetAvailablePetsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailablePetsQueryHandler creates a handler for the public listing.
// Requires a GORM database connection for query execution.
func NewGetAvailablePetsQueryHandler(db *gorm.DB) GetAvailablePetsQueryHandler {
	return GetAvailablePetsQueryHandler{db: db}
}

// Handle executes the query to retrieve all available pets.
// Results are sorted newest first.
func (h GetAvailablePetsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePetsQuery,
) ([]PetResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			breed,
			gender,
			weight,
			height,
			description,
			available,
			created_at
		FROM pets
		WHERE available = true
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPetRows(rows)
}
