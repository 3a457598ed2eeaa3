package queries

import (
	"context"

	"petadoption/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllPetsQueryHandler retrieves the full pet inventory for admins,
// including pets already claimed by an order.
type GetAllPetsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPetsQueryHandler creates a handler for the admin inventory.
func NewGetAllPetsQueryHandler(db *gorm.DB) GetAllPetsQueryHandler {
	return GetAllPetsQueryHandler{db: db}
}

// Handle executes the query to retrieve every pet.
// Fails with errs.ErrAccessForbidden unless the actor is an admin.
func (h GetAllPetsQueryHandler) Handle(
	ctx context.Context,
	query GetAllPetsQuery,
) ([]PetResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.ActorRole().IsAdmin() {
		return nil, errs.NewAccessForbiddenError("admin access required")
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
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPetRows(rows)
}
