package queries

import (
	"context"
	"database/sql"
	"errors"

	"petadoption/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPetImageQueryHandler retrieves pet photos from the database. Photos
// are stored inline with the pet row as a byte column.
type GetPetImageQueryHandler struct {
	db *gorm.DB
}

// NewGetPetImageQueryHandler creates a handler for photo retrieval.
func NewGetPetImageQueryHandler(db *gorm.DB) GetPetImageQueryHandler {
	return GetPetImageQueryHandler{db: db}
}

// Handle executes the query to retrieve one pet's photo.
// Fails with errs.ErrObjectNotFound if the pet does not exist.
func (h GetPetImageQueryHandler) Handle(
	ctx context.Context,
	query GetPetImageQuery,
) (PetImageResponse, error) {
	if err := query.Validate(); err != nil {
		return PetImageResponse{}, err
	}

	var imageResp PetImageResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			image,
			image_type
		FROM pets
		WHERE id = ?
	`, query.PetID().String()).Row()

	if err := row.Scan(&imageResp.Image, &imageResp.ImageType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PetImageResponse{}, errs.NewObjectNotFoundError("petId", query.PetID())
		}
		return PetImageResponse{}, err
	}

	return imageResp, nil
}
