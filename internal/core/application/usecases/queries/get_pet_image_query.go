package queries

import (
	"errors"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/pkg/guard"
)

var ErrGetPetImageQueryIsNotConstructed = errors.New(
	"GetPetImageQuery must be created via NewGetPetImageQuery constructor",
)

// GetPetImageQuery retrieves a pet's photo. Photos are served from their
// own endpoint so the listing queries stay light.
type GetPetImageQuery struct { //nolint:recvcheck //using for validation
	petID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPetImageQuery creates a query for a pet's photo.
// Returns an error if the pet ID is invalid.
func NewGetPetImageQuery(petID kernel.UUID) (GetPetImageQuery, error) {
	imageQuery := GetPetImageQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := imageQuery.setPetID(petID); err != nil {
		return GetPetImageQuery{}, err
	}

	return imageQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPetImageQueryIsNotConstructed if validation fails.
func (q GetPetImageQuery) Validate() error {
	return q.guard.Validate(ErrGetPetImageQueryIsNotConstructed)
}

// PetID returns the identifier of the pet whose photo is requested.
func (q GetPetImageQuery) PetID() kernel.UUID {
	return q.petID
}

func (q *GetPetImageQuery) setPetID(petID kernel.UUID) error {
	if err := petID.Validate(); err != nil {
		return err
	}

	q.petID = petID
	return nil
}

// PetImageResponse carries a pet's photo and its media type.
type PetImageResponse struct {
	Image     []byte
	ImageType string
}
