// Package petrepo implements pet persistence over GORM. It maps the pet
// aggregate to its relational representation and carries the conditional
// availability updates the adoption lifecycle depends on.
package petrepo

import (
	"time"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/pet"

	"github.com/google/uuid"
)

// PetDTO represents the database structure for persisting pet aggregates.
// The photo is stored inline as a byte column; gender is stored as its wire
// string. The available flag is indexed because the public listing and both
// reconciliation updates filter on it.
type PetDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Category    string
	Breed       string
	Gender      string
	Weight      float64
	Height      float64
	Description string
	Image       []byte `gorm:"type:bytea"`
	ImageType   string
	Available   bool `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for pet entities.
func (PetDTO) TableName() string {
	return "pets"
}

func fromDomain(aggregate *pet.Pet) PetDTO {
	return PetDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Category:    aggregate.Category(),
		Breed:       aggregate.Breed(),
		Gender:      aggregate.Gender().String(),
		Weight:      aggregate.Weight(),
		Height:      aggregate.Height(),
		Description: aggregate.Description(),
		Image:       aggregate.Image(),
		ImageType:   aggregate.ImageType(),
		Available:   aggregate.IsAvailable(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto PetDTO) (*pet.Pet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	gender, err := pet.GenderFromString(dto.Gender)
	if err != nil {
		return nil, err
	}

	return pet.RestorePet(
		id, dto.Name, dto.Category, dto.Breed, gender,
		dto.Weight, dto.Height, dto.Description,
		dto.Image, dto.ImageType, dto.Available, dto.CreatedAt,
	)
}
