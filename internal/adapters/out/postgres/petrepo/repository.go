package petrepo

import (
	"context"
	"errors"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/pet"
	"petadoption/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPetRepository implements ports.PetRepository using GORM.
type GormPetRepository struct {
	db *gorm.DB
}

// NewGormPetRepository creates a new GORM pet repository.
func NewGormPetRepository(db *gorm.DB) *GormPetRepository {
	return &GormPetRepository{db: db}
}

// Add saves a newly listed pet to the database.
func (r *GormPetRepository) Add(ctx context.Context, aggregate *pet.Pet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a pet by ID.
func (r *GormPetRepository) Get(ctx context.Context, id kernel.UUID) (*pet.Pet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pet", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve claims the pet for an adoption order with a single conditional
// update. The availability check and the flip are one statement, so two
// concurrent reservations can never both see RowsAffected == 1.
func (r *GormPetRepository) Reserve(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&PetDTO{}).
		Where("id = ? AND available = ?", id.Bytes(), true).
		Update("available", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing pet from a claimed one.
		var count int64
		if err := r.db.WithContext(ctx).Model(&PetDTO{}).
			Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("pet", id.String())
		}
		return errs.NewConflictError("pet not available")
	}

	return nil
}

// Release returns the pet to the adoptable pool. Releasing a pet that is
// already available succeeds without touching the row.
func (r *GormPetRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&PetDTO{}).
		Where("id = ?", id.Bytes()).
		Update("available", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pet", id.String())
	}

	return nil
}

// ReconcileAvailability realigns the available flag with the set of active
// orders using two set-based updates. Pets without a pending or approved
// order come back to the pool; pets with one leave it.
func (r *GormPetRepository) ReconcileAvailability(ctx context.Context) (released, reserved int64, err error) {
	db := r.db.WithContext(ctx)

	releaseResult := db.Exec(`
		UPDATE pets SET available = true
		WHERE available = false
		  AND NOT EXISTS (
			SELECT 1 FROM orders
			WHERE orders.pet_id = pets.id
			  AND orders.status IN ('pending', 'approved')
		  )
	`)
	if releaseResult.Error != nil {
		return 0, 0, releaseResult.Error
	}

	reserveResult := db.Exec(`
		UPDATE pets SET available = false
		WHERE available = true
		  AND EXISTS (
			SELECT 1 FROM orders
			WHERE orders.pet_id = pets.id
			  AND orders.status IN ('pending', 'approved')
		  )
	`)
	if reserveResult.Error != nil {
		return 0, 0, reserveResult.Error
	}

	return releaseResult.RowsAffected, reserveResult.RowsAffected, nil
}
