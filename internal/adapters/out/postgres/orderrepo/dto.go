// Package orderrepo implements adoption order persistence over GORM.
package orderrepo

import (
	"time"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored as its wire string; pet_id is indexed
// because the reconciliation sweep joins orders to pets on it.
type OrderDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID   `gorm:"type:uuid;index"`
	PetID     uuid.UUID   `gorm:"type:uuid;index"`
	PetName   string
	Shipping  ShippingDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	Status    string      `gorm:"index"`
	CreatedAt time.Time
	// The update timestamp is owned by the domain: it must stay NULL until
	// the first status change, so GORM's conventional tracking for this
	// field name is switched off.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ShippingDTO represents the embedded shipping details within the order
// table.
type ShippingDTO struct {
	Name    string
	Address string
	Phone   string
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:      aggregate.ID().Bytes(),
		UserID:  aggregate.UserID().Bytes(),
		PetID:   aggregate.PetID().Bytes(),
		PetName: aggregate.PetName(),
		Shipping: ShippingDTO{
			Name:    aggregate.Shipping().Name,
			Address: aggregate.Shipping().Address,
			Phone:   aggregate.Shipping().Phone,
		},
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	petID, err := kernel.UUIDFromBytes(dto.PetID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	shipping := order.ShippingInfo{
		Name:    dto.Shipping.Name,
		Address: dto.Shipping.Address,
		Phone:   dto.Shipping.Phone,
	}

	return order.RestoreOrder(id, userID, petID, dto.PetName, shipping, status, dto.CreatedAt, dto.UpdatedAt)
}
