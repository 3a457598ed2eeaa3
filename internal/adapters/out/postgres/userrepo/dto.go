// Package userrepo implements account persistence over GORM.
package userrepo

import (
	"time"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting account
// aggregates. The email carries a unique index; it backs the duplicate
// registration conflict and keeps the admin seed race-safe.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string
	Role         string `gorm:"index"`
	Address      string
	Phone        string
	CreatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		Name:         aggregate.Name(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Address:      aggregate.Address(),
		Phone:        aggregate.Phone(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.Name, dto.PasswordHash, role, dto.Address, dto.Phone)
}
