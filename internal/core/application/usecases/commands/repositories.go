// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"petadoption/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// PetRepoFactory provides access to the pet repository within a transaction.
	PetRepoFactory interface {
		PetRepository() ports.PetRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserUoW manages transactions for account-only operations:
	// registration, login, and the admin seed.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// PetUoW manages transactions for pet-only operations:
	// listing a new pet and availability reconciliation.
	PetUoW interface {
		TxManager
		PetRepoFactory
	}

	// PetUoWFactory creates new pet unit of work instances.
	PetUoWFactory interface {
		Create() PetUoW
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Every order operation also touches the referenced pet's availability,
	// so the pet repository is always part of this unit of work.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   petRepo := uow.PetRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... reserve the pet and place the order
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		PetRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
