package ports

import (
	"context"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for account aggregates.
type UserRepository interface {
	// Add persists a new account to storage.
	// Fails with errs.ErrConflict if the email address is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by its unique identifier.
	// Fails with errs.ErrObjectNotFound if no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves an account by its login address.
	// Fails with errs.ErrObjectNotFound if no such account exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// HasAdmin reports whether at least one admin account exists.
	// Used by the startup seed to make admin bootstrapping idempotent.
	HasAdmin(ctx context.Context) (bool, error)
}
