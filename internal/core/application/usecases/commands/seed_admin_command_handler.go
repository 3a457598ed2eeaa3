package commands

import (
	"context"
	"errors"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/core/ports"
	"petadoption/internal/pkg/errs"
)

// SeedAdminCommandHandler ensures the single admin account exists at
// startup. The seed is idempotent: if an admin is already present nothing
// happens, and losing a duplicate-email race to a concurrent instance also
// counts as success.
type SeedAdminCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewSeedAdminCommandHandler creates a handler for admin bootstrapping.
func NewSeedAdminCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) SeedAdminCommandHandler {
	return SeedAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the admin seed command.
// Skips creation when an admin account already exists.
func (h SeedAdminCommandHandler) Handle(ctx context.Context, cmd SeedAdminCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	exists, err := userRepo.HasAdmin(ctx)
	if err != nil {
		return err
	}
	if exists {
		return uow.Commit(ctx)
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	admin, err := user.NewUser(kernel.NewUUID(), cmd.Email(), cmd.Name(), passwordHash, user.RoleAdmin, "", "")
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, admin); err != nil {
		// Another instance seeded the same address first.
		if errors.Is(err, errs.ErrConflict) {
			return nil
		}
		return err
	}

	return uow.Commit(ctx)
}
