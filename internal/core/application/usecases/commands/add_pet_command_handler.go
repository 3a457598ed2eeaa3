package commands

import (
	"context"

	"petadoption/internal/core/domain/model/pet"
	"petadoption/internal/pkg/errs"
)

// AddPetCommandHandler handles listing new pets for adoption. Only admins
// may list pets; new pets always start available.
type AddPetCommandHandler struct {
	uowFactory PetUoWFactory
}

// NewAddPetCommandHandler creates a handler for pet listing.
func NewAddPetCommandHandler(uowFactory PetUoWFactory) AddPetCommandHandler {
	return AddPetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pet listing command.
// Fails with errs.ErrAccessForbidden unless the actor is an admin.
func (h AddPetCommandHandler) Handle(ctx context.Context, cmd AddPetCommand) (*pet.Pet, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.ActorRole().IsAdmin() {
		return nil, errs.NewAccessForbiddenError("admin access required")
	}

	listed, err := pet.NewPet(
		cmd.PetID(), cmd.Name(), cmd.Category(), cmd.Breed(), cmd.Gender(),
		cmd.Weight(), cmd.Height(), cmd.Description(), cmd.Image(), cmd.ImageType(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PetRepository().Add(ctx, listed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return listed, nil
}
