package commands

import (
	"errors"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/pet"
	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/pkg/errs"
	"petadoption/internal/pkg/guard"
)

var ErrAddPetCommandIsNotConstructed = errors.New(
	"AddPetCommand must be created via NewAddPetCommand constructor",
)

// AddPetCommand represents an admin request to list a new pet for adoption.
// The photo travels as raw bytes with its media type; storage keeps it
// alongside the pet record.
type AddPetCommand struct { //nolint:recvcheck //using for validation
	petID       kernel.UUID
	name        string
	category    string
	breed       string
	gender      pet.Gender
	weight      float64
	height      float64
	description string
	image       []byte
	imageType   string
	actorRole   user.Role

	guard guard.ConstructorGuard
}

// NewAddPetCommand creates a command to list a new pet.
// Name, category, breed, gender, positive weight and height, and a photo are
// required; description is optional. Returns an error if any validation
// fails.
func NewAddPetCommand(
	petID kernel.UUID,
	name, category, breed string,
	gender pet.Gender,
	weight, height float64,
	description string,
	image []byte,
	imageType string,
	actorRole user.Role,
) (AddPetCommand, error) {
	addCommand := AddPetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setPetID(petID),
		addCommand.setName(name),
		addCommand.setCategory(category),
		addCommand.setBreed(breed),
		addCommand.setGender(gender),
		addCommand.setWeight(weight),
		addCommand.setHeight(height),
		addCommand.setImage(image, imageType),
		addCommand.setActorRole(actorRole),
	); err != nil {
		return AddPetCommand{}, err
	}

	addCommand.description = description

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddPetCommandIsNotConstructed if validation fails.
func (c AddPetCommand) Validate() error {
	return c.guard.Validate(ErrAddPetCommandIsNotConstructed)
}

// PetID returns the identifier assigned to the new pet.
func (c AddPetCommand) PetID() kernel.UUID {
	return c.petID
}

// Name returns the pet's display name.
func (c AddPetCommand) Name() string {
	return c.name
}

// Category returns the pet's species category, e.g. "dog".
func (c AddPetCommand) Category() string {
	return c.category
}

// Breed returns the pet's breed.
func (c AddPetCommand) Breed() string {
	return c.breed
}

// Gender returns the pet's gender.
func (c AddPetCommand) Gender() pet.Gender {
	return c.gender
}

// Weight returns the pet's weight in kilograms.
func (c AddPetCommand) Weight() float64 {
	return c.weight
}

// Height returns the pet's height in centimeters.
func (c AddPetCommand) Height() float64 {
	return c.height
}

// Description returns the optional free-form description.
func (c AddPetCommand) Description() string {
	return c.description
}

// Image returns the raw photo bytes.
func (c AddPetCommand) Image() []byte {
	return c.image
}

// ImageType returns the photo's media type, e.g. "image/jpeg".
func (c AddPetCommand) ImageType() string {
	return c.imageType
}

// ActorRole returns the role of the user listing the pet.
func (c AddPetCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *AddPetCommand) setPetID(petID kernel.UUID) error {
	if err := petID.Validate(); err != nil {
		return err
	}

	c.petID = petID
	return nil
}

func (c *AddPetCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddPetCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *AddPetCommand) setBreed(breed string) error {
	if breed == "" {
		return errs.NewValueIsRequiredError("breed")
	}

	c.breed = breed
	return nil
}

func (c *AddPetCommand) setGender(gender pet.Gender) error {
	if err := gender.Validate(); err != nil {
		return err
	}

	c.gender = gender
	return nil
}

func (c *AddPetCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}

	c.weight = weight
	return nil
}

func (c *AddPetCommand) setHeight(height float64) error {
	if height <= 0 {
		return errs.NewValueIsInvalidError("height")
	}

	c.height = height
	return nil
}

func (c *AddPetCommand) setImage(image []byte, imageType string) error {
	if len(image) == 0 {
		return errs.NewValueIsRequiredError("image")
	}
	if imageType == "" {
		return errs.NewValueIsRequiredError("imageType")
	}

	c.image = image
	c.imageType = imageType
	return nil
}

func (c *AddPetCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
