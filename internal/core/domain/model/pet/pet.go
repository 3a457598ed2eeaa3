package pet

import (
	"errors"
	"fmt"
	"time"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/pkg/errs"
	"petadoption/internal/pkg/guard"
)

var (
	// ErrPetIsNotConstructed indicates that the Pet was not properly
	// initialized through the NewPet or RestorePet constructor functions.
	ErrPetIsNotConstructed = errors.New("Pet must be created via NewPet or RestorePet constructor")

	// ErrPetNotAvailable indicates that the pet cannot be reserved because an
	// active adoption order already claims it.
	ErrPetNotAvailable = errors.New("pet not available")
)

// Pet represents an adoptable pet listed by an admin. It is an aggregate
// root whose only mutable state is the availability flag: everything else is
// fixed at listing time.
//
// A Pet can be claimed by at most one active adoption order at a time. The
// availability flag is the claim marker: Reserve flips it off when an order
// is placed, Release flips it back on when the order is rejected. Both
// transitions are applied to storage as a single conditional update, so the
// in-memory transitions here mirror what the repository enforces.
//
// Key business rules:
//   - Must be constructed through NewPet or RestorePet
//   - Name, category, and breed are required; weight and height must be positive
//   - The image payload and its content type are required and stored verbatim
//   - Only the availability flag changes after creation
//
// Example usage:
//
//	p, err := pet.NewPet(kernel.NewUUID(), "Rex", "dog", "Labrador",
//	    pet.Male, 24.5, 56.0, "Friendly and house-trained", imageBytes, "image/jpeg")
//	if err != nil {
//	    return err
//	}
//
//	// Claim the pet for an adoption order
//	if err := p.Reserve(); err != nil {
//	    // already claimed
//	}
type Pet struct {
	// id uniquely identifies the pet
	id kernel.UUID

	// name is the pet's display name
	name string

	// category is the kind of animal, e.g. "dog" or "cat"
	category string

	// breed is the pet's breed
	breed string

	// gender is the pet's gender
	gender Gender

	// weight is the pet's weight in kilograms (must be positive)
	weight float64

	// height is the pet's height in centimeters (must be positive)
	height float64

	// description is free-form text about the pet
	description string

	// image is the raw image payload, stored and served verbatim
	image []byte

	// imageType is the declared content type of the image payload
	imageType string

	// available reports whether no active adoption order claims the pet
	available bool

	// createdAt is when the pet was listed
	createdAt time.Time

	// guard ensures the pet was created via a constructor
	guard guard.ConstructorGuard
}

// NewPet creates a newly listed Pet. New pets always start available.
//
// Parameters:
//   - id: Unique identifier for the pet
//   - name: Display name (required)
//   - category: Kind of animal (required)
//   - breed: Breed (required)
//   - gender: Male or Female
//   - weight: Weight in kilograms (must be positive)
//   - height: Height in centimeters (must be positive)
//   - description: Free-form text (may be empty)
//   - image: Raw image payload (required)
//   - imageType: Content type of the payload (required)
//
// Returns:
//   - *Pet: The created pet if all validations pass
//   - error: Validation error if any parameter is invalid
func NewPet(
	id kernel.UUID,
	name, category, breed string,
	gender Gender,
	weight, height float64,
	description string,
	image []byte,
	imageType string,
) (*Pet, error) {
	p := &Pet{
		available: true,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setBreed(breed),
		p.setGender(gender),
		p.setWeight(weight),
		p.setHeight(height),
		p.setImage(image, imageType),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestorePet reconstructs a Pet aggregate from persistent storage, including
// its availability state at the time of persistence. The restored pet
// behaves identically to one created through normal domain operations.
func RestorePet(
	id kernel.UUID,
	name, category, breed string,
	gender Gender,
	weight, height float64,
	description string,
	image []byte,
	imageType string,
	available bool,
	createdAt time.Time,
) (*Pet, error) {
	p := &Pet{
		available: available,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setBreed(breed),
		p.setGender(gender),
		p.setWeight(weight),
		p.setHeight(height),
		p.setImage(image, imageType),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// Validate checks if the Pet was properly constructed.
// The zero value of Pet is invalid and will fail this validation.
func (p *Pet) Validate() error {
	if p == nil {
		return ErrPetIsNotConstructed
	}
	return p.guard.Validate(ErrPetIsNotConstructed)
}

// IsEqual compares two pets by their unique identifiers.
func (p *Pet) IsEqual(other *Pet) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the pet's unique identifier.
func (p *Pet) ID() kernel.UUID {
	return p.id
}

// Name returns the pet's display name.
func (p *Pet) Name() string {
	return p.name
}

// Category returns the kind of animal.
func (p *Pet) Category() string {
	return p.category
}

// Breed returns the pet's breed.
func (p *Pet) Breed() string {
	return p.breed
}

// Gender returns the pet's gender.
func (p *Pet) Gender() Gender {
	return p.gender
}

// Weight returns the pet's weight in kilograms.
func (p *Pet) Weight() float64 {
	return p.weight
}

// Height returns the pet's height in centimeters.
func (p *Pet) Height() float64 {
	return p.height
}

// Description returns the free-form description text.
func (p *Pet) Description() string {
	return p.description
}

// Image returns the raw image payload.
func (p *Pet) Image() []byte {
	return p.image
}

// ImageType returns the declared content type of the image payload.
func (p *Pet) ImageType() string {
	return p.imageType
}

// IsAvailable reports whether no active adoption order claims the pet.
func (p *Pet) IsAvailable() bool {
	return p.available
}

// CreatedAt returns when the pet was listed.
func (p *Pet) CreatedAt() time.Time {
	return p.createdAt
}

// Reserve claims the pet for an adoption order, flipping availability off.
//
// Returns:
//   - nil if the pet was available and is now reserved
//   - ErrPetNotAvailable if an active order already claims the pet
//
// The persistence layer applies the same transition as a single conditional
// update; this method keeps the in-memory aggregate consistent with it.
func (p *Pet) Reserve() error {
	if !p.available {
		return ErrPetNotAvailable
	}
	p.available = false
	return nil
}

// Release returns the pet to the adoptable pool, flipping availability on.
// Called when the claiming order is rejected. Releasing an already available
// pet is a no-op.
func (p *Pet) Release() {
	p.available = true
}

// setID validates and sets the pet's unique identifier.
// This is a private method used only during construction.
func (p *Pet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the pet's display name.
// This is a private method used only during construction.
func (p *Pet) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setCategory validates and sets the animal category.
// This is a private method used only during construction.
func (p *Pet) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

// setBreed validates and sets the pet's breed.
// This is a private method used only during construction.
func (p *Pet) setBreed(breed string) error {
	if breed == "" {
		return errs.NewValueIsRequiredError("breed")
	}
	p.breed = breed
	return nil
}

// setGender validates and sets the pet's gender.
// This is a private method used only during construction.
func (p *Pet) setGender(gender Gender) error {
	if err := gender.Validate(); err != nil {
		return err
	}
	p.gender = gender
	return nil
}

// setWeight validates and sets the pet's weight.
// Weight must be positive. This is a private method used only during construction.
func (p *Pet) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

// setHeight validates and sets the pet's height.
// Height must be positive. This is a private method used only during construction.
func (p *Pet) setHeight(height float64) error {
	if height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("height", fmt.Errorf("%g is not greater than 0", height))
	}
	p.height = height
	return nil
}

// setImage validates and sets the image payload and its content type.
// This is a private method used only during construction.
func (p *Pet) setImage(image []byte, imageType string) error {
	if len(image) == 0 {
		return errs.NewValueIsRequiredError("image")
	}
	if imageType == "" {
		return errs.NewValueIsRequiredError("image content type")
	}
	p.image = image
	p.imageType = imageType
	return nil
}
