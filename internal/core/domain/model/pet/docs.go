// Package pet provides domain entities and business logic for the adoptable
// pet catalog. It implements the Pet aggregate root whose availability flag
// marks whether an active adoption order currently claims the pet.
//
// The package includes:
//   - Pet: The aggregate root covering listing data, image payload, and availability
//   - Gender: A value object for the pet's gender
//
// Key business rules:
//   - Pets are listed only by admins and start available
//   - At most one active adoption order may claim a pet at a time
//   - Reserve and Release are the only state transitions; all other fields are immutable
//   - The image payload and its content type are stored and served verbatim
package pet
