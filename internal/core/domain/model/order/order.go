package order

import (
	"errors"
	"time"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// ShippingInfo is the contact and delivery information captured when an
// adoption order is placed. It is a value object: immutable once attached to
// an order.
type ShippingInfo struct {
	Name    string
	Address string
	Phone   string
}

// Validate checks that all shipping fields are present.
func (s ShippingInfo) Validate() error {
	if s.Name == "" {
		return errs.NewValueIsRequiredError("shipping name")
	}
	if s.Address == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	if s.Phone == "" {
		return errs.NewValueIsRequiredError("shipping phone")
	}
	return nil
}

// Order represents an adoption order in the system. It is the aggregate root
// that manages the order lifecycle from placement through the admin decision.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, user, and pet reference
//   - Pet name is captured at placement time and never refreshed
//   - Shipping information must be complete
//   - Status transitions follow the Pending -> Approved | Rejected workflow
//   - Can only be created through NewOrder or RestoreOrder
//
// An order in Pending or Approved status is an active claim on its pet: the
// pet must be unavailable exactly while such an order exists. The lifecycle
// engine enforces that pairing transactionally; the aggregate enforces the
// transition rules.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the user who placed the order
	userID kernel.UUID

	// petID references the pet being adopted
	petID kernel.UUID

	// petName is the pet's name denormalized at placement time
	petName string

	// shipping is the delivery contact information
	shipping ShippingInfo

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is when the order was placed
	createdAt time.Time

	// updatedAt is when the status last changed; nil until the first decision
	updatedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new adoption order in Pending status. This is the only
// way to place a fresh order, ensuring all business invariants hold.
//
// Parameters:
//   - id: Unique identifier for the order
//   - userID: The adopting user's identifier
//   - petID: The identifier of the pet being adopted
//   - petName: The pet's name, captured at placement time
//   - shipping: Complete shipping contact information
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The constructor validates all inputs and stamps the creation time. The
// order starts in Pending status with no update timestamp.
func NewOrder(id, userID, petID kernel.UUID, petName string, shipping ShippingInfo) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setPetID(petID),
		order.setPetName(petName),
		order.setShipping(shipping),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts orders in Pending status, this
// constructor restores the persisted status and timestamps unchanged.
// The restored order behaves identically to one created through normal
// domain operations.
func RestoreOrder(
	id, userID, petID kernel.UUID,
	petName string,
	shipping ShippingInfo,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setPetID(petID),
		order.setPetName(petName),
		order.setShipping(shipping),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// PetID returns the identifier of the referenced pet.
func (o *Order) PetID() kernel.UUID {
	return o.petID
}

// PetName returns the pet's name as captured at placement time.
func (o *Order) PetName() string {
	return o.petName
}

// Shipping returns the order's shipping contact information.
func (o *Order) Shipping() ShippingInfo {
	return o.shipping
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the status last changed.
// Returns nil for orders that have not been decided yet.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// IsActive reports whether the order currently claims its pet.
// Pending and Approved orders are active; Rejected orders are not.
func (o *Order) IsActive() bool {
	return o.status == Pending || o.status == Approved
}

// Approve marks the adoption as accepted and stamps the update time.
//
// Business rules:
//   - The order must be in Pending status
//   - Approved is a final state with no further transitions
//
// Returns:
//   - nil on successful approval
//   - error if the order is not in Pending status
//
// The referenced pet stays unavailable after approval; the caller performs
// no pet write on this path.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.updatedAt = &now
	return nil
}

// Reject marks the adoption as declined and stamps the update time.
//
// Business rules:
//   - The order must be in Pending status
//   - Rejected is a final state with no further transitions
//
// Returns:
//   - nil on successful rejection
//   - error if the order is not in Pending status
//
// After rejection the referenced pet must be released back to available;
// the caller performs that write in the same transaction as the status
// update.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.updatedAt = &now
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates and sets the owning user's identifier.
// This is a private method used only during construction.
func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

// setPetID validates and sets the referenced pet's identifier.
// This is a private method used only during construction.
func (o *Order) setPetID(petID kernel.UUID) error {
	if err := petID.Validate(); err != nil {
		return err
	}
	o.petID = petID
	return nil
}

// setPetName validates and sets the denormalized pet name.
// This is a private method used only during construction.
func (o *Order) setPetName(petName string) error {
	if petName == "" {
		return errs.NewValueIsRequiredError("pet name")
	}
	o.petName = petName
	return nil
}

// setShipping validates and sets the shipping information.
// This is a private method used only during construction.
func (o *Order) setShipping(shipping ShippingInfo) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.shipping = shipping
	return nil
}

// setStatus validates and sets the order status during restoration.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
