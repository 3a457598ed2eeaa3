// Package order provides domain entities and business logic for adoption
// order management in the pet adoption system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, shipping details, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - ShippingInfo: A value object for delivery contact details
//
// Key business rules:
//   - Orders must reference a valid user and pet and carry complete shipping details
//   - Order status follows a defined workflow: Pending -> Approved or Pending -> Rejected
//   - Approved and Rejected are terminal; no transition leaves either state
//   - A Pending or Approved order is an active claim on its pet
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
