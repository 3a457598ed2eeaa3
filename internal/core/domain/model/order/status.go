package order

import (
	"fmt"

	"petadoption/internal/pkg/errs"
)

// Status represents the lifecycle state of an adoption order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct review workflow.
//
// State transitions:
//
//	Pending ──┬──> Approved (terminal)
//	          │
//	          └──> Rejected (terminal)
//
// Approved and Rejected are final states: no transition out of either is
// allowed, including repeating the same state. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an adoption order is first placed.
	// Orders in this status are waiting for an admin decision and keep the
	// referenced pet reserved.
	Pending

	// Approved indicates an admin accepted the adoption.
	// This is a final state; the pet stays unavailable.
	Approved

	// Rejected indicates an admin declined the adoption.
	// This is a final state; the pet becomes available again.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

// StatusFromString parses a status from its string representation.
// Accepts the values stored in the database and carried on the API:
// "pending", "approved", "rejected". Any other input is invalid.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Approved, Rejected.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
//
// Returns:
//   - "pending", "approved", or "rejected" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal indicates whether the status is a final state.
// Approved and Rejected orders cannot transition any further.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Rejected
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
//
// Invalid transitions:
//   - Approved -> Approved (already decided)
//   - Rejected -> Approved (terminal state)
//   - Unknown -> Approved (invalid initial state)
//
// Returns:
//   - (Approved, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewAccessForbiddenErrorWithCause(
			"order cannot be approved",
			fmt.Errorf("%s is not a valid status to approve from", s.String()),
		)
	}

	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Invalid transitions:
//   - Rejected -> Rejected (already decided)
//   - Approved -> Rejected (terminal state)
//   - Unknown -> Rejected (invalid initial state)
//
// Returns:
//   - (Rejected, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewAccessForbiddenErrorWithCause(
			"order cannot be rejected",
			fmt.Errorf("%s is not a valid status to reject from", s.String()),
		)
	}

	return Rejected, nil
}
