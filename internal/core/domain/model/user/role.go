package user

import (
	"fmt"

	"petadoption/internal/pkg/errs"
)

// Role represents a user's permission level. The role is fixed at account
// creation: regular accounts are created through registration, the single
// admin account through the startup seed.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleUser is a regular account that can browse pets and place
	// adoption orders.
	RoleUser

	// RoleAdmin can additionally list pets, see every order, and decide
	// pending adoptions.
	RoleAdmin
)

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:  "user",
		RoleAdmin: "admin",
	}
}

// RoleFromString parses a role from its wire representation, "user" or
// "admin". Any other input is invalid.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are RoleUser and RoleAdmin; RoleUnknown and any other values fail.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// String returns the wire representation of the role.
// Returns "Unknown" for invalid values.
// Implements the fmt.Stringer interface.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
