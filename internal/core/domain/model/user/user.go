package user

import (
	"errors"
	"strings"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/pkg/errs"
	"petadoption/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed indicates that the User was not properly
	// initialized through the NewUser or RestoreUser constructor functions.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// User represents an account in the adoption system. It is an aggregate root
// whose identity is the account ID; the email address is a secondary unique
// key used for login.
//
// The password credential is stored as an opaque hash produced by the
// credential store; this aggregate never sees plaintext. The role is
// immutable after creation, but authorization decisions still re-read it
// from the stored record rather than trusting token claims.
type User struct {
	// id is the unique identifier for the account
	id kernel.UUID

	// email is the unique login address
	email string

	// name is the display name
	name string

	// passwordHash is the opaque credential produced by the credential store
	passwordHash string

	// role is the account's permission level, fixed at creation
	role Role

	// address is the account's postal address (may be empty)
	address string

	// phone is the account's phone number (may be empty)
	phone string

	// guard ensures the user was created via a constructor
	guard guard.ConstructorGuard
}

// NewUser creates a new account. Address and phone are optional; everything
// else is validated.
//
// Parameters:
//   - id: Unique identifier for the account
//   - email: Login address (required, must contain '@')
//   - name: Display name (required)
//   - passwordHash: Opaque credential hash (required)
//   - role: RoleUser or RoleAdmin
//   - address: Postal address (may be empty)
//   - phone: Phone number (may be empty)
//
// Returns:
//   - *User: The created account if all validations pass
//   - error: Validation error if any parameter is invalid
func NewUser(
	id kernel.UUID,
	email, name, passwordHash string,
	role Role,
	address, phone string,
) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.address = address
	u.phone = phone
	return u, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage.
// The restored user behaves identically to one created through NewUser.
func RestoreUser(
	id kernel.UUID,
	email, name, passwordHash string,
	role Role,
	address, phone string,
) (*User, error) {
	return NewUser(id, email, name, passwordHash, role, address, phone)
}

// Validate checks if the User was properly constructed.
// The zero value of User is invalid and will fail this validation.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the account's login address.
func (u *User) Email() string {
	return u.email
}

// Name returns the account's display name.
func (u *User) Name() string {
	return u.name
}

// PasswordHash returns the opaque credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the account's permission level.
func (u *User) Role() Role {
	return u.role
}

// Address returns the account's postal address.
func (u *User) Address() string {
	return u.address
}

// Phone returns the account's phone number.
func (u *User) Phone() string {
	return u.phone
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// setID validates and sets the account's unique identifier.
// This is a private method used only during construction.
func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// setEmail validates and sets the login address.
// This is a private method used only during construction.
func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

// setName validates and sets the display name.
// This is a private method used only during construction.
func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

// setPasswordHash validates and sets the credential hash.
// This is a private method used only during construction.
func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}

// setRole validates and sets the permission level.
// This is a private method used only during construction.
func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
