package commands

import (
	"errors"
	"strings"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/pkg/errs"
	"petadoption/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a regular account.
// Carries the plaintext password; hashing happens in the handler so the
// command stays a plain value object.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string
	name     string
	address  string
	phone    string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Email, password, and name are required; address and phone are optional
// profile fields. Returns an error if any validation fails.
func NewRegisterUserCommand(userID kernel.UUID, email, password, name, address, phone string) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setUserID(userID),
		registerCommand.setEmail(email),
		registerCommand.setPassword(password),
		registerCommand.setName(name),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	registerCommand.address = address
	registerCommand.phone = phone

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the login address for the new account.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Name returns the display name for the new account.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Address returns the optional postal address.
func (c RegisterUserCommand) Address() string {
	return c.address
}

// Phone returns the optional phone number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
