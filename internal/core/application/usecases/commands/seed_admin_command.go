package commands

import (
	"errors"
	"strings"

	"petadoption/internal/pkg/errs"
	"petadoption/internal/pkg/guard"
)

var ErrSeedAdminCommandIsNotConstructed = errors.New(
	"SeedAdminCommand must be created via NewSeedAdminCommand constructor",
)

// SeedAdminCommand represents the startup request to ensure the single
// admin account exists. Credentials come from configuration, not from any
// public endpoint.
type SeedAdminCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	name     string

	guard guard.ConstructorGuard
}

// NewSeedAdminCommand creates a command to bootstrap the admin account.
// Returns an error if the email is invalid or any field is empty.
func NewSeedAdminCommand(email, password, name string) (SeedAdminCommand, error) {
	seedCommand := SeedAdminCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		seedCommand.setEmail(email),
		seedCommand.setPassword(password),
		seedCommand.setName(name),
	); err != nil {
		return SeedAdminCommand{}, err
	}

	return seedCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSeedAdminCommandIsNotConstructed if validation fails.
func (c SeedAdminCommand) Validate() error {
	return c.guard.Validate(ErrSeedAdminCommandIsNotConstructed)
}

// Email returns the admin login address.
func (c SeedAdminCommand) Email() string {
	return c.email
}

// Password returns the plaintext admin password to be hashed by the handler.
func (c SeedAdminCommand) Password() string {
	return c.password
}

// Name returns the admin display name.
func (c SeedAdminCommand) Name() string {
	return c.name
}

func (c *SeedAdminCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}

func (c *SeedAdminCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

func (c *SeedAdminCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
