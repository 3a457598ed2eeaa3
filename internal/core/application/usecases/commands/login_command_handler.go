package commands

import (
	"context"
	"errors"

	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/core/ports"
	"petadoption/internal/pkg/errs"
)

// LoginResult carries the outcome of a successful authentication: the signed
// session token and the authenticated account.
type LoginResult struct {
	Token string
	User  *user.User
}

// LoginCommandHandler handles credential verification and token issuance.
// An unknown email and a wrong password produce the same error, so the
// response does not reveal which addresses are registered.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

// NewLoginCommandHandler creates a handler for authentication.
func NewLoginCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher, tokens ports.TokenService) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle processes the login command.
// Looks up the account by email, verifies the password against the stored
// hash, and issues a session token carrying the account's ID and role.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResult{}, errs.NewNotAuthenticatedError("invalid email or password")
		}
		return LoginResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}

	if !h.hasher.Verify(cmd.Password(), account.PasswordHash()) {
		return LoginResult{}, errs.NewNotAuthenticatedError("invalid email or password")
	}

	token, err := h.tokens.Issue(account.ID(), account.Role())
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, User: account}, nil
}
