package ports

import (
	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/user"
)

// TokenClaims is the identity a validated session token carries. The role
// claim is informational: authorization re-reads the role from the stored
// user record, so a stale claim in an old token cannot grant access.
type TokenClaims struct {
	UserID kernel.UUID
	Role   user.Role
}

// TokenService issues and validates signed session tokens.
type TokenService interface {
	// Issue creates a signed token for the given subject, valid for the
	// service's fixed duration.
	Issue(userID kernel.UUID, role user.Role) (string, error)

	// Validate checks the token's signature and expiry and extracts its
	// claims. Fails with errs.ErrNotAuthenticated for malformed, expired,
	// or tampered tokens.
	Validate(token string) (TokenClaims, error)
}
