package http

import (
	"errors"
	"net/http"
	"strings"

	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/core/ports"
	"petadoption/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key holding the authenticated account.
const actorContextKey = "actor"

// AuthMiddleware authenticates requests from a bearer token. The token only
// identifies the account; the role used for authorization is re-read from
// the stored user record on every request, so revoking admin takes effect
// immediately regardless of tokens already in the wild.
type AuthMiddleware struct {
	tokens ports.TokenService
	users  ports.UserRepository
}

// NewAuthMiddleware creates the bearer-auth middleware.
func NewAuthMiddleware(tokens ports.TokenService, users ports.UserRepository) AuthMiddleware {
	return AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate validates the Authorization header and loads the account
// into the request context. Requests without a valid token, or whose
// account no longer exists, fail with 401.
func (m AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return respondErrorWithStatus(ctx, http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			return respondError(ctx, err)
		}

		actor, err := m.users.Get(ctx.Request().Context(), claims.UserID)
		if err != nil {
			// A token for a deleted account is an authentication failure;
			// anything else is a storage failure and keeps its own status.
			if errors.Is(err, errs.ErrObjectNotFound) {
				return respondErrorWithStatus(ctx, http.StatusUnauthorized, "account no longer exists")
			}
			return respondError(ctx, err)
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

// actorFromContext returns the authenticated account stored by Authenticate.
func actorFromContext(ctx echo.Context) (*user.User, bool) {
	actor, ok := ctx.Get(actorContextKey).(*user.User)
	return actor, ok
}
