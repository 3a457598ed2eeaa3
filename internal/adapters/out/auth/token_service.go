package auth

import (
	"fmt"
	"time"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/core/ports"
	"petadoption/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the JWT payload for a session token. The user ID travels
// in the standard subject claim; the role is a private claim.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService with HS256-signed JWTs.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenService creates a token service signing with the given secret.
// Tokens expire after ttl.
func NewJWTTokenService(secret []byte, ttl time.Duration) JWTTokenService {
	return JWTTokenService{secret: secret, ttl: ttl}
}

// Issue creates a signed session token for the given user and role.
func (s JWTTokenService) Issue(userID kernel.UUID, role user.Role) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}
	if err := role.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := sessionClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate checks the token's signature and expiry and extracts its claims.
// Every parse failure surfaces as a single authentication error so callers
// cannot distinguish expired from tampered tokens.
func (s JWTTokenService) Validate(token string) (ports.TokenClaims, error) {
	var claims sessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ports.TokenClaims{}, errs.NewNotAuthenticatedErrorWithCause("invalid token", err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.TokenClaims{}, errs.NewNotAuthenticatedErrorWithCause("invalid token", err)
	}

	role, err := user.RoleFromString(claims.Role)
	if err != nil {
		return ports.TokenClaims{}, errs.NewNotAuthenticatedErrorWithCause("invalid token", err)
	}

	return ports.TokenClaims{UserID: userID, Role: role}, nil
}
