package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"petadoption/internal/core/application/usecases/commands"
	"petadoption/internal/core/application/usecases/queries"
	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/core/ports"
	"petadoption/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(userID kernel.UUID, role user.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(token string) (ports.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) HasAdmin(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func mustNewAccount(t *testing.T) *user.User {
	t.Helper()
	account, err := user.NewUser(
		kernel.NewUUID(), "jane@example.com", "Jane", "$hashed", user.RoleUser, "", "",
	)
	require.NoError(t, err)
	return account
}

// performAuthenticated sends a request through the middleware to a probe-free
// next handler that records whether it ran and which actor it saw.
func performAuthenticated(auth AuthMiddleware, header string) (*httptest.ResponseRecorder, bool, *user.User) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	ctx := e.NewContext(req, rec)

	var nextCalled bool
	var seenActor *user.User
	next := func(c echo.Context) error {
		nextCalled = true
		seenActor, _ = actorFromContext(c)
		return c.NoContent(http.StatusOK)
	}

	_ = auth.Authenticate(next)(ctx)
	return rec, nextCalled, seenActor
}

func TestAuthenticate_MissingBearerToken(t *testing.T) {
	tokens := new(MockTokenService)
	users := new(MockUserRepository)
	auth := NewAuthMiddleware(tokens, users)

	rec, nextCalled, _ := performAuthenticated(auth, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	tokens.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	tokens := new(MockTokenService)
	users := new(MockUserRepository)
	auth := NewAuthMiddleware(tokens, users)

	rec, nextCalled, _ := performAuthenticated(auth, "Basic am9lOnNlY3JldA==")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	tokens.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := new(MockTokenService)
	users := new(MockUserRepository)
	tokens.On("Validate", "garbage").
		Return(ports.TokenClaims{}, errs.NewNotAuthenticatedError("invalid token"))
	auth := NewAuthMiddleware(tokens, users)

	rec, nextCalled, _ := performAuthenticated(auth, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAuthenticate_DeletedAccount(t *testing.T) {
	tokens := new(MockTokenService)
	users := new(MockUserRepository)
	userID := kernel.NewUUID()
	tokens.On("Validate", "stale").
		Return(ports.TokenClaims{UserID: userID, Role: user.RoleUser}, nil)
	users.On("Get", mock.Anything, userID).
		Return(nil, errs.NewObjectNotFoundError("userId", userID))
	auth := NewAuthMiddleware(tokens, users)

	rec, nextCalled, _ := performAuthenticated(auth, "Bearer stale")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthenticate_UserLookupFailure_IsNotUnauthorized(t *testing.T) {
	tokens := new(MockTokenService)
	users := new(MockUserRepository)
	userID := kernel.NewUUID()
	tokens.On("Validate", "valid").
		Return(ports.TokenClaims{UserID: userID, Role: user.RoleUser}, nil)
	users.On("Get", mock.Anything, userID).
		Return(nil, errors.New("connection refused"))
	auth := NewAuthMiddleware(tokens, users)

	rec, nextCalled, _ := performAuthenticated(auth, "Bearer valid")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthenticate_ValidToken_LoadsActor(t *testing.T) {
	tokens := new(MockTokenService)
	users := new(MockUserRepository)
	account := mustNewAccount(t)
	tokens.On("Validate", "valid").
		Return(ports.TokenClaims{UserID: account.ID(), Role: account.Role()}, nil)
	users.On("Get", mock.Anything, account.ID()).Return(account, nil)
	auth := NewAuthMiddleware(tokens, users)

	rec, nextCalled, seenActor := performAuthenticated(auth, "Bearer valid")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
	require.NotNil(t, seenActor)
	assert.True(t, account.ID().IsEqual(seenActor.ID()))
}

// TestRegisterRoutes_PublicAndProtectedSplit checks which routes sit behind
// the gate: unauthenticated requests to protected routes are turned away by
// the middleware before any handler runs, while public routes are reachable
// without credentials.
func TestRegisterRoutes_PublicAndProtectedSplit(t *testing.T) {
	tokens := new(MockTokenService)
	users := new(MockUserRepository)
	server := NewServer(
		commands.RegisterUserCommandHandler{},
		commands.LoginCommandHandler{},
		commands.AddPetCommandHandler{},
		commands.CreateOrderCommandHandler{},
		commands.UpdateOrderStatusCommandHandler{},
		queries.GetAvailablePetsQueryHandler{},
		queries.GetAllPetsQueryHandler{},
		queries.GetPetImageQueryHandler{},
		queries.GetOrdersQueryHandler{},
		queries.GetUserProfileQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e, NewAuthMiddleware(tokens, users))

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/pets"},
		{http.MethodGet, "/api/admin/pets"},
		{http.MethodPost, "/api/orders"},
		{http.MethodGet, "/api/orders"},
		{http.MethodPut, "/api/orders/00000000-0000-0000-0000-000000000000/status"},
		{http.MethodGet, "/api/user/profile"},
	}
	for _, route := range protected {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s must require a token", route.method, route.path)
	}
	tokens.AssertNotCalled(t, "Validate", mock.Anything)

	// Public routes never hit the middleware. The health endpoint answers
	// outright; the image endpoint gets far enough to reject the malformed
	// pet ID, which a gated route would never reach.
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pets/not-a-uuid/image", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
