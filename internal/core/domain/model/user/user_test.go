package user_test

import (
	"testing"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates regular user", func(t *testing.T) {
		id := kernel.NewUUID()
		u, err := user.NewUser(id, "jamie@example.com", "Jamie Doe", "$2a$10$hash", user.RoleUser, "12 Elm Street", "+15550100")

		require.NoError(t, err)
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "jamie@example.com", u.Email())
		assert.Equal(t, "Jamie Doe", u.Name())
		assert.Equal(t, "$2a$10$hash", u.PasswordHash())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.False(t, u.IsAdmin())
		assert.Equal(t, "12 Elm Street", u.Address())
		assert.Equal(t, "+15550100", u.Phone())
		assert.NoError(t, u.Validate())
	})

	t.Run("creates admin", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "admin@petadoption.com", "Admin User", "$2a$10$hash", user.RoleAdmin, "", "")

		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})

	t.Run("address and phone are optional", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "jamie@example.com", "Jamie Doe", "$2a$10$hash", user.RoleUser, "", "")

		require.NoError(t, err)
		assert.Empty(t, u.Address())
		assert.Empty(t, u.Phone())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		var zero kernel.UUID

		_, err := user.NewUser(zero, "jamie@example.com", "Jamie Doe", "hash", user.RoleUser, "", "")
		require.Error(t, err)

		_, err = user.NewUser(kernel.NewUUID(), "", "Jamie Doe", "hash", user.RoleUser, "", "")
		require.Error(t, err)

		_, err = user.NewUser(kernel.NewUUID(), "not-an-email", "Jamie Doe", "hash", user.RoleUser, "", "")
		require.Error(t, err)

		_, err = user.NewUser(kernel.NewUUID(), "jamie@example.com", "", "hash", user.RoleUser, "", "")
		require.Error(t, err)

		_, err = user.NewUser(kernel.NewUUID(), "jamie@example.com", "Jamie Doe", "", user.RoleUser, "", "")
		require.Error(t, err)

		_, err = user.NewUser(kernel.NewUUID(), "jamie@example.com", "Jamie Doe", "hash", user.RoleUnknown, "", "")
		require.Error(t, err)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero value user is not constructed", func(t *testing.T) {
		var u user.User
		assert.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})

	t.Run("nil user is not constructed", func(t *testing.T) {
		var u *user.User
		assert.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestRole(t *testing.T) {
	t.Run("parses wire values", func(t *testing.T) {
		r, err := user.RoleFromString("user")
		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, r)

		r, err = user.RoleFromString("admin")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, r)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, input := range []string{"", "Admin", "USER", "root"} {
			_, err := user.RoleFromString(input)
			require.Error(t, err, "input: %q", input)
		}
	})

	t.Run("string round trip", func(t *testing.T) {
		assert.Equal(t, "user", user.RoleUser.String())
		assert.Equal(t, "admin", user.RoleAdmin.String())
		assert.Equal(t, "Unknown", user.RoleUnknown.String())
	})

	t.Run("validate", func(t *testing.T) {
		assert.NoError(t, user.RoleUser.Validate())
		assert.NoError(t, user.RoleAdmin.Validate())
		assert.Error(t, user.RoleUnknown.Validate())
	})
}
