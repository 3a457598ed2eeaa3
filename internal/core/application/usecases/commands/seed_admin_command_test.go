package commands_test

import (
	"testing"

	"petadoption/internal/core/application/usecases/commands"
	"petadoption/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedAdminCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewSeedAdminCommand("admin@petadoption.com", "admin123", "Admin")
	require.NoError(t, err)
	assert.Equal(t, "admin@petadoption.com", cmd.Email())
	assert.Equal(t, "admin123", cmd.Password())
	assert.Equal(t, "Admin", cmd.Name())
}

func TestNewSeedAdminCommand_RequiredFields(t *testing.T) {
	_, err := commands.NewSeedAdminCommand("", "admin123", "Admin")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewSeedAdminCommand("admin@petadoption.com", "", "Admin")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewSeedAdminCommand("admin@petadoption.com", "admin123", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSeedAdminCommand_EmailMustContainAtSign(t *testing.T) {
	_, err := commands.NewSeedAdminCommand("not-an-email", "admin123", "Admin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSeedAdminCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.SeedAdminCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSeedAdminCommandIsNotConstructed)
}
