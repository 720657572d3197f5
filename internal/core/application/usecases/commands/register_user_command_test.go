package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()

	cmd, err := commands.NewRegisterUserCommand(userID, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, "alice", cmd.Username())
	assert.Equal(t, "s3cret", cmd.Password())
}

func TestNewRegisterUserCommand_EmptyUsername(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "", "s3cret")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUsernameIsRequired)
}

func TestNewRegisterUserCommand_EmptyPassword(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "alice", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPasswordIsRequired)
}
