package commands_test

import (
	"testing"

	"foodorders/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderStatusesCommand_Valid(t *testing.T) {
	cmd := commands.NewAdvanceOrderStatusesCommand()
	require.NoError(t, cmd.Validate())
}

func TestAdvanceOrderStatusesCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.AdvanceOrderStatusesCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceOrderStatusesCommandIsNotConstructed)
}
