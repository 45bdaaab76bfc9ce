package commands_test

import (
	"testing"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpsertMenuItemCommand_Create(t *testing.T) {
	cmd, err := commands.NewUpsertMenuItemCommand(0, "Soup", 5, "Starter")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.IsCreate())
	assert.Equal(t, "Soup", cmd.Details().Name())
	assert.Equal(t, menu.Starter, cmd.Details().Category())
}

func TestNewUpsertMenuItemCommand_Update(t *testing.T) {
	cmd, err := commands.NewUpsertMenuItemCommand(3, "Soup", 6, "Starter")

	require.NoError(t, err)
	assert.False(t, cmd.IsCreate())
	assert.Equal(t, kernel.ID(3), cmd.ItemID())
}

func TestNewUpsertMenuItemCommand_InvalidDetails(t *testing.T) {
	testCases := []struct {
		name     string
		itemName string
		price    float64
		category string
	}{
		{"empty name", "", 5, "Starter"},
		{"zero price", "Soup", 0, "Starter"},
		{"negative price", "Soup", -1, "Starter"},
		{"unknown category", "Soup", 5, "Appetizer"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewUpsertMenuItemCommand(1, tc.itemName, tc.price, tc.category)

			require.Error(t, err)
			assert.True(t, errs.IsInvalidInput(err))
		})
	}
}

func TestUpsertMenuItemCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.UpsertMenuItemCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpsertMenuItemCommandIsNotConstructed)
}
