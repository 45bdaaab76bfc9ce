package menu_test

import (
	"testing"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetails(t *testing.T) {
	t.Run("valid details", func(t *testing.T) {
		d, err := menu.NewDetails("Soup", 5, "Starter")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "Soup", d.Name())
		assert.InDelta(t, 5.0, d.Price().Float64(), 0)
		assert.Equal(t, menu.Starter, d.Category())
	})

	t.Run("empty name is required", func(t *testing.T) {
		_, err := menu.NewDetails("", 5, "Starter")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non positive price is invalid", func(t *testing.T) {
		_, err := menu.NewDetails("Soup", 0, "Starter")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = menu.NewDetails("Soup", -2, "Starter")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown category is invalid", func(t *testing.T) {
		_, err := menu.NewDetails("Soup", 5, "Side")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("all violations are reported", func(t *testing.T) {
		_, err := menu.NewDetails("", -1, "Side")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "category")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d menu.Details
		require.ErrorIs(t, d.Validate(), menu.ErrDetailsAreNotConstructed)
	})
}

func TestNewItem(t *testing.T) {
	details, err := menu.NewDetails("Soup", 5, "Starter")
	require.NoError(t, err)

	t.Run("creates item", func(t *testing.T) {
		item, err := menu.NewItem(1, details)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, kernel.ID(1), item.ID())
		assert.Equal(t, "Soup", item.Name())
		assert.InDelta(t, 5.0, item.Price().Float64(), 0)
		assert.Equal(t, menu.Starter, item.Category())
	})

	t.Run("requires assigned id", func(t *testing.T) {
		_, err := menu.NewItem(0, details)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires constructed details", func(t *testing.T) {
		_, err := menu.NewItem(1, menu.Details{})
		require.ErrorIs(t, err, menu.ErrDetailsAreNotConstructed)
	})

	t.Run("nil and zero items are not constructed", func(t *testing.T) {
		var nilItem *menu.Item
		require.ErrorIs(t, nilItem.Validate(), menu.ErrItemIsNotConstructed)
		require.ErrorIs(t, (&menu.Item{}).Validate(), menu.ErrItemIsNotConstructed)
	})
}

func TestItem_Update(t *testing.T) {
	original, _ := menu.NewDetails("Soup", 5, "Starter")
	item, err := menu.NewItem(3, original)
	require.NoError(t, err)

	changed, _ := menu.NewDetails("Soup", 6, "Starter")
	require.NoError(t, item.Update(changed))

	assert.Equal(t, kernel.ID(3), item.ID())
	assert.InDelta(t, 6.0, item.Price().Float64(), 0)

	require.ErrorIs(t, item.Update(menu.Details{}), menu.ErrDetailsAreNotConstructed)
	assert.InDelta(t, 6.0, item.Price().Float64(), 0)
}
