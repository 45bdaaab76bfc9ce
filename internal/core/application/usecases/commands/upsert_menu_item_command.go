package commands

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/pkg/guard"
)

var (
	ErrUpsertMenuItemCommandIsNotConstructed = errors.New(
		"UpsertMenuItemCommand must be created via NewUpsertMenuItemCommand constructor",
	)
)

// UpsertMenuItemCommand adds a new menu item or replaces an existing one.
// An id of zero means "create"; any other id names the item to update.
//
// Example:
//
//	cmd, err := NewUpsertMenuItemCommand(0, "Soup", 5, "Starter")
//	if err != nil {
//	    return err // invalid name, price or category
//	}
//	result, err := handler.Handle(ctx, cmd)
type UpsertMenuItemCommand struct {
	itemID  kernel.ID
	details menu.Details

	guard guard.ConstructorGuard
}

// NewUpsertMenuItemCommand validates the item details. The id is not checked
// here; an unknown id surfaces as errs.ErrObjectNotFound from the handler, after
// the details have been accepted.
func NewUpsertMenuItemCommand(itemID int64, name string, price float64, category string) (UpsertMenuItemCommand, error) {
	details, err := menu.NewDetails(name, price, category)
	if err != nil {
		return UpsertMenuItemCommand{}, err
	}

	return UpsertMenuItemCommand{
		itemID:  kernel.ID(itemID),
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpsertMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpsertMenuItemCommandIsNotConstructed)
}

// ItemID returns the item to update, or zero for a new item.
func (c UpsertMenuItemCommand) ItemID() kernel.ID {
	return c.itemID
}

// IsCreate reports whether the command adds a new item.
func (c UpsertMenuItemCommand) IsCreate() bool {
	return c.itemID.IsZero()
}

func (c UpsertMenuItemCommand) Details() menu.Details {
	return c.details
}
