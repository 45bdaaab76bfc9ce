package commands

import (
	"errors"
	"slices"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand requests a new order for the given menu item ids.
// Ids may repeat; whether they exist is checked by the handler against the menu.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand([]int64{1, 1, 3})
//	if err != nil {
//	    return err
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	items []kernel.ID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand rejects an empty item list.
func NewPlaceOrderCommand(items []int64) (PlaceOrderCommand, error) {
	if len(items) == 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredErrorWithCause(
			"items",
			errors.New("an order must contain at least one item"),
		)
	}

	ids := make([]kernel.ID, len(items))
	for i, id := range items {
		ids[i] = kernel.ID(id)
	}

	return PlaceOrderCommand{
		items: ids,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Items returns a copy of the requested menu item ids.
func (c PlaceOrderCommand) Items() []kernel.ID {
	return slices.Clone(c.items)
}
