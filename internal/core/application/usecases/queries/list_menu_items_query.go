package queries

import (
	"errors"

	"foodorders/internal/pkg/guard"
)

var (
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
)

// ListMenuItemsQuery retrieves the whole menu in insertion order.
//
// Example:
//
//	query := NewListMenuItemsQuery()
//	handler := NewListMenuItemsQueryHandler(store.MenuRepository())
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list menu: %w", err)
//	}
type ListMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// MenuItemResponse is the read model of one menu item.
type MenuItemResponse struct {
	ID       int64
	Name     string
	Price    float64
	Category string
}
