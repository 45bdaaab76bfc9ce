// Package ports defines the store contracts used by the application layer.
// The in-memory adapter implements them; tests replace them with mocks.
package ports

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/menu"
)

// MenuRepository is the Menu Store: an ordered collection of menu items.
type MenuRepository interface {
	// Add appends a new item. The item id must not be in use.
	Add(ctx context.Context, item *menu.Item) error

	// Update replaces the stored item with the same id, keeping its position.
	// Returns errs.ErrObjectNotFound when no such item exists.
	Update(ctx context.Context, item *menu.Item) error

	// Get returns the item with the given id or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.ID) (*menu.Item, error)

	// List returns every item in insertion order.
	List(ctx context.Context) ([]*menu.Item, error)

	// NextID returns one greater than the largest stored id, or 1 when empty.
	NextID(ctx context.Context) (kernel.ID, error)
}
