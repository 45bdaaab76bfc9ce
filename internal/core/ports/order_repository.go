package ports

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// OrderRepository is the Order Store: an ordered collection of orders.
type OrderRepository interface {
	// Add appends a new order. The order id must not be in use.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given id or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List returns every order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// NextID returns one greater than the largest stored id, or 1 when empty.
	NextID(ctx context.Context) (kernel.ID, error)
}
