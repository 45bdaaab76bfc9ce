package queries

import (
	"errors"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery looks up a single order by id.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery accepts any id. Ids that can never be assigned (zero or
// negative) are simply not found by the handler.
func NewGetOrderQuery(orderID int64) GetOrderQuery {
	return GetOrderQuery{
		orderID: kernel.ID(orderID),
		guard:   guard.NewConstructorGuard(),
	}
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID        int64
	Items     []int64
	Status    string
	Timestamp time.Time
}
