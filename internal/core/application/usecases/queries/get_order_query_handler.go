package queries

import (
	"context"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle returns the order or an error wrapping errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	if query.OrderID().Validate() != nil {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	found, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(found), nil
}

// NewOrderResponse maps a domain order to its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	ids := make([]int64, len(items))
	for i, id := range items {
		ids[i] = id.Int64()
	}

	return OrderResponse{
		ID:        o.ID().Int64(),
		Items:     ids,
		Status:    o.Status().String(),
		Timestamp: o.PlacedAt(),
	}
}
