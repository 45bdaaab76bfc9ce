package orderrepo

import (
	"slices"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// OrderDTO is the stored form of an order.
type OrderDTO struct {
	ID       int64
	Items    []int64
	Status   order.Status
	PlacedAt time.Time
}

func (dto OrderDTO) clone() OrderDTO {
	dto.Items = slices.Clone(dto.Items)
	return dto
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	raw := make([]int64, len(items))
	for i, id := range items {
		raw[i] = id.Int64()
	}

	return OrderDTO{
		ID:       aggregate.ID().Int64(),
		Items:    raw,
		Status:   aggregate.Status(),
		PlacedAt: aggregate.PlacedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]kernel.ID, len(dto.Items))
	for i, id := range dto.Items {
		items[i] = kernel.ID(id)
	}
	return order.RestoreOrder(kernel.ID(dto.ID), items, dto.Status, dto.PlacedAt)
}
