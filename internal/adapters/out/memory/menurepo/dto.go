package menurepo

import (
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/menu"
)

// ItemDTO is the stored form of a menu item.
type ItemDTO struct {
	ID       int64
	Name     string
	Price    float64
	Category string
}

func fromDomain(item *menu.Item) ItemDTO {
	return ItemDTO{
		ID:       item.ID().Int64(),
		Name:     item.Name(),
		Price:    item.Price().Float64(),
		Category: item.Category().String(),
	}
}

func toDomain(dto ItemDTO) (*menu.Item, error) {
	details, err := menu.NewDetails(dto.Name, dto.Price, dto.Category)
	if err != nil {
		return nil, err
	}
	return menu.NewItem(kernel.ID(dto.ID), details)
}
