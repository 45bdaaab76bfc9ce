package queries

import (
	"context"

	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/core/ports"
)

// ListMenuItemsQueryHandler reads the menu store directly, outside of a unit of
// work. The store serializes reads against in-flight commands.
type ListMenuItemsQueryHandler struct {
	repo ports.MenuRepository
}

func NewListMenuItemsQueryHandler(repo ports.MenuRepository) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{repo: repo}
}

// Handle returns every item in insertion order. An empty menu yields an empty,
// non-nil slice.
func (h ListMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query ListMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, NewMenuItemResponse(item))
	}

	return result, nil
}

// NewMenuItemResponse maps a domain item to its read model.
func NewMenuItemResponse(item *menu.Item) MenuItemResponse {
	return MenuItemResponse{
		ID:       item.ID().Int64(),
		Name:     item.Name(),
		Price:    item.Price().Float64(),
		Category: item.Category().String(),
	}
}
