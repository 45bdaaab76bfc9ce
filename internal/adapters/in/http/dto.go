package http

import (
	"time"

	"foodorders/internal/core/application/usecases/queries"
)

// timestampLayout is RFC 3339 with millisecond precision in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type UpsertMenuItemRequest struct {
	ID       *int64  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type PlaceOrderRequest struct {
	Items []int64 `json:"items"`
}

type MenuItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type Order struct {
	ID        int64   `json:"id"`
	Items     []int64 `json:"items"`
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type MenuItemCreatedResponse struct {
	Message string   `json:"message"`
	Item    MenuItem `json:"item"`
}

type OrderPlacedResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func toMenuItem(r queries.MenuItemResponse) MenuItem {
	return MenuItem{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Category: r.Category,
	}
}

func toOrder(r queries.OrderResponse) Order {
	items := r.Items
	if items == nil {
		items = []int64{}
	}
	return Order{
		ID:        r.ID,
		Items:     items,
		Status:    r.Status,
		Timestamp: formatTimestamp(r.Timestamp),
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
