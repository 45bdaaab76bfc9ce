package http

import (
	"errors"
	"net/http"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/services"
	"foodorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	menuItemAddedMessage     = "Menu item added successfully."
	menuItemUpdatedMessage   = "Menu item updated successfully."
	invalidMenuItemMessage   = "Invalid menu item details."
	menuItemNotFoundMessage  = "Menu item not found."
	orderPlacedMessage       = "Order placed successfully."
	invalidOrderMessage      = "Invalid order details."
	invalidItemIDsMessage    = "Invalid item IDs: "
	orderNotFoundMessage     = "Order not found."
	internalServerErrMessage = "Internal server error"
)

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	upsertMenuItemHandler commands.UpsertMenuItemCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler

	// Query handlers
	listMenuItemsHandler queries.ListMenuItemsQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
}

func NewServer(
	upsertMenuItemHandler commands.UpsertMenuItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	listMenuItemsHandler queries.ListMenuItemsQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		upsertMenuItemHandler: upsertMenuItemHandler,
		placeOrderHandler:     placeOrderHandler,
		listMenuItemsHandler:  listMenuItemsHandler,
		getOrderHandler:       getOrderHandler,
	}
}

// ListMenuItems handles GET /menu - returns the whole menu.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	items, err := s.listMenuItemsHandler.Handle(ctx.Request().Context(), queries.NewListMenuItemsQuery())
	if err != nil {
		return err
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpsertMenuItem handles POST /menu - creates an item, or replaces the details
// of an existing one when the body carries a non-zero id.
func (s *Server) UpsertMenuItem(ctx echo.Context) error {
	var request UpsertMenuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, NewErrorResponse(invalidMenuItemMessage))
	}

	var itemID int64
	if request.ID != nil {
		itemID = *request.ID
	}

	cmd, err := commands.NewUpsertMenuItemCommand(itemID, request.Name, request.Price, request.Category)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewErrorResponse(invalidMenuItemMessage))
	}

	result, err := s.upsertMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, NewErrorResponse(menuItemNotFoundMessage))
	case errs.IsInvalidInput(err):
		return ctx.JSON(http.StatusBadRequest, NewErrorResponse(invalidMenuItemMessage))
	case err != nil:
		return err
	}

	if !result.Created {
		return ctx.JSON(http.StatusOK, MessageResponse{Message: menuItemUpdatedMessage})
	}

	return ctx.JSON(http.StatusCreated, MenuItemCreatedResponse{
		Message: menuItemAddedMessage,
		Item:    toMenuItem(queries.NewMenuItemResponse(result.Item)),
	})
}

// PlaceOrder handles POST /orders - places an order in Preparing status.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, NewErrorResponse(invalidOrderMessage))
	}

	cmd, err := commands.NewPlaceOrderCommand(request.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewErrorResponse(invalidOrderMessage))
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var unknown *services.UnknownItemsError
		switch {
		case errors.As(err, &unknown):
			return ctx.JSON(http.StatusBadRequest, NewErrorResponse(invalidItemIDsMessage+unknown.Joined()))
		case errs.IsInvalidInput(err):
			return ctx.JSON(http.StatusBadRequest, NewErrorResponse(invalidOrderMessage))
		default:
			return err
		}
	}

	return ctx.JSON(http.StatusCreated, OrderPlacedResponse{
		Message: orderPlacedMessage,
		Order:   toOrder(queries.NewOrderResponse(placed)),
	})
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(id))
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, NewErrorResponse(orderNotFoundMessage))
	case err != nil:
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

var _ ServerInterface = (*Server)(nil)
