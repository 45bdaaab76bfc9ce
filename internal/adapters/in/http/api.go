package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations declared in openapi.yaml.
type ServerInterface interface {
	// ListMenuItems handles GET /menu.
	ListMenuItems(ctx echo.Context) error
	// UpsertMenuItem handles POST /menu.
	UpsertMenuItem(ctx echo.Context) error
	// PlaceOrder handles POST /orders.
	PlaceOrder(ctx echo.Context) error
	// GetOrder handles GET /orders/{id}.
	GetOrder(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListMenuItems(ctx echo.Context) error {
	return w.Handler.ListMenuItems(ctx)
}

func (w *ServerInterfaceWrapper) UpsertMenuItem(ctx echo.Context) error {
	return w.Handler.UpsertMenuItem(ctx)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

// GetOrder binds the id path parameter. An id that is not an integer can never
// name an order, so it is answered like any other unknown order.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var id int64

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return ctx.JSON(http.StatusNotFound, NewErrorResponse(orderNotFoundMessage))
	}

	return w.Handler.GetOrder(ctx, id)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every API route to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/menu", wrapper.ListMenuItems)
	router.POST("/menu", wrapper.UpsertMenuItem)
	router.POST("/orders", wrapper.PlaceOrder)
	router.GET("/orders/:id", wrapper.GetOrder)
}
