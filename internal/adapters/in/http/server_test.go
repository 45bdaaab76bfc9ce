package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "foodorders/internal/adapters/in/http"
	"foodorders/internal/adapters/out/memory"
	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/platform/observability"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

var placedAt = time.Date(2026, 10, 18, 8, 15, 30, 250_000_000, time.UTC)

type uowFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f uowFactory) Create() commands.UoW {
	return f.factory.Create()
}

type ServerTestSuite struct {
	suite.Suite
	store   *memory.Store
	echo    *echo.Echo
	advance commands.AdvanceOrderStatusesCommandHandler
}

func (suite *ServerTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	factory := uowFactory{factory: memory.NewUnitOfWorkFactory(suite.store)}

	server := httpin.NewServer(
		commands.NewUpsertMenuItemCommandHandler(factory),
		commands.NewPlaceOrderCommandHandler(factory, func() time.Time { return placedAt }),
		queries.NewListMenuItemsQueryHandler(suite.store.MenuRepository()),
		queries.NewGetOrderQueryHandler(suite.store.OrderRepository()),
	)
	suite.advance = commands.NewAdvanceOrderStatusesCommandHandler(factory)

	e, err := httpin.NewRouter(server, httpin.RouterOptions{Logger: observability.DiscardLogger()})
	suite.Require().NoError(err)
	suite.echo = e
}

func (suite *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (suite *ServerTestSuite) errorOf(rec *httptest.ResponseRecorder) string {
	var resp httpin.ErrorResponse
	suite.decode(rec, &resp)
	return resp.Error
}

func (suite *ServerTestSuite) listMenu() []httpin.MenuItem {
	rec := suite.do(http.MethodGet, "/menu", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var items []httpin.MenuItem
	suite.decode(rec, &items)
	return items
}

func (suite *ServerTestSuite) addSoup() {
	rec := suite.do(http.MethodPost, "/menu", `{"name":"Soup","price":5,"category":"Starter"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (suite *ServerTestSuite) tick() {
	_, err := suite.advance.Handle(suite.T().Context(), commands.NewAdvanceOrderStatusesCommand())
	suite.Require().NoError(err)
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
	suite.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func (suite *ServerTestSuite) TestListMenu_Empty() {
	rec := suite.do(http.MethodGet, "/menu", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestUpsertMenuItem_Create() {
	rec := suite.do(http.MethodPost, "/menu", `{"name":"Soup","price":5,"category":"Starter"}`)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.JSONEq(`{
		"message": "Menu item added successfully.",
		"item": {"id": 1, "name": "Soup", "price": 5, "category": "Starter"}
	}`, rec.Body.String())
}

func (suite *ServerTestSuite) TestUpsertMenuItem_CreateAssignsMaxPlusOne() {
	suite.addSoup()
	rec := suite.do(http.MethodPost, "/menu", `{"id":null,"name":"Cake","price":4.5,"category":"Dessert"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code)
	rec = suite.do(http.MethodPost, "/menu", `{"id":0,"name":"Tea","price":2,"category":"Beverage"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var created httpin.MenuItemCreatedResponse
	suite.decode(rec, &created)
	suite.Equal(int64(3), created.Item.ID)

	items := suite.listMenu()
	suite.Require().Len(items, 3)
	suite.Equal([]string{"Soup", "Cake", "Tea"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func (suite *ServerTestSuite) TestUpsertMenuItem_Update() {
	suite.addSoup()

	rec := suite.do(http.MethodPost, "/menu", `{"id":1,"name":"Soup","price":6,"category":"Starter"}`)

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"message": "Menu item updated successfully."}`, rec.Body.String())
	suite.Equal([]httpin.MenuItem{{ID: 1, Name: "Soup", Price: 6, Category: "Starter"}}, suite.listMenu())
}

func (suite *ServerTestSuite) TestUpsertMenuItem_UnknownID() {
	suite.addSoup()

	for _, id := range []string{"42", "-1"} {
		rec := suite.do(http.MethodPost, "/menu", `{"id":`+id+`,"name":"Soup","price":6,"category":"Starter"}`)

		suite.Equal(http.StatusNotFound, rec.Code, "id %s", id)
		suite.Equal("Menu item not found.", suite.errorOf(rec))
	}
	suite.Equal([]httpin.MenuItem{{ID: 1, Name: "Soup", Price: 5, Category: "Starter"}}, suite.listMenu())
}

func (suite *ServerTestSuite) TestUpsertMenuItem_InvalidDetails() {
	suite.addSoup()

	bodies := map[string]string{
		"zero price":       `{"name":"Soup","price":0,"category":"Starter"}`,
		"negative price":   `{"name":"Soup","price":-3,"category":"Starter"}`,
		"empty name":       `{"name":"","price":5,"category":"Starter"}`,
		"unknown category": `{"name":"Soup","price":5,"category":"Snack"}`,
		"missing name":     `{"price":5,"category":"Starter"}`,
		"price as string":  `{"name":"Soup","price":"5","category":"Starter"}`,
		"malformed json":   `{"name":`,
		"invalid with id":  `{"id":42,"name":"Soup","price":0,"category":"Starter"}`,
	}
	for name, body := range bodies {
		rec := suite.do(http.MethodPost, "/menu", body)

		suite.Equal(http.StatusBadRequest, rec.Code, name)
		suite.Equal("Invalid menu item details.", suite.errorOf(rec), name)
	}
	suite.Len(suite.listMenu(), 1)
}

func (suite *ServerTestSuite) TestPlaceOrder_Success() {
	suite.addSoup()

	rec := suite.do(http.MethodPost, "/orders", `{"items":[1,1]}`)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.JSONEq(`{
		"message": "Order placed successfully.",
		"order": {"id": 1, "items": [1, 1], "status": "Preparing", "timestamp": "2026-10-18T08:15:30.250Z"}
	}`, rec.Body.String())
}

func (suite *ServerTestSuite) TestPlaceOrder_UnknownItems() {
	rec := suite.do(http.MethodPost, "/orders", `{"items":[99]}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("Invalid item IDs: 99", suite.errorOf(rec))
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/orders/1", "").Code)
}

func (suite *ServerTestSuite) TestPlaceOrder_ListsEveryUnknownItem() {
	suite.addSoup()

	rec := suite.do(http.MethodPost, "/orders", `{"items":[2,1,3,2]}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("Invalid item IDs: 2, 3, 2", suite.errorOf(rec))
}

func (suite *ServerTestSuite) TestPlaceOrder_MalformedBody() {
	suite.addSoup()

	bodies := map[string]string{
		"empty items":     `{"items":[]}`,
		"missing items":   `{}`,
		"items not array": `{"items":1}`,
		"fractional id":   `{"items":[1.5]}`,
	}
	for name, body := range bodies {
		rec := suite.do(http.MethodPost, "/orders", body)

		suite.Equal(http.StatusBadRequest, rec.Code, name)
		suite.Equal("Invalid order details.", suite.errorOf(rec), name)
	}
}

func (suite *ServerTestSuite) TestGetOrder() {
	suite.addSoup()
	suite.Require().Equal(http.StatusCreated, suite.do(http.MethodPost, "/orders", `{"items":[1]}`).Code)

	rec := suite.do(http.MethodGet, "/orders/1", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"id": 1, "items": [1], "status": "Preparing", "timestamp": "2026-10-18T08:15:30.250Z"}`,
		rec.Body.String())
}

func (suite *ServerTestSuite) TestGetOrder_NotFound() {
	for _, target := range []string{"/orders/1", "/orders/0", "/orders/-4", "/orders/abc"} {
		rec := suite.do(http.MethodGet, target, "")

		suite.Equal(http.StatusNotFound, rec.Code, target)
		suite.Equal("Order not found.", suite.errorOf(rec), target)
	}
}

func (suite *ServerTestSuite) TestGetOrder_StatusFollowsTicks() {
	suite.addSoup()
	suite.Require().Equal(http.StatusCreated, suite.do(http.MethodPost, "/orders", `{"items":[1]}`).Code)

	for _, want := range []string{"Out for Delivery", "Delivered", "Delivered"} {
		suite.tick()

		var o httpin.Order
		suite.decode(suite.do(http.MethodGet, "/orders/1", ""), &o)
		suite.Equal(want, o.Status)
	}
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	rec := suite.do(http.MethodGet, "/nope", "")

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal("Not Found", suite.errorOf(rec))
}

func (suite *ServerTestSuite) TestMethodNotAllowed() {
	rec := suite.do(http.MethodDelete, "/menu", "")

	suite.Equal(http.StatusMethodNotAllowed, rec.Code)
	suite.Equal("Method Not Allowed", suite.errorOf(rec))
}

func (suite *ServerTestSuite) TestSwaggerDocument() {
	rec := suite.do(http.MethodGet, "/swagger/doc.json", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"/orders/{id}"`)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
