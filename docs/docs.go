// Package docs registers the Swagger 2.0 description of the HTTP API with swag
// so echo-swagger can serve it under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/menu": {
            "get": {
                "produces": ["application/json"],
                "summary": "List the menu in insertion order",
                "operationId": "listMenuItems",
                "responses": {
                    "200": {
                        "description": "Every menu item",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/MenuItem"}}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Create a menu item, or update it when id is given",
                "operationId": "upsertMenuItem",
                "parameters": [
                    {
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UpsertMenuItemRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Item updated", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "201": {"description": "Item created", "schema": {"$ref": "#/definitions/MenuItemCreatedResponse"}},
                    "400": {"description": "Invalid menu item details", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Menu item not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/orders": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Place an order for existing menu items",
                "operationId": "placeOrder",
                "parameters": [
                    {
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/PlaceOrderRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Order placed", "schema": {"$ref": "#/definitions/OrderPlacedResponse"}},
                    "400": {"description": "Unknown item ids or malformed body", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get an order by id",
                "operationId": "getOrder",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "format": "int64"}
                ],
                "responses": {
                    "200": {"description": "The order", "schema": {"$ref": "#/definitions/Order"}},
                    "404": {"description": "Order not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Liveness probe",
                "operationId": "health",
                "responses": {
                    "200": {"description": "Healthy", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "UpsertMenuItemRequest": {
            "type": "object",
            "required": ["name", "price", "category"],
            "properties": {
                "id": {"type": "integer", "format": "int64", "x-nullable": true},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string", "enum": ["Starter", "Main Course", "Dessert", "Beverage"]}
            }
        },
        "MenuItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string"}
            }
        },
        "MenuItemCreatedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "item": {"$ref": "#/definitions/MenuItem"}
            }
        },
        "PlaceOrderRequest": {
            "type": "object",
            "required": ["items"],
            "properties": {
                "items": {"type": "array", "items": {"type": "integer", "format": "int64"}}
            }
        },
        "Order": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "items": {"type": "array", "items": {"type": "integer", "format": "int64"}},
                "status": {"type": "string", "enum": ["Preparing", "Out for Delivery", "Delivered"]},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "OrderPlacedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "order": {"$ref": "#/definitions/Order"}
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Food orders API",
	Description:      "Menu catalog and order tracking for a food-service business.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
