// Package docs registers the OpenAPI description served at /swagger.
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
        "/board": {
            "get": {
                "tags": ["Board"],
                "summary": "Board view with admission and toggle flags",
                "parameters": [{"type": "string", "name": "q", "in": "query", "description": "Case-insensitive title filter"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BoardResponse"}}}
            }
        },
        "/columns/{index}/cards": {
            "post": {
                "tags": ["Cards"],
                "summary": "Add a card to a column",
                "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "index", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Ignored (column full)", "schema": {"$ref": "#/definitions/handler.MutationResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.MutationResponse"}}
                }
            }
        },
        "/cards/{id}": {
            "patch": {
                "tags": ["Cards"],
                "summary": "Edit card title or colour",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateCardRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MutationResponse"}}}
            },
            "delete": {
                "tags": ["Cards"],
                "summary": "Remove a card",
                "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MutationResponse"}}}
            }
        },
        "/cards/{id}/items": {
            "post": {
                "tags": ["Items"],
                "summary": "Add a checklist item",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AddItemRequest"}}
                ],
                "responses": {"200": {"description": "Ignored"}, "201": {"description": "Created"}}
            }
        },
        "/cards/{id}/items/{index}": {
            "patch": {
                "tags": ["Items"],
                "summary": "Edit item text or completed flag",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "index", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateItemRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MutationResponse"}}}
            }
        },
        "/cards/{id}/items/{index}/toggle": {
            "post": {
                "tags": ["Items"],
                "summary": "Toggle an item",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "index", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MutationResponse"}}}
            }
        }
    },
    "definitions": {
        "handler.ItemResponse": {
            "type": "object",
            "properties": {"text": {"type": "string"}, "completed": {"type": "boolean"}}
        },
        "handler.CardResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "color": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.ItemResponse"}},
                "completed_date": {"type": "string"},
                "can_toggle": {"type": "boolean"}
            }
        },
        "handler.ColumnResponse": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"},
                "title": {"type": "string"},
                "can_add_card": {"type": "boolean"},
                "cards": {"type": "array", "items": {"$ref": "#/definitions/handler.CardResponse"}}
            }
        },
        "handler.BoardResponse": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"$ref": "#/definitions/handler.ColumnResponse"}},
                "next_card_id": {"type": "integer"},
                "query": {"type": "string"}
            }
        },
        "handler.MutationResponse": {
            "type": "object",
            "properties": {
                "applied": {"type": "boolean"},
                "card": {"$ref": "#/definitions/handler.CardResponse"},
                "warning": {"type": "string"}
            }
        },
        "handler.UpdateCardRequest": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "color": {"type": "string"}}
        },
        "handler.AddItemRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "handler.UpdateItemRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}, "completed": {"type": "boolean"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Note Board API",
	Description:      "Three-column checklist board with automatic card promotion.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
