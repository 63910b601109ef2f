// Package docs регистрирует swagger-документ API дашборда. Описания путей
// повторяют аннотации swag обработчиков.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/bar-chart": {
            "get": {
                "description": "Count of filtered transactions per fixed price range; empty ranges are reported as 0",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Price distribution",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive text in title or description", "name": "search", "in": "query"},
                    {"type": "string", "description": "English month name of dateOfSale", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/getdata": {
            "get": {
                "description": "Fetches the transaction dataset from the upstream URL and returns it verbatim",
                "produces": ["application/json"],
                "tags": ["proxy"],
                "summary": "Raw dataset",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.FetchError"}}
                }
            }
        },
        "/api/statistics": {
            "get": {
                "description": "Total sales of sold items and sold/not sold counts for the filtered set",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Sales statistics",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive text in title or description", "name": "search", "in": "query"},
                    {"type": "string", "description": "English month name of dateOfSale", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/transactions": {
            "get": {
                "description": "Filtered and paginated transactions of the loaded dataset",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive text in title or description", "name": "search", "in": "query"},
                    {"type": "string", "description": "English month name of dateOfSale", "name": "month", "in": "query"},
                    {"type": "integer", "description": "Page number, clamped to the available range", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string"},
                "sold": {"type": "boolean"},
                "dateOfSale": {"type": "string"},
                "image": {"type": "string"}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid query parameters"},
                "status": {"type": "string", "example": "Error"}
            }
        },
        "response.FetchError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "unexpected status: 503 Service Unavailable"},
                "message": {"type": "string", "example": "Error fetching data"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo описывает заголовок документа.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sales Dashboard API",
	Description:      "Proxy for the product transaction dataset and its filtered views.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
