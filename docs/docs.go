// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init --parseInternal -g cmd/identity/main.go
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/account": {
            "post": {
                "tags": ["account"],
                "summary": "Register a new account",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/account/{uid}": {
            "get": {
                "tags": ["account"],
                "summary": "Get an account by UID",
                "security": [{"BearerAuth": []}],
                "parameters": [{"type": "string", "name": "uid", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["account"],
                "summary": "Update an account by UID",
                "security": [{"BearerAuth": []}],
                "parameters": [{"type": "string", "name": "uid", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/token": {
            "post": {
                "tags": ["token"],
                "summary": "Authenticate and obtain a token pair",
                "responses": {"201": {"description": "Created"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/validate/{accessToken}": {
            "get": {
                "tags": ["token"],
                "summary": "Validate an access token",
                "parameters": [{"type": "string", "name": "accessToken", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/refresh-token/{refreshToken}/token": {
            "post": {
                "tags": ["token"],
                "summary": "Exchange a refresh token for a new token pair",
                "parameters": [{"type": "string", "name": "refreshToken", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            }
        },
        "/movies/{id}": {
            "get": {
                "tags": ["movies"],
                "summary": "Get a movie by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/movie/{id}/reservations": {
            "post": {
                "tags": ["reservations"],
                "summary": "Create a reservation for a movie",
                "security": [{"BearerAuth": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/reservations/{id}/confirm": {
            "post": {
                "tags": ["reservations"],
                "summary": "Confirm a reservation",
                "security": [{"BearerAuth": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Cinema Platform API",
	Description:      "Identity, movie catalog, and reservation services.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
