// Package docs registers the OpenAPI description served under /swagger.
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
        "/user": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Get the authenticated user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Create user",
                "parameters": [
                    {"description": "User payload", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateUserInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/user/list": {
            "get": {
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Rows to skip", "name": "offset", "in": "query"},
                    {"type": "string", "description": "First name contains (case-insensitive)", "name": "query", "in": "query"},
                    {"type": "string", "description": "JSON order, e.g. [[\"first_name\",\"ASC\"]]", "name": "order", "in": "query"},
                    {"type": "string", "description": "JSON filter object", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/user/sign_in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Sign in with email or access code",
                "parameters": [
                    {"description": "Credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SignInInput"}},
                    {"type": "boolean", "description": "Return the admin permission tree", "name": "admin", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/user/sign_out": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Revoke the bearer token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/seed": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["seed"],
                "summary": "Seed reference data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SeedResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/user/user-types": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "List user types",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.UserType"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/user/bulk": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Delete several users",
                "parameters": [
                    {"type": "string", "description": "JSON array of ids, e.g. [1,2,3]", "name": "bulk", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/user/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Get user by id",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Update user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.UpdateUserInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Delete user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/image": {
            "post": {
                "tags": ["Image"],
                "summary": "Upload an image",
                "parameters": [{"description": "Encoded image", "name": "image", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RequiredImageInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Image"}}}
            }
        },
        "/image/{id}": {
            "get": {
                "tags": ["Image"],
                "summary": "Get image by id",
                "parameters": [{"type": "integer", "description": "Image ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Image"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/store": {
            "get": {
                "tags": ["Store"],
                "summary": "List stores",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ListResponse"}}}
            },
            "post": {
                "tags": ["Store"],
                "summary": "Create store",
                "parameters": [{"description": "Store payload", "name": "store", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateStoreInput"}}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/store/{id}": {
            "get": {
                "tags": ["Store"],
                "summary": "Get store by id",
                "parameters": [{"type": "integer", "description": "Store ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.SeedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.ListResponse": {
            "type": "object",
            "properties": {"count": {"type": "integer"}, "rows": {}}
        },
        "handler.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "cpf": {"type": "string"},
                "rg": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "code": {"type": "string"},
                "user_type_id": {"type": "integer"},
                "store_id": {"type": "integer"},
                "image_id": {"type": "integer"},
                "address_id": {"type": "integer"},
                "privacy_policy_id": {"type": "integer"},
                "term_use_id": {"type": "integer"},
                "user_type": {"$ref": "#/definitions/model.UserType"},
                "image": {"$ref": "#/definitions/model.Image"},
                "follow_number": {"type": "integer"},
                "followed_number": {"type": "integer"},
                "token": {"type": "string"}
            }
        },
        "model.Image": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "mime_type": {"type": "string"},
                "data": {"type": "string"}
            }
        },
        "model.UserType": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "key": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "service.CreateUserInput": {
            "type": "object",
            "required": ["email", "first_name", "password"],
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "cpf": {"type": "string"},
                "rg": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"},
                "code": {"type": "string"},
                "user_type_id": {"type": "integer"},
                "store_id": {"type": "integer"},
                "image": {"$ref": "#/definitions/model.Image"}
            }
        },
        "service.UpdateUserInput": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "code": {"type": "string"},
                "user_type_id": {"type": "integer"},
                "privacy_policy_id": {"type": "integer"},
                "term_use_id": {"type": "integer"},
                "image": {"$ref": "#/definitions/model.Image"}
            }
        },
        "service.SignInInput": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "service.RequiredImageInput": {
            "type": "object",
            "required": ["data"],
            "properties": {"name": {"type": "string"}, "mime_type": {"type": "string"}, "data": {"type": "string"}}
        },
        "service.CreateStoreInput": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "store_type_id": {"type": "integer"}}
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
	Title:            "Marketplace API",
	Description:      "Marketplace API: users, stores, images, services and admin permissions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
