package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Storefront catalog and admin API backed by a single JSON document.",
        "title": "Panelstore API",
        "version": "1.0"
    },
    "host": "localhost:3000",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/produk.json": {
            "get": {
                "tags": ["products"],
                "summary": "Get the full product document",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Canonical {produk:[...]} envelope"}
                }
            }
        },
        "/api/produk": {
            "get": {
                "tags": ["products"],
                "summary": "List products as a bare array",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Product array"}
                }
            }
        },
        "/admin/check": {
            "get": {
                "tags": ["auth"],
                "summary": "Report whether the request carries a valid session",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "{auth:bool}"}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Authenticate the admin and set the session cookie",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "username": {"type": "string", "example": "admin"},
                                "password": {"type": "string", "example": "secret"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Session cookie set"},
                    "401": {"description": "Invalid credentials"},
                    "429": {"description": "Rate limited or banned"}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Clear the session cookie",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Cookie cleared"}
                }
            }
        },
        "/admin/produk": {
            "get": {
                "tags": ["products"],
                "summary": "Product document for the admin UI",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Canonical document"},
                    "401": {"description": "Missing or invalid session"}
                }
            }
        },
        "/admin/produk/stats": {
            "get": {
                "tags": ["products"],
                "summary": "Catalog summary for the admin dashboard",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Totals and per-category counts"},
                    "401": {"description": "Missing or invalid session"}
                }
            }
        },
        "/api/admin/upload": {
            "post": {
                "tags": ["upload"],
                "summary": "Upload a single file",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "formData", "name": "file", "type": "file", "required": true}
                ],
                "responses": {
                    "200": {"description": "{ok:true,url}"},
                    "400": {"description": "No file"},
                    "401": {"description": "Missing or invalid session"}
                }
            }
        },
        "/api/admin/add": {
            "post": {
                "tags": ["products"],
                "summary": "Create a product",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "product",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {"type": "string", "example": "Panel Premium"},
                                "desc": {"type": "string"},
                                "price": {"type": "number", "example": 50000},
                                "img": {"type": "string"},
                                "cat": {"type": "string", "example": "panel"},
                                "qris": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "{ok:true,product}"},
                    "400": {"description": "Name missing"},
                    "401": {"description": "Missing or invalid session"}
                }
            }
        },
        "/api/admin/edit/{id}": {
            "post": {
                "tags": ["products"],
                "summary": "Update a product",
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "{ok:true,product}"},
                    "404": {"description": "Unknown id"},
                    "401": {"description": "Missing or invalid session"}
                }
            }
        },
        "/api/admin/delete/{id}": {
            "post": {
                "tags": ["products"],
                "summary": "Delete a product (idempotent)",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "{ok:true}"},
                    "401": {"description": "Missing or invalid session"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Panelstore API",
	Description:      "Storefront catalog and admin API backed by a single JSON document.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
