package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the coffee shop API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(r gin.IRouter) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>coffee-shop-server - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "coffee-shop-server", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Coffee": {"type":"object","properties":{"_id":{"type":"string"},"name":{"type":"string"},"quantity":{"type":"number","nullable":true},"supplier":{"type":"string"},"taste":{"type":"string"},"price":{"type":"number","nullable":true},"details":{"type":"string"},"photo":{"type":"string"},"email":{"type":"string"}}},
      "User": {"type":"object","properties":{"_id":{"type":"string"},"email":{"type":"string"},"name":{"type":"string"},"photo":{"type":"string"},"lastSignInTime":{"type":"string"}}},
      "InsertResult": {"type":"object","properties":{"acknowledged":{"type":"boolean"},"insertedId":{"type":"string"}}},
      "UpdateResult": {"type":"object","properties":{"acknowledged":{"type":"boolean"},"matchedCount":{"type":"integer"},"modifiedCount":{"type":"integer"},"upsertedCount":{"type":"integer"},"upsertedId":{"type":"string","nullable":true}}},
      "DeleteResult": {"type":"object","properties":{"acknowledged":{"type":"boolean"},"deletedCount":{"type":"integer"}}},
      "Error": {"type":"object","properties":{"error":{"type":"string"}}}
    }
  },
  "paths": {
    "/": { "get": { "summary": "Welcome banner", "responses": { "200": { "description": "plain-text greeting" } } } },
    "/coffees": {
      "get": {
        "summary": "List coffees, optionally only those added by one email",
        "parameters": [ {"name":"email","in":"query","required":false,"schema":{"type":"string"}} ],
        "responses": { "200": { "description": "array of coffees", "content": {"application/json":{"schema":{"type":"array","items":{"$ref":"#/components/schemas/Coffee"}}}} } }
      },
      "post": {
        "summary": "Add a coffee",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Coffee"} } } },
        "responses": { "200": { "description": "insert acknowledgement", "content": {"application/json":{"schema":{"$ref":"#/components/schemas/InsertResult"}}} }, "400": { "description": "invalid body" } }
      }
    },
    "/coffees/{id}": {
      "get": { "summary": "Get one coffee (null when absent)", "parameters": [ {"name":"id","in":"path","required":true,"schema":{"type":"string"}} ], "responses": { "200": { "description": "coffee or null" }, "400": { "description": "invalid id" } } },
      "put": { "summary": "Replace the editable coffee fields (upsert)", "parameters": [ {"name":"id","in":"path","required":true,"schema":{"type":"string"}} ], "responses": { "200": { "description": "update acknowledgement", "content": {"application/json":{"schema":{"$ref":"#/components/schemas/UpdateResult"}}} }, "400": { "description": "invalid id or body" } } },
      "delete": { "summary": "Delete a coffee", "parameters": [ {"name":"id","in":"path","required":true,"schema":{"type":"string"}} ], "responses": { "200": { "description": "delete acknowledgement", "content": {"application/json":{"schema":{"$ref":"#/components/schemas/DeleteResult"}}} }, "400": { "description": "invalid id" } } }
    },
    "/users": {
      "get": { "summary": "List users", "responses": { "200": { "description": "array of users", "content": {"application/json":{"schema":{"type":"array","items":{"$ref":"#/components/schemas/User"}}}} } } },
      "post": { "summary": "Register a user", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/User"} } } }, "responses": { "200": { "description": "insert acknowledgement" }, "400": { "description": "invalid body" } } }
    },
    "/users/{id}": {
      "get": { "summary": "Get one user (null when absent)", "parameters": [ {"name":"id","in":"path","required":true,"schema":{"type":"string"}} ], "responses": { "200": { "description": "user or null" }, "400": { "description": "invalid id" } } }
    },
    "/users/signin": {
      "patch": { "summary": "Record the last sign-in time for an email", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"lastSignInTime":{"type":"string"}}} } } }, "responses": { "200": { "description": "update acknowledgement" }, "400": { "description": "invalid body" } } }
    },
    "/users/profile": {
      "patch": { "summary": "Update name and photo for an email", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"name":{"type":"string"},"photo":{"type":"string"}}} } } }, "responses": { "200": { "description": "update acknowledgement" }, "400": { "description": "invalid body" } } }
    },
    "/photos": {
      "post": { "summary": "Upload a photo", "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"photo":{"type":"string","format":"binary"}}} } } }, "responses": { "200": { "description": "key and public URL" }, "400": { "description": "missing or non-image upload" }, "413": { "description": "photo too large" } } }
    },
    "/photos/{key}": {
      "get": { "summary": "Download a photo", "parameters": [ {"name":"key","in":"path","required":true,"schema":{"type":"string"}} ], "responses": { "200": { "description": "image bytes" }, "404": { "description": "unknown key" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition format" } } } }
  }
}`
