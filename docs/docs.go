// Package docs registers the OpenAPI description served at /swagger/.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/register": {
            "post": {
                "description": "Creates the user, logs them in and redirects to their profile.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [
                    {"type": "string", "description": "5-20 characters", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "at least 6 characters", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "valid email, at most 50 characters", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "at most 30 characters", "name": "first_name", "in": "formData", "required": true},
                    {"type": "string", "description": "at most 30 characters", "name": "last_name", "in": "formData", "required": true},
                    {"type": "string", "description": "session CSRF token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "form re-rendered with errors"},
                    "302": {"description": "Found"}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "session CSRF token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "form re-rendered with errors"},
                    "302": {"description": "Found"}
                }
            }
        },
        "/logout": {
            "get": {
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "302": {"description": "Found"}
                }
            }
        },
        "/users/{username}": {
            "get": {
                "produces": ["text/html"],
                "tags": ["users"],
                "summary": "User profile with their feedback",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "302": {"description": "not logged in as username"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/users/{username}/delete": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["users"],
                "summary": "Delete the account and all its feedback",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "path", "required": true},
                    {"type": "string", "description": "session CSRF token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/users/{username}/feedback/add": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["feedback"],
                "summary": "Add feedback as username",
                "parameters": [
                    {"type": "string", "description": "owner", "name": "username", "in": "path", "required": true},
                    {"type": "string", "description": "at most 100 characters", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "body", "name": "content", "in": "formData", "required": true},
                    {"type": "string", "description": "session CSRF token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "form re-rendered with errors"},
                    "302": {"description": "Found"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/feedback/{id}/update": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["feedback"],
                "summary": "Edit a feedback's title and content",
                "parameters": [
                    {"type": "integer", "description": "feedback id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "at most 100 characters", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "body", "name": "content", "in": "formData", "required": true},
                    {"type": "string", "description": "session CSRF token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "form re-rendered with errors"},
                    "302": {"description": "Found"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/feedback/{id}/delete": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["feedback"],
                "summary": "Delete a feedback",
                "parameters": [
                    {"type": "integer", "description": "feedback id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "session CSRF token", "name": "csrf_token", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Feedback API",
	Description:      "Server-rendered feedback app: accounts, sessions and per-user feedback notes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
