// Package docs registers the Swagger document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://spdx.org/licenses/MIT.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/cohorts": {
            "get": {
                "description": "Retrieve a list of all cohorts in insertion order",
                "produces": ["application/json"],
                "tags": ["cohorts"],
                "summary": "Get all cohorts",
                "responses": {
                    "200": {"description": "A list of cohorts", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Cohort"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Add a new cohort",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cohorts"],
                "summary": "Create a new cohort",
                "parameters": [
                    {"description": "Cohort to create", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Cohort"}}
                ],
                "responses": {
                    "201": {"description": "A new cohort is created", "schema": {"$ref": "#/definitions/models.Cohort"}},
                    "400": {"description": "Validation failed or malformed body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/cohorts/{id}": {
            "get": {
                "description": "Retrieve a specific cohort by its ID",
                "produces": ["application/json"],
                "tags": ["cohorts"],
                "summary": "Get a cohort by ID",
                "parameters": [
                    {"type": "string", "description": "Cohort ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "A single cohort", "schema": {"$ref": "#/definitions/models.Cohort"}},
                    "400": {"description": "Invalid Id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Cohort not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Update the supplied fields of a cohort; the merged document is re-validated",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cohorts"],
                "summary": "Update a cohort by ID",
                "parameters": [
                    {"type": "string", "description": "Cohort ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CohortPatch"}}
                ],
                "responses": {
                    "200": {"description": "The updated cohort", "schema": {"$ref": "#/definitions/models.Cohort"}},
                    "400": {"description": "Invalid Id, validation failed or malformed body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Cohort not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Remove a cohort; students referencing it keep a dangling reference",
                "tags": ["cohorts"],
                "summary": "Delete a cohort by ID",
                "parameters": [
                    {"type": "string", "description": "Cohort ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Cohort deleted"},
                    "400": {"description": "Invalid Id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students": {
            "get": {
                "description": "Retrieve a list of all students with linked cohorts",
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get all students",
                "responses": {
                    "200": {"description": "A list of students with linked cohorts", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.StudentResponse"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Add a new student; cohort holds the id of the linked cohort",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Create a new student",
                "parameters": [
                    {"description": "Student to create", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Student"}}
                ],
                "responses": {
                    "201": {"description": "A new student is created", "schema": {"$ref": "#/definitions/models.Student"}},
                    "400": {"description": "Validation failed or malformed body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "description": "Retrieve a specific student by ID along with the linked cohort",
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get a student by ID",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "A single student with the linked cohort", "schema": {"$ref": "#/definitions/dto.StudentResponse"}},
                    "400": {"description": "Invalid Id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Update the supplied fields of a student; an empty cohort clears the reference",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Update a student by ID",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.StudentPatch"}}
                ],
                "responses": {
                    "200": {"description": "The updated student", "schema": {"$ref": "#/definitions/models.Student"}},
                    "400": {"description": "Invalid Id, validation failed or malformed body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Remove a specific student by ID; deleting an absent student succeeds",
                "tags": ["students"],
                "summary": "Delete a student by ID",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Student successfully deleted"},
                    "400": {"description": "Invalid Id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "description": "Public liveness message of the users router",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Users liveness",
                "responses": {
                    "200": {"description": "all good with users", "schema": {"type": "string"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieve a user; requires a bearer token",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by ID",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "A single user", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Invalid Id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized - Invalid or missing token", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "RES_001"},
                "details": {},
                "field": {"type": "string", "example": "cohortName"},
                "message": {"type": "string", "example": "cohort not found"},
                "severity": {"type": "string", "example": "ERROR"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "success": {"type": "boolean", "example": false},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.StudentResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "background": {"type": "string"},
                "cohort": {"$ref": "#/definitions/models.Cohort"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "image": {"type": "string"},
                "languages": {"type": "array", "items": {"type": "string"}},
                "lastName": {"type": "string"},
                "linkedinUrl": {"type": "string"},
                "phone": {"type": "string"},
                "program": {"type": "string"},
                "projects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Cohort": {
            "type": "object",
            "required": ["cohortName", "format", "program"],
            "properties": {
                "_id": {"type": "string", "example": "66f1c2a4e13b2a0012ab34cd"},
                "campus": {"type": "string", "example": "Berlin"},
                "cohortName": {"type": "string", "example": "Web Dev 101"},
                "cohortSlug": {"type": "string", "example": "web-dev-101"},
                "endDate": {"type": "string", "example": "2024-12-20T00:00:00Z"},
                "format": {"type": "string", "enum": ["Full Time", "Part Time"]},
                "inProgress": {"type": "boolean"},
                "leadTeacher": {"type": "string"},
                "program": {"type": "string", "enum": ["Web Dev", "UX/UI", "Data Analytics", "Cybersecurity"]},
                "programManager": {"type": "string"},
                "startDate": {"type": "string", "example": "2024-09-30T00:00:00Z"},
                "totalHours": {"type": "number", "minimum": 0, "example": 360}
            }
        },
        "models.CohortPatch": {
            "type": "object",
            "properties": {
                "campus": {"type": "string"},
                "cohortName": {"type": "string"},
                "cohortSlug": {"type": "string"},
                "endDate": {"type": "string"},
                "format": {"type": "string"},
                "inProgress": {"type": "boolean"},
                "leadTeacher": {"type": "string"},
                "program": {"type": "string"},
                "programManager": {"type": "string"},
                "startDate": {"type": "string"},
                "totalHours": {"type": "number"}
            }
        },
        "models.Student": {
            "type": "object",
            "required": ["firstName"],
            "properties": {
                "_id": {"type": "string"},
                "background": {"type": "string"},
                "cohort": {"type": "string", "description": "ID of the linked cohort"},
                "email": {"type": "string"},
                "firstName": {"type": "string", "example": "Ada"},
                "image": {"type": "string"},
                "languages": {"type": "array", "items": {"type": "string"}},
                "lastName": {"type": "string", "example": "Lovelace"},
                "linkedinUrl": {"type": "string"},
                "phone": {"type": "string"},
                "program": {"type": "string", "enum": ["Web Dev", "UX/UI", "Data Analytics", "Cybersecurity"]},
                "projects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.StudentPatch": {
            "type": "object",
            "properties": {
                "background": {"type": "string"},
                "cohort": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "image": {"type": "string"},
                "languages": {"type": "array", "items": {"type": "string"}},
                "lastName": {"type": "string"},
                "linkedinUrl": {"type": "string"},
                "phone": {"type": "string"},
                "program": {"type": "string"},
                "projects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5005",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Cohort Tools API",
	Description:      "CRUD API for bootcamp cohorts and students",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
