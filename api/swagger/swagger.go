package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "College Portal API",
        "description": "Role-based college portal: accounts, attendance, leave permissions, events and the clubs/events catalog",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login, logout and password changes"},
        {"name": "Users", "description": "Admin account management"},
        {"name": "Permissions", "description": "Student leave-permission workflow"},
        {"name": "Catalog", "description": "Clubs and events catalog"},
        {"name": "Uploads", "description": "Bulk spreadsheet imports"},
        {"name": "Exports", "description": "Attendance report downloads"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate via the landing-page form",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "username", "in": "formData", "type": "string", "required": true},
                    {"name": "password", "in": "formData", "type": "string", "required": true},
                    {"name": "role", "in": "formData", "type": "string", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to the role dashboard or back to the landing page"}
                }
            }
        },
        "/logout": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Clear the session cookie",
                "responses": {
                    "302": {"description": "Redirect to the landing page"}
                }
            }
        },
        "/api/change_password": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Change the caller's password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/add_user": {
            "post": {
                "tags": ["Users"],
                "summary": "Create a student account (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/add_faculty": {
            "post": {
                "tags": ["Users"],
                "summary": "Create a faculty account (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddFacultyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/delete_user/{id}": {
            "delete": {
                "tags": ["Users"],
                "summary": "Delete any user by id (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/add_permission": {
            "post": {
                "tags": ["Permissions"],
                "summary": "Submit a leave-permission request (student)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddPermissionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/update_permission_status": {
            "post": {
                "tags": ["Permissions"],
                "summary": "Update a permission request's status (faculty)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePermissionStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/get_clubs_events": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List active clubs and events (public)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CatalogResponse"}}
                }
            }
        },
        "/api/add_club_event": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Add a club or event to the catalog (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddCatalogEntryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/upload_students": {
            "post": {
                "tags": ["Uploads"],
                "summary": "Bulk-import students from a spreadsheet (admin)",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ImportResult"}}
                }
            }
        },
        "/api/upload_faculty": {
            "post": {
                "tags": ["Uploads"],
                "summary": "Bulk-import faculty from a spreadsheet (admin)",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ImportResult"}}
                }
            }
        },
        "/api/attendance_report/{id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a student's attendance report (faculty)",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Report file"}
                }
            }
        }
    },
    "definitions": {
        "Result": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"}
            }
        },
        "ImportResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "success_count": {"type": "integer"},
                "error_count": {"type": "integer"}
            }
        },
        "ChangePasswordRequest": {
            "type": "object",
            "required": ["current_password", "new_password", "confirm_password"],
            "properties": {
                "current_password": {"type": "string"},
                "new_password": {"type": "string"},
                "confirm_password": {"type": "string"}
            }
        },
        "AddStudentRequest": {
            "type": "object",
            "required": ["username", "password", "name"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "class": {"type": "string"}
            }
        },
        "AddFacultyRequest": {
            "type": "object",
            "required": ["username", "password", "name"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "department": {"type": "string"}
            }
        },
        "AddPermissionRequest": {
            "type": "object",
            "required": ["date", "reason"],
            "properties": {
                "date": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "UpdatePermissionStatusRequest": {
            "type": "object",
            "required": ["permission_id", "status"],
            "properties": {
                "permission_id": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "AddCatalogEntryRequest": {
            "type": "object",
            "required": ["name", "type"],
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["club", "event"]}
            }
        },
        "CatalogEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "CatalogResponse": {
            "type": "object",
            "properties": {
                "clubs": {"type": "array", "items": {"$ref": "#/definitions/CatalogEntry"}},
                "events": {"type": "array", "items": {"$ref": "#/definitions/CatalogEntry"}}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
