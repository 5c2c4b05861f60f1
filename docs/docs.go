// Package docs registers the OpenAPI document served at /api/swagger.
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
        "/signup": {"post": {"tags": ["auth"], "summary": "Candidate registration", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/login": {"post": {"tags": ["auth"], "summary": "Candidate login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/employer/signup": {"post": {"tags": ["auth"], "summary": "Employer registration", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/employer/login": {"post": {"tags": ["auth"], "summary": "Employer login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current account", "responses": {"200": {"description": "OK"}}}},
        "/jobs": {
            "get": {"tags": ["jobs"], "summary": "List active jobs", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Post a job", "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/jobs/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Job details", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Delete an own job", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/jobs/{id}/save": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Save or unsave a job", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Remove a saved job", "responses": {"200": {"description": "OK"}}}
        },
        "/jobs/{id}/apply": {"post": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Apply to a job", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/jobs/{id}/report": {"post": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Report a job", "responses": {"201": {"description": "Created"}}}},
        "/jobs/{id}/status": {"get": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Saved, applied and reported flags", "responses": {"200": {"description": "OK"}}}},
        "/jobs/user/{userId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Jobs posted by a user", "responses": {"200": {"description": "OK"}}}},
        "/apply": {"post": {"security": [{"BearerAuth": []}], "tags": ["applications"], "summary": "Apply with contact details", "responses": {"201": {"description": "Created"}}}},
        "/applications/{jobId}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["applications"], "summary": "Withdraw an application", "responses": {"200": {"description": "OK"}}}},
        "/applications/job/{job_id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["applications"], "summary": "Applications to an own job", "responses": {"200": {"description": "OK"}}}},
        "/applications/status/{id}": {"put": {"security": [{"BearerAuth": []}], "tags": ["applications"], "summary": "Change an application's status", "responses": {"200": {"description": "OK"}}}},
        "/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Full profile of the caller", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update the caller's profile", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}, "413": {"description": "Payload Too Large"}, "415": {"description": "Unsupported Media Type"}}}
        },
        "/users/{id}/upload-resume": {"put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Replace the caller's resume", "responses": {"200": {"description": "OK"}}}},
        "/users/{id}/saved-jobs": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Jobs saved by the caller", "responses": {"200": {"description": "OK"}}}},
        "/users/{id}/applied-jobs": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Jobs the caller applied to", "responses": {"200": {"description": "OK"}}}},
        "/users/{id}/notifications": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Notifications of the caller", "responses": {"200": {"description": "OK"}}}},
        "/candidates/{candidateId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Candidate contact card", "responses": {"200": {"description": "OK"}}}},
        "/companies": {"get": {"tags": ["companies"], "summary": "List company profiles", "responses": {"200": {"description": "OK"}}}},
        "/employers": {"get": {"tags": ["companies"], "summary": "Employer directory", "responses": {"200": {"description": "OK"}}}},
        "/companyprofile/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["companies"], "summary": "Company profile", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["companies"], "summary": "Update the caller's company profile", "responses": {"200": {"description": "OK"}}}
        },
        "/notifications": {"post": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Send a notification to a user", "responses": {"201": {"description": "Created"}}}},
        "/notifications/{userId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Notifications, newest first", "responses": {"200": {"description": "OK"}}}},
        "/notifications/{userId}/unread": {"get": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Number of unread notifications", "responses": {"200": {"description": "OK"}}}},
        "/notifications/{id}/read": {"put": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Mark a notification read", "responses": {"200": {"description": "OK"}}}},
        "/notifications/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Delete a notification", "responses": {"200": {"description": "OK"}}}},
        "/messages": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["messages"], "summary": "Messages sent or received by the caller", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["messages"], "summary": "Message a candidate", "responses": {"201": {"description": "Created"}}}
        },
        "/health": {"get": {"tags": ["system"], "summary": "Dependency health", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Job Portal API",
	Description:      "Job portal backend: accounts, job catalog, applications, profiles and notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
