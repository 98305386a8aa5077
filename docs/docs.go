// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/groups": {
            "post": {
                "description": "Create a group with a unique name",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Create a new group",
                "parameters": [
                    {
                        "description": "Group creation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/group.CreateGroupRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/group.GroupResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/groups/{id}/join": {
            "post": {
                "description": "Add a user to a group",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Join a group",
                "parameters": [
                    {"type": "integer", "description": "Group ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "User joining the group",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/group.JoinGroupRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/group.JoinResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/groups/{id}/message": {
            "post": {
                "description": "Post a message to a group the user has joined",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Send a message",
                "parameters": [
                    {"type": "integer", "description": "Group ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Message to send",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/message.SendMessageRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/message.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/groups/{id}/messages": {
            "get": {
                "description": "List every message of a group, oldest first",
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "List group messages",
                "parameters": [
                    {"type": "integer", "description": "Group ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/message.GroupMessageResponse"}}
                    },
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/users": {
            "post": {
                "description": "Register a user with a unique username",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a new user",
                "parameters": [
                    {
                        "description": "User creation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/user.CreateUserRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "group.CreateGroupRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "example": "general"}}
        },
        "group.GroupResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}
        },
        "group.JoinGroupRequest": {
            "type": "object",
            "required": ["user_id"],
            "properties": {"user_id": {"type": "integer", "example": 1}}
        },
        "group.JoinResponse": {
            "type": "object",
            "properties": {
                "group_id": {"type": "integer"},
                "message": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "message.GroupMessageResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "message.MessageResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "group_id": {"type": "integer"},
                "id": {"type": "integer"},
                "user_id": {"type": "integer"}
            }
        },
        "message.SendMessageRequest": {
            "type": "object",
            "required": ["content", "user_id"],
            "properties": {
                "content": {"type": "string", "example": "Hello!"},
                "user_id": {"type": "integer", "example": 1}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "user.CreateUserRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {"username": {"type": "string", "example": "alice"}}
        },
        "user.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "username": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Group Chat API",
	Description:      "Users, groups, memberships and group messages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
