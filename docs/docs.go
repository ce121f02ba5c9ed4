// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/api/messages": {
            "post": {
                "description": "Stores a message in an existing session, or opens a new session when session_id is omitted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Post a chat message",
                "parameters": [
                    {"type": "string", "description": "Replays the original message when repeated", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.postMessageRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.createMessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/messages/{session_id}": {
            "get": {
                "description": "Oldest first. offset messages are skipped, then up to limit are returned.",
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "List a session's messages",
                "parameters": [
                    {"type": "string", "description": "Public session id", "name": "session_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum number of messages (default 50)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Number of messages to skip (default 0)", "name": "offset", "in": "query"},
                    {"type": "string", "description": "Exact sender id", "name": "sender", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listMessagesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/messages/{session_id}/{message_id}": {
            "delete": {
                "tags": ["messages"],
                "summary": "Delete a message",
                "parameters": [
                    {"type": "string", "description": "Public session id", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "description": "Public message id", "name": "message_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/sessions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Open a session",
                "parameters": [
                    {"description": "Session", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.sessionEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/sessions/{session_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Get a session by public id",
                "parameters": [
                    {"type": "string", "description": "Public session id", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/senders": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["senders"],
                "summary": "Register a sender",
                "parameters": [
                    {"description": "Sender", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerSenderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.senderEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/senders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["senders"],
                "summary": "Get a sender",
                "parameters": [{"type": "string", "description": "Sender id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.senderEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["senders"],
                "summary": "Delete a sender",
                "parameters": [{"type": "string", "description": "Sender id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/banned-words": {
            "get": {
                "produces": ["application/json"],
                "tags": ["moderation"],
                "summary": "List banned words",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.bannedWordListEnvelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["moderation"],
                "summary": "Ban a word",
                "parameters": [
                    {"description": "Word", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.addBannedWordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.bannedWordEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/banned-words/{id}": {
            "delete": {
                "tags": ["moderation"],
                "summary": "Unban a word",
                "parameters": [{"type": "string", "description": "Banned word id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.postMessageRequest": {
            "type": "object",
            "required": ["content"],
            "properties": {
                "content": {"type": "string"},
                "sender_id": {"type": "string"},
                "sender_type": {"type": "string", "enum": ["user", "system", "bot"]},
                "session_id": {"type": "string"}
            }
        },
        "handler.textMetrics": {
            "type": "object",
            "properties": {
                "word_count": {"type": "integer"},
                "character_count": {"type": "integer"},
                "processed_at": {"type": "string", "format": "date-time"}
            }
        },
        "handler.messageView": {
            "type": "object",
            "properties": {
                "message_id": {"type": "string"},
                "session_id": {"type": "string"},
                "content": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"},
                "sender": {"type": "string", "x-nullable": true},
                "metadata": {"$ref": "#/definitions/handler.textMetrics"}
            }
        },
        "handler.messageListItem": {
            "type": "object",
            "properties": {
                "message_id": {"type": "string"},
                "session_id": {"type": "string"},
                "content": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"},
                "sender_id": {"type": "string"},
                "metadata": {"$ref": "#/definitions/handler.textMetrics"}
            }
        },
        "handler.createMessageResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"$ref": "#/definitions/handler.messageView"}
            }
        },
        "handler.listMessagesResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/handler.messageListItem"}}
            }
        },
        "handler.createSessionRequest": {
            "type": "object",
            "required": ["sender_id"],
            "properties": {
                "sender_id": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.sessionView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "session_id": {"type": "string"},
                "user_id": {"type": "string"},
                "title": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "handler.sessionEnvelope": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"$ref": "#/definitions/handler.sessionView"}
            }
        },
        "handler.registerSenderRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "type": {"type": "string", "enum": ["user", "system", "bot"]}
            }
        },
        "handler.senderView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "type": {"type": "string"},
                "is_active": {"type": "boolean"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "handler.senderEnvelope": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"$ref": "#/definitions/handler.senderView"}
            }
        },
        "handler.addBannedWordRequest": {
            "type": "object",
            "required": ["word"],
            "properties": {
                "word": {"type": "string"}
            }
        },
        "handler.bannedWordView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "word": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "handler.bannedWordEnvelope": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"$ref": "#/definitions/handler.bannedWordView"}
            }
        },
        "handler.bannedWordListEnvelope": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/handler.bannedWordView"}}
            }
        },
        "handler.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "enum": ["INVALID_REQUEST", "NOT_FOUND", "FORBIDDEN", "CONFLICT", "METHOD_NOT_ALLOWED", "SERVER_ERROR"]},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/handler.FieldError"}}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "error"},
                "error": {"$ref": "#/definitions/handler.ErrorBody"}
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
	Title:            "Chat Message API",
	Description:      "Posts chat messages into sender-owned sessions and serves paginated session history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
