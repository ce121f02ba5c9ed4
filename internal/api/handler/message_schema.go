package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// --- Request / Response types ---

type postMessageRequest struct {
	Content    string `json:"content" validate:"required"`
	SenderID   string `json:"sender_id"`
	SenderType string `json:"sender_type" validate:"omitempty,oneof=user system bot"`
	SessionID  string `json:"session_id"`
}

// messageView is the 201 payload of POST /api/messages. Sender is the sender
// id, else the sender type, else null.
type messageView struct {
	MessageID string         `json:"message_id"`
	SessionID string         `json:"session_id"`
	Content   string         `json:"content"`
	Timestamp string         `json:"timestamp"`
	Sender    *string        `json:"sender"`
	Metadata  map[string]any `json:"metadata"`
}

type messageListItem struct {
	MessageID string         `json:"message_id"`
	SessionID string         `json:"session_id"`
	Content   string         `json:"content"`
	Timestamp string         `json:"timestamp"`
	SenderID  string         `json:"sender_id"`
	Metadata  map[string]any `json:"metadata"`
}

type createMessageResponse struct {
	Status string      `json:"status"`
	Data   messageView `json:"data"`
}

type listMessagesResponse struct {
	Status string            `json:"status"`
	Data   []messageListItem `json:"data"`
}

// decodeMessageRequest turns a raw body into a postMessageRequest. The legacy
// sender alias is resolved on the untyped object first, then the object is
// decoded into the typed request. Content is trimmed; the caller validates.
func decodeMessageRequest(body []byte) (postMessageRequest, error) {
	var req postMessageRequest

	if len(bytes.TrimSpace(body)) == 0 {
		return req, &RequestError{Message: "request body is required"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, &RequestError{Message: "request body must be a JSON object"}
		}
		return req, &RequestError{Message: "malformed JSON"}
	}
	if fields == nil {
		return req, &RequestError{Message: "request body must be a JSON object"}
	}

	if err := normalizeLegacySender(fields); err != nil {
		return req, err
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		return req, &RequestError{Message: "malformed JSON"}
	}
	if err := json.Unmarshal(normalized, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, invalidField(typeErr.Field, fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type))
		}
		return req, &RequestError{Message: "malformed JSON"}
	}

	req.Content = strings.TrimSpace(req.Content)
	return req, nil
}
