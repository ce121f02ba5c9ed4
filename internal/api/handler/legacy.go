package handler

import (
	"encoding/json"
	"strings"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

// normalizeLegacySender rewrites the old single "sender" field. Older clients
// sent either a sender id or a sender type there; an exact, lower-case type
// name becomes sender_type, anything else (including "Bot") sender_id. The field is only honoured when
// neither new field is present. Deleting this function drops the alias.
func normalizeLegacySender(body map[string]json.RawMessage) error {
	raw, ok := body["sender"]
	if !ok {
		return nil
	}
	delete(body, "sender")

	_, hasID := body["sender_id"]
	_, hasType := body["sender_type"]
	if hasID || hasType {
		return nil
	}

	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return invalidField("sender", "sender must be a string")
	}
	if value == nil {
		return nil
	}

	switch domain.SenderType(*value) {
	case domain.SenderUser, domain.SenderSystem, domain.SenderBot:
		body["sender_type"] = raw
		return nil
	}
	if strings.TrimSpace(*value) != "" {
		body["sender_id"] = raw
	}
	return nil
}
