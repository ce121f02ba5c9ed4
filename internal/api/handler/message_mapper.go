package handler

import (
	"time"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

// formatTimestamp renders t as RFC 3339 in UTC, always ending in "Z".
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func toMessageView(msg *domain.Message, sessionID string, req postMessageRequest) (messageView, error) {
	metadata, err := msg.Metadata()
	if err != nil {
		return messageView{}, err
	}

	var sender *string
	switch {
	case msg.SenderID != "":
		sender = &msg.SenderID
	case req.SenderType != "":
		sender = &req.SenderType
	}

	return messageView{
		MessageID: msg.MessageID,
		SessionID: sessionID,
		Content:   msg.Content,
		Timestamp: formatTimestamp(msg.Timestamp),
		Sender:    sender,
		Metadata:  metadata,
	}, nil
}

func toMessageListItems(msgs []*domain.Message) ([]messageListItem, error) {
	items := make([]messageListItem, 0, len(msgs))
	for _, m := range msgs {
		metadata, err := m.Metadata()
		if err != nil {
			return nil, err
		}
		items = append(items, messageListItem{
			MessageID: m.MessageID,
			SessionID: m.SessionID,
			Content:   m.Content,
			Timestamp: formatTimestamp(m.Timestamp),
			SenderID:  m.SenderID,
			Metadata:  metadata,
		})
	}
	return items, nil
}
