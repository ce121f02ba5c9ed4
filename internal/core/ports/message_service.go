package ports

import (
	"context"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

// CreateMessageInput is the DTO passed from the transport layer to the
// ingestion pipeline. SessionID empty means "start a new session".
type CreateMessageInput struct {
	SenderID       string
	SenderType     string
	Content        string
	SessionID      string
	IdempotencyKey string
}

// MessageResult is returned by CreateMessage.
type MessageResult struct {
	Message   *domain.Message
	SessionID string
	// Replayed is true when the Idempotency-Key matched an earlier message.
	Replayed bool
}

// ListMessagesInput carries the query parameters for a session's history.
type ListMessagesInput struct {
	SessionID string
	Limit     int
	Offset    int
	// Sender restricts results to messages whose sender id equals it exactly.
	Sender string
}

const (
	DefaultListLimit  = 50
	DefaultListOffset = 0
)

// MessageService defines the message use cases.
type MessageService interface {
	CreateMessage(ctx context.Context, in CreateMessageInput) (*MessageResult, error)
	ListMessages(ctx context.Context, in ListMessagesInput) ([]*domain.Message, error)
	DeleteMessage(ctx context.Context, sessionID, messageID string) error
}
