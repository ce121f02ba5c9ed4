package ports

import (
	"context"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

type SessionService interface {
	// CreateSession opens a session for an existing sender.
	CreateSession(ctx context.Context, senderID, title string) (*domain.Session, error)
	// GetSession resolves a session by its public identifier.
	GetSession(ctx context.Context, publicID string) (*domain.Session, error)
}
