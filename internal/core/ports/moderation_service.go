package ports

import (
	"context"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

// ContentFilter decides whether text may be stored.
type ContentFilter interface {
	ContainsBanned(ctx context.Context, text string) (bool, error)
}

// ModerationService adds administration of the banned word list.
type ModerationService interface {
	ContentFilter
	AddWord(ctx context.Context, word string) (*domain.BannedWord, error)
	RemoveWord(ctx context.Context, id string) error
	ListWords(ctx context.Context) ([]*domain.BannedWord, error)
}
