package ports

import (
	"context"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

// EntityStore is the keyed-record contract every persisted kind shares.
// Each call is atomic and durable once it returns; there are no
// cross-entity transactions, so callers enforce composite invariants
// before calling Create.
type EntityStore[T any] interface {
	// Create assigns the id and created_at when absent, refreshes updated_at
	// and persists the whole entity.
	Create(ctx context.Context, entity *T) (*T, error)
	// Get returns domain.ErrRecordNotFound when no record has the id.
	Get(ctx context.Context, id string) (*T, error)
	// List returns every record keyed by id. Order is irrelevant.
	List(ctx context.Context) (map[string]*T, error)
	// Delete returns domain.ErrRecordNotFound when no record has the id.
	Delete(ctx context.Context, id string) error
}

// SenderRepository persists senders.
type SenderRepository interface {
	EntityStore[domain.Sender]
	FindByEmail(ctx context.Context, email string) (*domain.Sender, error)
}

// SessionLookup resolves a session by its public identifier. Matching is
// exact: no prefix or fuzzy matching.
type SessionLookup interface {
	FindByPublicID(ctx context.Context, publicID string) (*domain.Session, error)
}

// SessionRepository persists sessions.
type SessionRepository interface {
	EntityStore[domain.Session]
	SessionLookup
}

// MessageRepository persists messages.
type MessageRepository interface {
	EntityStore[domain.Message]
}

// BannedWordRepository persists the moderation word list.
type BannedWordRepository interface {
	EntityStore[domain.BannedWord]
	FindByWord(ctx context.Context, word string) (*domain.BannedWord, error)
}

// Stores bundles the repositories built once at process start.
type Stores struct {
	Senders     SenderRepository
	Sessions    SessionRepository
	Messages    MessageRepository
	BannedWords BannedWordRepository
}
