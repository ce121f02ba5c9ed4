package memory

import (
	"context"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

type SenderStore struct {
	*table[domain.Sender, *domain.Sender]
}

func (s *SenderStore) FindByEmail(_ context.Context, email string) (*domain.Sender, error) {
	row, ok := s.find(func(x *domain.Sender) bool { return x.Email != "" && x.Email == email })
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return row, nil
}

type SessionStore struct {
	*table[domain.Session, *domain.Session]
}

// FindByPublicID scans every session for an exact public id match.
func (s *SessionStore) FindByPublicID(_ context.Context, publicID string) (*domain.Session, error) {
	row, ok := s.find(func(x *domain.Session) bool { return x.SessionID == publicID })
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return row, nil
}

type MessageStore struct {
	*table[domain.Message, *domain.Message]
}

type BannedWordStore struct {
	*table[domain.BannedWord, *domain.BannedWord]
}

func (s *BannedWordStore) FindByWord(_ context.Context, word string) (*domain.BannedWord, error) {
	row, ok := s.find(func(x *domain.BannedWord) bool { return x.Word == word })
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return row, nil
}

// NewStores builds an empty in-memory store for every entity kind.
func NewStores(opts ...Option) ports.Stores {
	o := buildOptions(opts)
	return ports.Stores{
		Senders: &SenderStore{newTable(domain.ErrSenderExists, func(a, b *domain.Sender) bool {
			return a.Email != "" && a.Email == b.Email
		}, o)},
		Sessions: &SessionStore{newTable(domain.ErrSessionExists, func(a, b *domain.Session) bool {
			return a.SessionID == b.SessionID
		}, o)},
		Messages: &MessageStore{newTable(domain.ErrMessageExists, func(a, b *domain.Message) bool {
			return a.MessageID == b.MessageID
		}, o)},
		BannedWords: &BannedWordStore{newTable(domain.ErrBannedWordExists, func(a, b *domain.BannedWord) bool {
			return a.Word == b.Word
		}, o)},
	}
}
