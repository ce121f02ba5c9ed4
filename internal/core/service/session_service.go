package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

type sessionService struct {
	senders  ports.SenderRepository
	sessions ports.SessionRepository
	log      zerolog.Logger
	newID    func() string
}

func NewSessionService(senders ports.SenderRepository, sessions ports.SessionRepository, log zerolog.Logger, opts ...Option) ports.SessionService {
	o := buildOptions(opts)
	return &sessionService{senders: senders, sessions: sessions, log: log, newID: o.newID}
}

func (s *sessionService) CreateSession(ctx context.Context, senderID, title string) (*domain.Session, error) {
	if _, err := s.senders.Get(ctx, senderID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("create session: %w", domain.ErrSenderNotFound)
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	session, err := openSession(ctx, s.sessions, senderID, title, s.newID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.log.Info().Str("session_id", session.SessionID).Str("sender_id", senderID).Msg("session created")
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, publicID string) (*domain.Session, error) {
	session, err := s.sessions.FindByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("get session: %w", domain.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// openSession persists a new session owned by senderID. The caller has
// already confirmed the sender exists.
func openSession(ctx context.Context, repo ports.SessionRepository, senderID, title string, newID func() string) (*domain.Session, error) {
	return repo.Create(ctx, &domain.Session{
		SessionID: newID(),
		UserID:    senderID,
		Title:     title,
	})
}
