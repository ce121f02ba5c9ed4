package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

type messageService struct {
	senders  ports.SenderRepository
	sessions ports.SessionRepository
	messages ports.MessageRepository
	filter   ports.ContentFilter
	idem     ports.IdempotencyStore
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// NewMessageService returns the ingestion pipeline and query service. idem may
// be nil, which disables Idempotency-Key replays.
func NewMessageService(
	stores ports.Stores,
	filter ports.ContentFilter,
	idem ports.IdempotencyStore,
	log zerolog.Logger,
	opts ...Option,
) ports.MessageService {
	o := buildOptions(opts)
	return &messageService{
		senders:  stores.Senders,
		sessions: stores.Sessions,
		messages: stores.Messages,
		filter:   filter,
		idem:     idem,
		log:      log,
		now:      o.now,
		newID:    o.newID,
	}
}

// CreateMessage runs a new message through sender and session resolution,
// moderation and enrichment, then persists it. At most one session and one
// message are created per call.
func (s *messageService) CreateMessage(ctx context.Context, in ports.CreateMessageInput) (*ports.MessageResult, error) {
	if replay := s.replay(ctx, in.SenderID, in.IdempotencyKey); replay != nil {
		return replay, nil
	}

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, fmt.Errorf("create message: %w", domain.ErrInvalidInput)
	}

	// 1. Resolve sender.
	if in.SenderID == "" {
		return nil, fmt.Errorf("create message: %w", domain.ErrSenderNotFound)
	}
	if _, err := s.senders.Get(ctx, in.SenderID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("create message: %w", domain.ErrSenderNotFound)
		}
		return nil, fmt.Errorf("create message: resolve sender: %w", err)
	}

	// 2. Resolve or open the session.
	sessionID, err := s.resolveSession(ctx, in.SenderID, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	// 3. Moderation happens before anything about the message is written.
	banned, err := s.filter.ContainsBanned(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	if banned {
		s.log.Info().Str("sender_id", in.SenderID).Str("session_id", sessionID).Msg("message rejected by moderation")
		return nil, fmt.Errorf("create message: %w", domain.ErrContentForbidden)
	}

	// 4. Enrich.
	now := s.now().UTC()
	msg := &domain.Message{
		MessageID: s.newID(),
		SessionID: sessionID,
		SenderID:  in.SenderID,
		Content:   content,
		Timestamp: now,
	}
	if err := msg.SetMetadata(Enrich(content, now)); err != nil {
		return nil, fmt.Errorf("create message: metadata: %w", err)
	}

	// 5. Persist. A failure here is surfaced as is; the caller may retry.
	saved, err := s.messages.Create(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to store message")
		return nil, fmt.Errorf("create message: store: %w", err)
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, idempotencyScope(in.SenderID, in.IdempotencyKey), saved.ID); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("failed to remember idempotency key")
		}
	}

	s.log.Info().
		Str("message_id", saved.MessageID).
		Str("session_id", sessionID).
		Str("sender_id", in.SenderID).
		Msg("message created")

	// 6. Return.
	return &ports.MessageResult{Message: saved, SessionID: sessionID}, nil
}

// idempotencyScope ties a client key to its sender, so two senders reusing a
// key never see each other's messages.
func idempotencyScope(senderID, key string) string {
	return senderID + ":" + key
}

// replay returns the message an earlier post by the same sender with the same
// key produced, or nil when there is none. Lookup failures are logged and
// ignored.
func (s *messageService) replay(ctx context.Context, senderID, key string) *ports.MessageResult {
	if key == "" || senderID == "" || s.idem == nil {
		return nil
	}
	id, ok, err := s.idem.Lookup(ctx, idempotencyScope(senderID, key))
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, processing anyway")
		return nil
	}
	if !ok {
		return nil
	}
	msg, err := s.messages.Get(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("remembered message is gone, processing anyway")
		return nil
	}
	if msg.SenderID != senderID {
		return nil
	}
	s.log.Info().Str("idempotency_key", key).Str("message_id", msg.MessageID).Msg("idempotent replay")
	return &ports.MessageResult{Message: msg, SessionID: msg.SessionID, Replayed: true}
}

func (s *messageService) resolveSession(ctx context.Context, senderID, publicID string) (string, error) {
	if publicID == "" {
		session, err := openSession(ctx, s.sessions, senderID, "", s.newID)
		if err != nil {
			return "", err
		}
		s.log.Debug().Str("session_id", session.SessionID).Str("sender_id", senderID).Msg("session opened")
		return session.SessionID, nil
	}

	session, err := s.sessions.FindByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return session.SessionID, nil
}

// ListMessages returns a session's messages oldest first. The session itself
// is not re-checked; callers confirm it exists.
func (s *messageService) ListMessages(ctx context.Context, in ports.ListMessagesInput) ([]*domain.Message, error) {
	all, err := s.messages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	matched := make([]*domain.Message, 0)
	for _, m := range all {
		if m.SessionID != in.SessionID {
			continue
		}
		if in.Sender != "" && m.SenderID != in.Sender {
			continue
		}
		matched = append(matched, m)
	}

	SortMessages(matched)
	return Paginate(matched, in.Offset, in.Limit), nil
}

// SortMessages orders messages by timestamp ascending. Ties fall back to
// created_at and then the record id so the order is stable across calls.
func SortMessages(msgs []*domain.Message) {
	slices.SortStableFunc(msgs, func(a, b *domain.Message) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// Paginate skips offset items and returns up to limit of the rest. Negative
// values are treated as zero.
func Paginate[T any](items []T, offset, limit int) []T {
	offset = max(offset, 0)
	limit = max(limit, 0)
	if offset >= len(items) || limit == 0 {
		return []T{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

// DeleteMessage removes one message from a session.
func (s *messageService) DeleteMessage(ctx context.Context, sessionID, messageID string) error {
	all, err := s.messages.List(ctx)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	for _, m := range all {
		if m.SessionID != sessionID || m.MessageID != messageID {
			continue
		}
		if err := s.messages.Delete(ctx, m.ID); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return fmt.Errorf("delete message: %w", domain.ErrMessageNotFound)
			}
			return fmt.Errorf("delete message: %w", err)
		}
		s.log.Info().Str("message_id", messageID).Str("session_id", sessionID).Msg("message deleted")
		return nil
	}
	return fmt.Errorf("delete message: %w", domain.ErrMessageNotFound)
}
