package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

var errStoreDown = errors.New("store unavailable")

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	var n atomic.Int64
	return func() time.Time {
		return start.Add(time.Duration(n.Add(1)) * time.Second)
	}
}

// seqIDs returns a generator producing prefix-1, prefix-2, ...
func seqIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

func newStores() ports.Stores {
	return memory.NewStores()
}

func mustSender(stores ports.Stores, id string) *domain.Sender {
	s, err := stores.Senders.Create(context.Background(), &domain.Sender{
		Record:   domain.Record{ID: id},
		IsActive: true,
		Type:     domain.SenderUser,
	})
	if err != nil {
		panic(err)
	}
	return s
}

func mustBannedWord(stores ports.Stores, word string) {
	if _, err := stores.BannedWords.Create(context.Background(), &domain.BannedWord{Word: word}); err != nil {
		panic(err)
	}
}

func countSessions(stores ports.Stores) int {
	all, _ := stores.Sessions.List(context.Background())
	return len(all)
}

func countMessages(stores ports.Stores) int {
	all, _ := stores.Messages.List(context.Background())
	return len(all)
}

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// failingMessages wraps a real repository and fails the chosen calls.
type failingMessages struct {
	ports.MessageRepository
	createErr error
	listErr   error
}

func (f *failingMessages) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.MessageRepository.Create(ctx, m)
}

func (f *failingMessages) List(ctx context.Context) (map[string]*domain.Message, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.MessageRepository.List(ctx)
}

type stubIdempotency struct {
	keys      map[string]string
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string)}
}

func (s *stubIdempotency) Lookup(_ context.Context, key string) (string, bool, error) {
	if s.lookupErr != nil {
		return "", false, s.lookupErr
	}
	id, ok := s.keys[key]
	return id, ok, nil
}

func (s *stubIdempotency) Remember(_ context.Context, key, messageID string) error {
	s.keys[key] = messageID
	return nil
}

type stubCache struct {
	words       []string
	hit         bool
	readErr     error
	genErr      error
	generation  int64
	sets        int
	staleSets   int
	invalidated int
}

func (c *stubCache) Words(context.Context) ([]string, bool, error) {
	if c.readErr != nil {
		return nil, false, c.readErr
	}
	return c.words, c.hit, nil
}

func (c *stubCache) Generation(context.Context) (int64, error) {
	if c.genErr != nil {
		return 0, c.genErr
	}
	return c.generation, nil
}

func (c *stubCache) SetWords(_ context.Context, words []string, generation int64) error {
	if generation != c.generation {
		c.staleSets++
		return nil
	}
	c.sets++
	c.words = words
	c.hit = true
	return nil
}

func (c *stubCache) Invalidate(context.Context) error {
	c.invalidated++
	c.generation++
	c.words = nil
	c.hit = false
	return nil
}

// listHook runs afterList once, right after the wrapped repository has
// produced its snapshot.
type listHook struct {
	ports.BannedWordRepository
	afterList func()
}

func (h *listHook) List(ctx context.Context) (map[string]*domain.BannedWord, error) {
	rows, err := h.BannedWordRepository.List(ctx)
	if h.afterList != nil {
		fn := h.afterList
		h.afterList = nil
		fn()
	}
	return rows, err
}
