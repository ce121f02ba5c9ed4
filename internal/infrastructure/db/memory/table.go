// Package memory is a process-local implementation of the entity store. It
// backs tests and STORE_DRIVER=memory; nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

type record[T any] interface {
	*T
	Base() *domain.Record
}

// table is one keyed collection. Rows are stored by value and copied on the
// way in and out so callers never share memory with the store.
type table[T any, P record[T]] struct {
	mu       sync.RWMutex
	rows     map[string]T
	now      func() time.Time
	newID    func() string
	conflict error
	// sameKey reports whether two rows collide on a secondary unique key.
	sameKey func(a, b P) bool
}

func newTable[T any, P record[T]](conflict error, sameKey func(a, b P) bool, o options) *table[T, P] {
	return &table[T, P]{
		rows:     make(map[string]T),
		now:      o.now,
		newID:    o.newID,
		conflict: conflict,
		sameKey:  sameKey,
	}
}

func (t *table[T, P]) Create(_ context.Context, entity *T) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// The caller's entity is only updated once the row is stored.
	row := *entity
	P(&row).Base().Stamp(t.newID, t.now())
	id := P(&row).Base().ID
	if _, exists := t.rows[id]; exists {
		return nil, t.conflict
	}
	if t.sameKey != nil {
		for _, other := range t.rows {
			if t.sameKey(P(&other), P(&row)) {
				return nil, t.conflict
			}
		}
	}

	t.rows[id] = row
	*entity = row
	out := row
	return &out, nil
}

func (t *table[T, P]) Get(_ context.Context, id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &row, nil
}

func (t *table[T, P]) List(_ context.Context) (map[string]*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]*T, len(t.rows))
	for id, row := range t.rows {
		row := row
		out[id] = &row
	}
	return out, nil
}

func (t *table[T, P]) Delete(_ context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(t.rows, id)
	return nil
}

// find returns a copy of the first row matching pred.
func (t *table[T, P]) find(pred func(P) bool) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, row := range t.rows {
		if pred(P(&row)) {
			return &row, true
		}
	}
	return nil, false
}

type options struct {
	now   func() time.Time
	newID func() string
}

// Option customises a store.
type Option func(*options)

// WithClock replaces the clock used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the record id generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func buildOptions(opts []Option) options {
	o := options{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
