package ports

import "context"

// BannedWordCache holds a copy of the banned word set. ok is false on a miss.
//
// Every Invalidate bumps the generation. A reader takes the generation before
// loading the store and hands it to SetWords, which stores nothing when the
// generation has moved since, so a list read before a write never outlives it.
type BannedWordCache interface {
	Words(ctx context.Context) (words []string, ok bool, err error)
	Generation(ctx context.Context) (int64, error)
	SetWords(ctx context.Context, words []string, generation int64) error
	Invalidate(ctx context.Context) error
}

// IdempotencyStore remembers which message a client-supplied key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (messageID string, ok bool, err error)
	Remember(ctx context.Context, key, messageID string) error
}
