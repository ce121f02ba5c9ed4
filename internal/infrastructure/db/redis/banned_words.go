package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	bannedWordsKey           = "moderation:banned_words"
	bannedWordsGenerationKey = "moderation:banned_words:generation"
	defaultBannedWordsTTL    = 5 * time.Minute
)

// BannedWordCache keeps the moderation word list as one JSON array so an
// empty list can be cached too. A separate counter key tracks invalidations;
// a refill only lands if the counter has not moved since the reader took it.
type BannedWordCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBannedWordCache wraps client. ttl <= 0 uses five minutes.
func NewBannedWordCache(client *redis.Client, ttl time.Duration) *BannedWordCache {
	if ttl <= 0 {
		ttl = defaultBannedWordsTTL
	}
	return &BannedWordCache{client: client, ttl: ttl}
}

// Words returns the cached list. ok is false on a miss.
func (c *BannedWordCache) Words(ctx context.Context) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, bannedWordsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("banned words get: %w", err)
	}

	var words []string
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, false, fmt.Errorf("banned words decode: %w", err)
	}
	return words, true, nil
}

// Generation returns the invalidation counter. A missing key reads as 0.
func (c *BannedWordCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, bannedWordsGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("banned words generation: %w", err)
	}
	return gen, nil
}

// SetWords stores words if the generation still equals generation. A refill
// that lost the race is dropped silently.
func (c *BannedWordCache) SetWords(ctx context.Context, words []string, generation int64) error {
	if words == nil {
		words = []string{}
	}
	raw, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("banned words encode: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, bannedWordsGenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, bannedWordsKey, raw, c.ttl)
			return nil
		})
		return err
	}, bannedWordsGenerationKey)
	if err != nil && !errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("banned words set: %w", err)
	}
	return nil
}

// Invalidate bumps the generation and drops the cached list in one
// transaction; the next read repopulates from the store.
func (c *BannedWordCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, bannedWordsGenerationKey)
		pipe.Del(ctx, bannedWordsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("banned words invalidate: %w", err)
	}
	return nil
}
