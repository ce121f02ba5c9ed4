package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, "chat_api", cfg.Mongo.Database)
	assert.Empty(t, cfg.Redis.Addr, "redis is opt-in")
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, 5*time.Minute, cfg.Moderation.CacheTTL)
	assert.False(t, cfg.SeedDemo)
	assert.False(t, cfg.Production())
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":                    "production",
		"STORE_DRIVER":           "memory",
		"REDIS_ADDR":             "redis:6379",
		"BANNED_WORDS_CACHE_TTL": "30s",
		"SEED_DEMO_DATA":         "true",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Moderation.CacheTTL)
	assert.True(t, cfg.SeedDemo)
}

func TestLoadWith_Invalid(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"STORE_DRIVER": "sqlite"}))
	assert.Error(t, err)

	_, err = LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"BCRYPT_COST": "2"}))
	assert.Error(t, err)

	_, err = LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"IDEMPOTENCY_TTL": "soon"}))
	assert.Error(t, err)
}
