// Package config loads process configuration from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port        string        `env:"PORT,           default=8080"`
	Env         string        `env:"ENV,            default=development"`
	LogLevel    string        `env:"LOG_LEVEL,      default=info"`
	StoreDriver string        `env:"STORE_DRIVER,   default=mongo"`
	BodyLimit   string        `env:"BODY_LIMIT,     default=1M"`
	BcryptCost  int           `env:"BCRYPT_COST,    default=10"`
	SlowRequest time.Duration `env:"SLOW_REQUEST,   default=500ms"`
	SeedDemo    bool          `env:"SEED_DEMO_DATA, default=false"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Moderation ModerationConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=chat_api"`
}

// RedisConfig is optional: an empty address disables the banned word cache
// and Idempotency-Key replays.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type ModerationConfig struct {
	CacheTTL time.Duration `env:"BANNED_WORDS_CACHE_TTL, default=5m"`
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q (want %s or %s)", c.StoreDriver, StoreMongo, StoreMemory)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("config: BCRYPT_COST %d out of range 4..31", c.BcryptCost)
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith is Load with an explicit source, used by tests.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
