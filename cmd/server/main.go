// Command server runs the chat message API.
//
//	@title			Chat Message API
//	@version		1.0
//	@description	Posts chat messages into sender-owned sessions and serves paginated session history.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	_ "github.com/SilvanaJ90/nequibot-assessment-backend/docs"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/api"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/api/handler"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/service"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/infrastructure/db/memory"
	mongodb "github.com/SilvanaJ90/nequibot-assessment-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/SilvanaJ90/nequibot-assessment-backend/internal/infrastructure/db/redis"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/pkg/config"
	"github.com/SilvanaJ90/nequibot-assessment-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.Production(),
		Service: "chat-api",
	})
	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file, using process environment only")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	var (
		stores ports.Stores
		checks []handler.DependencyCheck
	)

	switch cfg.StoreDriver {
	case config.StoreMemory:
		stores = memory.NewStores()
		log.Warn().Msg("using in-memory store, data is lost on restart")
	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		}()
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		stores = mongodb.NewStores(db)
		checks = append(checks, handler.DependencyCheck{Name: "mongo", Check: mongodb.Ping(db)})
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")
	}

	// Redis is optional. The interfaces stay nil when it is not configured.
	var (
		wordCache ports.BannedWordCache
		idem      ports.IdempotencyStore
	)
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer client.Close()
		wordCache = redisdb.NewBannedWordCache(client, cfg.Moderation.CacheTTL)
		idem = redisdb.NewIdempotencyStore(client, cfg.Redis.IdempotencyTTL)
		checks = append(checks, handler.DependencyCheck{Name: "redis", Check: redisdb.Ping(client)})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	} else {
		log.Info().Msg("REDIS_ADDR not set, banned word cache and idempotency keys disabled")
	}

	if cfg.SeedDemo {
		if err := service.SeedDemoData(ctx, stores, logger.Component("seed")); err != nil {
			return err
		}
	}

	moderation := service.NewModerationService(stores.BannedWords, wordCache, logger.Component("moderation"))
	messages := service.NewMessageService(stores, moderation, idem, logger.Component("messages"))
	sessions := service.NewSessionService(stores.Senders, stores.Sessions, logger.Component("sessions"))
	senders := service.NewSenderService(stores.Senders, cfg.BcryptCost, logger.Component("senders"))

	e := api.NewRouter(api.Deps{
		Messages:    messages,
		Sessions:    sessions,
		Senders:     senders,
		Moderation:  moderation,
		Checks:      checks,
		Log:         logger.Component("http"),
		BodyLimit:   cfg.BodyLimit,
		SlowRequest: cfg.SlowRequest,
		Registerer:  prometheus.DefaultRegisterer,
		Gatherer:    prometheus.DefaultGatherer,
	})

	return serve(ctx, e, ":"+cfg.Port, log)
}

// serve blocks until ctx is cancelled or the listener fails, then drains
// in-flight requests.
func serve(ctx context.Context, e *echo.Echo, addr string, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		errCh <- e.Start(addr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
