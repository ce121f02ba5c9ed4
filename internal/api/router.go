package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/api/handler"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/api/middleware"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

const defaultBodyLimit = "1M"

// Deps carries everything the router needs. Registerer and Gatherer default
// to a private registry, which keeps repeated construction in tests safe.
type Deps struct {
	Messages   ports.MessageService
	Sessions   ports.SessionService
	Senders    ports.SenderService
	Moderation ports.ModerationService
	Checks     []handler.DependencyCheck

	Log         zerolog.Logger
	BodyLimit   string
	SlowRequest time.Duration
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	if d.Registerer == nil || d.Gatherer == nil {
		reg := prometheus.NewRegistry()
		d.Registerer, d.Gatherer = reg, reg
	}
	bodyLimit := d.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log, d.SlowRequest))
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: d.Registerer,
	}))

	// --- Handlers ---
	messageHandler := handler.NewMessageHandler(d.Messages, d.Sessions)
	sessionHandler := handler.NewSessionHandler(d.Sessions)
	senderHandler := handler.NewSenderHandler(d.Senders)
	bannedWordHandler := handler.NewBannedWordHandler(d.Moderation)

	// --- API routes ---
	g := e.Group("/api")

	g.POST("/messages", messageHandler.Create)
	g.GET("/messages/:session_id", messageHandler.List)
	g.DELETE("/messages/:session_id/:message_id", messageHandler.Delete)

	g.POST("/sessions", sessionHandler.Create)
	g.GET("/sessions/:session_id", sessionHandler.Get)

	g.POST("/senders", senderHandler.Register)
	g.GET("/senders/:id", senderHandler.Get)
	g.DELETE("/senders/:id", senderHandler.Delete)

	g.GET("/banned-words", bannedWordHandler.List)
	g.POST("/banned-words", bannedWordHandler.Add)
	g.DELETE("/banned-words/:id", bannedWordHandler.Remove)

	// --- Operational routes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks...)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
