package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// DefaultSlowRequest is the latency above which a successful request is
// logged at warn level.
const DefaultSlowRequest = 500 * time.Millisecond

// RequestLogger writes one zerolog event per request. Server errors log at
// error, client errors and slow requests at warn, everything else at debug.
func RequestLogger(log zerolog.Logger, slow time.Duration) echo.MiddlewareFunc {
	if slow <= 0 {
		slow = DefaultSlowRequest
	}

	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			var ev *zerolog.Event
			switch {
			case v.Status >= 500:
				ev = log.Error().Err(v.Error)
			case v.Status >= 400:
				ev = log.Warn()
			case v.Latency > slow:
				ev = log.Warn().Bool("slow", true)
			default:
				ev = log.Debug()
			}

			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
