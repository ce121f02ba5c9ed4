package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/api/handler"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps request and domain errors to their HTTP status and envelope code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders {"status":"error","error":{"code","message","details"}}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	var reqErr *handler.RequestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest, handler.NewErrorResponse(handler.CodeInvalidRequest, reqErr.Message, reqErr.Fields)
	}

	// Echo's own errors (router 404/405, body limit, bind failures, recovered panics).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return resolveHTTPError(he, log, c)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, handler.NewErrorResponse(handler.CodeInvalidRequest, "invalid request", nil)
	case errors.Is(err, domain.ErrSenderNotFound):
		return notFound("sender not found")
	case errors.Is(err, domain.ErrSessionNotFound):
		return notFound("session not found")
	case errors.Is(err, domain.ErrMessageNotFound):
		return notFound("message not found")
	case errors.Is(err, domain.ErrBannedWordNotFound):
		return notFound("banned word not found")
	case errors.Is(err, domain.ErrContentForbidden):
		return http.StatusForbidden, handler.NewErrorResponse(handler.CodeForbidden, "content contains banned words", nil)
	case errors.Is(err, domain.ErrSenderExists):
		return http.StatusConflict, handler.NewErrorResponse(handler.CodeConflict, "sender already exists", nil)
	case errors.Is(err, domain.ErrBannedWordExists):
		return http.StatusConflict, handler.NewErrorResponse(handler.CodeConflict, "banned word already exists", nil)
	}

	return serverError(err, log, c)
}

func resolveHTTPError(he *echo.HTTPError, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	msg := fmt.Sprintf("%v", he.Message)
	switch {
	case he.Code == http.StatusNotFound:
		return notFound("resource not found")
	case he.Code == http.StatusMethodNotAllowed:
		return he.Code, handler.NewErrorResponse(handler.CodeMethodNotAllowed, "method not allowed", nil)
	case he.Code >= http.StatusInternalServerError:
		return serverError(he, log, c)
	default:
		return he.Code, handler.NewErrorResponse(handler.CodeInvalidRequest, msg, nil)
	}
}

func notFound(msg string) (int, handler.ErrorResponse) {
	return http.StatusNotFound, handler.NewErrorResponse(handler.CodeNotFound, msg, nil)
}

// serverError logs the real cause and returns a generic message.
func serverError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.NewErrorResponse(handler.CodeServerError, "internal server error", nil)
}
