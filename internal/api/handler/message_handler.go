package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/api/metrics"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

const statusSuccess = "success"

// MessageHandler handles HTTP requests for chat messages.
type MessageHandler struct {
	messages ports.MessageService
	sessions ports.SessionService
}

func NewMessageHandler(messages ports.MessageService, sessions ports.SessionService) *MessageHandler {
	return &MessageHandler{messages: messages, sessions: sessions}
}

// Create handles POST /api/messages.
//
// @Summary      Post a chat message
// @Description  Stores a message in an existing session, or opens a new session when session_id is omitted.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Replays the original message when repeated"
// @Param        body             body      postMessageRequest  true   "Message"
// @Success      201              {object}  createMessageResponse
// @Failure      400              {object}  ErrorResponse
// @Failure      403              {object}  ErrorResponse
// @Failure      404              {object}  ErrorResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	start := time.Now()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// The body limit middleware surfaces oversize bodies as *echo.HTTPError.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return &RequestError{Message: "could not read request body"}
	}

	req, err := decodeMessageRequest(body)
	if err != nil {
		metrics.MessagesRejectedTotal.WithLabelValues("invalid").Inc()
		return err
	}
	if err := c.Validate(&req); err != nil {
		metrics.MessagesRejectedTotal.WithLabelValues("invalid").Inc()
		return err
	}

	result, err := h.messages.CreateMessage(c.Request().Context(), ports.CreateMessageInput{
		SenderID:       req.SenderID,
		SenderType:     req.SenderType,
		Content:        req.Content,
		SessionID:      req.SessionID,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		metrics.MessageIngestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		if reason := rejectionReason(err); reason != "" {
			metrics.MessagesRejectedTotal.WithLabelValues(reason).Inc()
		}
		return err
	}

	view, err := toMessageView(result.Message, result.SessionID, req)
	if err != nil {
		return err
	}

	switch {
	case result.Replayed:
		metrics.MessagesReplayedTotal.Inc()
		metrics.MessageIngestDuration.WithLabelValues("replayed").Observe(time.Since(start).Seconds())
	case req.SessionID == "":
		metrics.SessionsCreatedTotal.WithLabelValues("message").Inc()
		metrics.MessagesCreatedTotal.WithLabelValues("new").Inc()
		metrics.MessageIngestDuration.WithLabelValues("created").Observe(time.Since(start).Seconds())
	default:
		metrics.MessagesCreatedTotal.WithLabelValues("existing").Inc()
		metrics.MessageIngestDuration.WithLabelValues("created").Observe(time.Since(start).Seconds())
	}

	return c.JSON(http.StatusCreated, createMessageResponse{Status: statusSuccess, Data: view})
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrContentForbidden):
		return "banned_content"
	case errors.Is(err, domain.ErrSenderNotFound):
		return "sender_not_found"
	case errors.Is(err, domain.ErrSessionNotFound):
		return "session_not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	}
	return ""
}

// List handles GET /api/messages/:session_id.
//
// @Summary      List a session's messages
// @Description  Oldest first. offset messages are skipped, then up to limit are returned.
// @Tags         messages
// @Produce      json
// @Param        session_id  path      string  true   "Public session id"
// @Param        limit       query     int     false  "Maximum number of messages (default 50)"
// @Param        offset      query     int     false  "Number of messages to skip (default 0)"
// @Param        sender      query     string  false  "Exact sender id"
// @Success      200         {object}  listMessagesResponse
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Failure      500         {object}  ErrorResponse
// @Router       /api/messages/{session_id} [get]
func (h *MessageHandler) List(c echo.Context) error {
	in := ports.ListMessagesInput{
		SessionID: c.Param("session_id"),
		Limit:     ports.DefaultListLimit,
		Offset:    ports.DefaultListOffset,
	}
	if err := bindListQuery(c, &in); err != nil {
		return err
	}

	if _, err := h.sessions.GetSession(c.Request().Context(), in.SessionID); err != nil {
		return err
	}

	msgs, err := h.messages.ListMessages(c.Request().Context(), in)
	if err != nil {
		return err
	}

	items, err := toMessageListItems(msgs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listMessagesResponse{Status: statusSuccess, Data: items})
}

func bindListQuery(c echo.Context, in *ports.ListMessagesInput) error {
	err := echo.QueryParamsBinder(c).
		Int("limit", &in.Limit).
		Int("offset", &in.Offset).
		String("sender", &in.Sender).
		BindError()
	if err != nil {
		var be *echo.BindingError
		if errors.As(err, &be) {
			return invalidField(be.Field, be.Field+" must be an integer")
		}
		return &RequestError{Message: "invalid query parameters"}
	}

	if in.Limit < 0 {
		return invalidField("limit", "limit must be a non-negative integer")
	}
	if in.Offset < 0 {
		return invalidField("offset", "offset must be a non-negative integer")
	}
	return nil
}

// Delete handles DELETE /api/messages/:session_id/:message_id.
//
// @Summary      Delete a message
// @Tags         messages
// @Param        session_id  path  string  true  "Public session id"
// @Param        message_id  path  string  true  "Public message id"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/messages/{session_id}/{message_id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.messages.DeleteMessage(c.Request().Context(), c.Param("session_id"), c.Param("message_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
