package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/api/metrics"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type createSessionRequest struct {
	SenderID string `json:"sender_id" validate:"required"`
	Title    string `json:"title" validate:"max=255"`
}

type sessionView struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

func toSessionView(s *domain.Session) sessionView {
	return sessionView{
		ID:        s.ID,
		SessionID: s.SessionID,
		UserID:    s.UserID,
		Title:     s.Title,
		CreatedAt: formatTimestamp(s.CreatedAt),
	}
}

// Create handles POST /api/sessions.
//
// @Summary      Open a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      createSessionRequest  true  "Session"
// @Success      201   {object}  envelope{data=sessionView}
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return &RequestError{Message: "invalid payload"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.service.CreateSession(c.Request().Context(), req.SenderID, req.Title)
	if err != nil {
		return err
	}
	metrics.SessionsCreatedTotal.WithLabelValues("api").Inc()
	return c.JSON(http.StatusCreated, success(toSessionView(session)))
}

// Get handles GET /api/sessions/:session_id.
//
// @Summary      Get a session by public id
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Public session id"
// @Success      200         {object}  envelope{data=sessionView}
// @Failure      404         {object}  ErrorResponse
// @Router       /api/sessions/{session_id} [get]
func (h *SessionHandler) Get(c echo.Context) error {
	session, err := h.service.GetSession(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(toSessionView(session)))
}
