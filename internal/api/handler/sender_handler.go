package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

// SenderHandler exposes sender administration.
type SenderHandler struct {
	service ports.SenderService
}

func NewSenderHandler(service ports.SenderService) *SenderHandler {
	return &SenderHandler{service: service}
}

type registerSenderRequest struct {
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"omitempty,min=6"`
	FirstName string `json:"first_name" validate:"max=128"`
	LastName  string `json:"last_name" validate:"max=128"`
	Type      string `json:"type" validate:"omitempty,oneof=user system bot"`
}

type senderView struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Type      string `json:"type"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func toSenderView(s *domain.Sender) senderView {
	return senderView{
		ID:        s.ID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Type:      string(s.Type),
		IsActive:  s.IsActive,
		CreatedAt: formatTimestamp(s.CreatedAt),
	}
}

// Register handles POST /api/senders.
//
// @Summary      Register a sender
// @Tags         senders
// @Accept       json
// @Produce      json
// @Param        body  body      registerSenderRequest  true  "Sender"
// @Success      201   {object}  envelope{data=senderView}
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /api/senders [post]
func (h *SenderHandler) Register(c echo.Context) error {
	var req registerSenderRequest
	if err := c.Bind(&req); err != nil {
		return &RequestError{Message: "invalid payload"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sender, err := h.service.Register(c.Request().Context(), ports.RegisterSenderInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Type:      req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(toSenderView(sender)))
}

// Get handles GET /api/senders/:id.
//
// @Summary      Get a sender
// @Tags         senders
// @Produce      json
// @Param        id   path      string  true  "Sender id"
// @Success      200  {object}  envelope{data=senderView}
// @Failure      404  {object}  ErrorResponse
// @Router       /api/senders/{id} [get]
func (h *SenderHandler) Get(c echo.Context) error {
	sender, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(toSenderView(sender)))
}

// Delete handles DELETE /api/senders/:id.
//
// @Summary      Delete a sender
// @Tags         senders
// @Param        id   path  string  true  "Sender id"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /api/senders/{id} [delete]
func (h *SenderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
