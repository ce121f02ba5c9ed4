package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

// BannedWordHandler administers the moderation word list.
type BannedWordHandler struct {
	service ports.ModerationService
}

func NewBannedWordHandler(service ports.ModerationService) *BannedWordHandler {
	return &BannedWordHandler{service: service}
}

type addBannedWordRequest struct {
	Word string `json:"word" validate:"required,max=100"`
}

type bannedWordView struct {
	ID        string `json:"id"`
	Word      string `json:"word"`
	CreatedAt string `json:"created_at"`
}

func toBannedWordView(bw *domain.BannedWord) bannedWordView {
	return bannedWordView{ID: bw.ID, Word: bw.Word, CreatedAt: formatTimestamp(bw.CreatedAt)}
}

// List handles GET /api/banned-words.
//
// @Summary      List banned words
// @Tags         moderation
// @Produce      json
// @Success      200  {object}  envelope{data=[]bannedWordView}
// @Router       /api/banned-words [get]
func (h *BannedWordHandler) List(c echo.Context) error {
	words, err := h.service.ListWords(c.Request().Context())
	if err != nil {
		return err
	}
	views := make([]bannedWordView, 0, len(words))
	for _, bw := range words {
		views = append(views, toBannedWordView(bw))
	}
	return c.JSON(http.StatusOK, success(views))
}

// Add handles POST /api/banned-words.
//
// @Summary      Ban a word
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        body  body      addBannedWordRequest  true  "Word"
// @Success      201   {object}  envelope{data=bannedWordView}
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /api/banned-words [post]
func (h *BannedWordHandler) Add(c echo.Context) error {
	var req addBannedWordRequest
	if err := c.Bind(&req); err != nil {
		return &RequestError{Message: "invalid payload"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bw, err := h.service.AddWord(c.Request().Context(), req.Word)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(toBannedWordView(bw)))
}

// Remove handles DELETE /api/banned-words/:id.
//
// @Summary      Unban a word
// @Tags         moderation
// @Param        id   path  string  true  "Banned word id"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /api/banned-words/{id} [delete]
func (h *BannedWordHandler) Remove(c echo.Context) error {
	if err := h.service.RemoveWord(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
