package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"noteboard/internal/board"
)

type UpdateCardRequest struct {
	Title *string `json:"title"`
	Color *string `json:"color"`
}

// UpdateCard edits the title and/or colour of a card in one change
func (h *BoardHandler) UpdateCard(c *gin.Context) {
	id, ok := parseCardID(c)
	if !ok {
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Title == nil && req.Color == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	card, err := h.board.UpdateCard(c.Request.Context(), id, board.CardUpdate{
		Title: req.Title,
		Color: req.Color,
	})
	h.respond(c, http.StatusOK, card, err)
}

// RemoveCard deletes a card by id
func (h *BoardHandler) RemoveCard(c *gin.Context) {
	id, ok := parseCardID(c)
	if !ok {
		return
	}

	removed, err := h.board.RemoveCard(c.Request.Context(), id)
	resp := MutationResponse{Applied: removed}
	if err != nil {
		if !errors.Is(err, board.ErrSaveFailed) {
			h.logger.Error("card removal failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove card"})
			return
		}
		resp.Warning = saveWarning
	}
	c.JSON(http.StatusOK, resp)
}
