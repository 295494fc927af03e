package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noteboard/internal/board"
)

type AddItemRequest struct {
	Text string `json:"text"`
}

type UpdateItemRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// AddItem appends a checklist item to a card
func (h *BoardHandler) AddItem(c *gin.Context) {
	id, ok := parseCardID(c)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card, err := h.board.AddItem(c.Request.Context(), id, req.Text)
	h.respond(c, http.StatusCreated, card, err)
}

// UpdateItem edits the text and/or completed flag of a checklist item
func (h *BoardHandler) UpdateItem(c *gin.Context) {
	id, ok := parseCardID(c)
	if !ok {
		return
	}
	index, ok := parseItemIndex(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Text == nil && req.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	card, err := h.board.UpdateItem(c.Request.Context(), id, index, board.ItemUpdate{
		Text:      req.Text,
		Completed: req.Completed,
	})
	h.respond(c, http.StatusOK, card, err)
}

// ToggleItem flips the completed flag of a checklist item
func (h *BoardHandler) ToggleItem(c *gin.Context) {
	id, ok := parseCardID(c)
	if !ok {
		return
	}
	index, ok := parseItemIndex(c)
	if !ok {
		return
	}

	card, err := h.board.ToggleItem(c.Request.Context(), id, index)
	h.respond(c, http.StatusOK, card, err)
}
