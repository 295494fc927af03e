package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"noteboard/internal/board"
	"noteboard/internal/model"
)

const saveWarning = "Changes were applied but could not be saved"

// BoardService is the board state the handlers drive.
type BoardService interface {
	View(query string) board.View
	AddCard(ctx context.Context, column int) (*model.Card, error)
	RemoveCard(ctx context.Context, id int) (bool, error)
	AddItem(ctx context.Context, cardID int, text string) (*model.Card, error)
	ToggleItem(ctx context.Context, cardID, index int) (*model.Card, error)
	UpdateItem(ctx context.Context, cardID, index int, u board.ItemUpdate) (*model.Card, error)
	UpdateCard(ctx context.Context, cardID int, u board.CardUpdate) (*model.Card, error)
}

var _ BoardService = (*board.Manager)(nil)

type BoardHandler struct {
	board  BoardService
	logger *log.Logger
}

func NewBoardHandler(svc BoardService, logger *log.Logger) *BoardHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &BoardHandler{board: svc, logger: logger}
}

// Get returns the board, filtered by the optional q query parameter
func (h *BoardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toBoardResponse(h.board.View(c.Query("q"))))
}

// AddCard creates a card in the column given by the index path parameter
func (h *BoardHandler) AddCard(c *gin.Context) {
	column, err := strconv.Atoi(c.Param("index"))
	if err != nil || column < 0 || column >= model.ColumnCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column index"})
		return
	}

	card, err := h.board.AddCard(c.Request.Context(), column)
	h.respond(c, http.StatusCreated, card, err)
}

// respond writes the outcome of a card mutation. Ignored mutations answer
// 200 with applied=false.
func (h *BoardHandler) respond(c *gin.Context, status int, card *model.Card, err error) {
	resp := MutationResponse{Applied: card != nil}
	if card != nil {
		cr := toCardResponse(*card)
		resp.Card = &cr
	} else {
		status = http.StatusOK
	}

	if err != nil {
		if !errors.Is(err, board.ErrSaveFailed) {
			h.logger.Error("board mutation failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
			return
		}
		resp.Warning = saveWarning
	}

	c.JSON(status, resp)
}

func parseCardID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return 0, false
	}
	return id, true
}

func parseItemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item index format"})
		return 0, false
	}
	return index, true
}
