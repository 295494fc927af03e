package handler

import (
	"noteboard/internal/board"
	"noteboard/internal/model"
)

type ItemResponse struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type CardResponse struct {
	ID            int            `json:"id"`
	Title         string         `json:"title"`
	Color         string         `json:"color"`
	Items         []ItemResponse `json:"items"`
	CompletedDate *string        `json:"completed_date,omitempty"`
}

// BoardCardResponse is a card as listed in the board view.
type BoardCardResponse struct {
	CardResponse
	CanToggle bool `json:"can_toggle"`
}

type ColumnResponse struct {
	Index      int                 `json:"index"`
	Title      string              `json:"title"`
	CanAddCard bool                `json:"can_add_card"`
	Cards      []BoardCardResponse `json:"cards"`
}

type BoardResponse struct {
	Columns    []ColumnResponse `json:"columns"`
	NextCardID int              `json:"next_card_id"`
	Query      string           `json:"query,omitempty"`
}

// MutationResponse reports the outcome of a board change. Applied is false
// when the change was ignored; Warning is set when it was applied but not
// saved.
type MutationResponse struct {
	Applied bool          `json:"applied"`
	Card    *CardResponse `json:"card,omitempty"`
	Warning string        `json:"warning,omitempty"`
}

func toCardResponse(card model.Card) CardResponse {
	items := make([]ItemResponse, len(card.Items))
	for i, item := range card.Items {
		items[i] = ItemResponse{Text: item.Text, Completed: item.Completed}
	}
	resp := CardResponse{
		ID:    card.ID,
		Title: card.Title,
		Color: card.Color,
		Items: items,
	}
	if card.CompletedDate != nil {
		completed := card.CompletedDate.String()
		resp.CompletedDate = &completed
	}
	return resp
}

func toBoardResponse(v board.View) BoardResponse {
	columns := make([]ColumnResponse, len(v.Columns))
	for i, col := range v.Columns {
		cards := make([]BoardCardResponse, len(col.Cards))
		for j, card := range col.Cards {
			cards[j] = BoardCardResponse{
				CardResponse: toCardResponse(card.Card),
				CanToggle:    card.CanToggle,
			}
		}
		columns[i] = ColumnResponse{
			Index:      i,
			Title:      col.Title,
			CanAddCard: col.CanAddCard,
			Cards:      cards,
		}
	}
	return BoardResponse{
		Columns:    columns,
		NextCardID: v.NextCardID,
		Query:      v.Query,
	}
}
