package board

import (
	"strings"

	"noteboard/internal/model"
)

// Filter returns the cards whose title contains query, ignoring case. Order
// is preserved and an empty query returns cards as is.
func Filter(cards []model.Card, query string) []model.Card {
	if query == "" {
		return cards
	}
	needle := strings.ToLower(query)
	out := make([]model.Card, 0, len(cards))
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.Title), needle) {
			out = append(out, card)
		}
	}
	return out
}
