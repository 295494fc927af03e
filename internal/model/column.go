package model

type Column struct {
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

func (c Column) Clone() Column {
	cards := make([]Card, len(c.Cards))
	for i, card := range c.Cards {
		cards[i] = card.Clone()
	}
	return Column{Title: c.Title, Cards: cards}
}
