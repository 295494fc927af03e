package board

import "noteboard/internal/model"

// CardView is a card plus its display flags.
type CardView struct {
	model.Card
	CanToggle bool
}

type ColumnView struct {
	Title      string
	Cards      []CardView
	CanAddCard bool
}

// View is a read-only projection of the board for the presentation layer.
type View struct {
	Columns    []ColumnView
	NextCardID int
	Query      string
}

// View projects the board through query. Column admission ignores the caps
// while a query is active only when IgnoreCapWhileFiltering is set.
func (m *Manager) View(query string) View {
	m.mu.Lock()
	defer m.mu.Unlock()

	filtering := query != "" && m.opts.IgnoreCapWhileFiltering
	inProgress := m.count(model.ColumnInProgress)

	v := View{
		Columns:    make([]ColumnView, len(m.board.Columns)),
		NextCardID: m.board.NextCardID,
		Query:      query,
	}
	for c, col := range m.board.Columns {
		cards := Filter(col.Clone().Cards, query)
		views := make([]CardView, len(cards))
		for i, card := range cards {
			views[i] = CardView{Card: card, CanToggle: canToggle(c, inProgress)}
		}
		v.Columns[c] = ColumnView{
			Title:      col.Title,
			Cards:      views,
			CanAddCard: canAddCard(c, len(col.Cards), filtering),
		}
	}
	return v
}
