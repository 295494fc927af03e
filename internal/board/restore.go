package board

import "noteboard/internal/model"

// restore checks a loaded snapshot and fills in what a partial record lacks.
// It reports false when the record cannot be used at all.
func restore(b *model.Board) (*model.Board, bool) {
	if b == nil || len(b.Columns) != model.ColumnCount {
		return nil, false
	}

	maxID := 0
	for i := range b.Columns {
		col := &b.Columns[i]
		col.Title = model.ColumnTitles[i]
		if col.Cards == nil {
			col.Cards = []model.Card{}
		}
		for j := range col.Cards {
			card := &col.Cards[j]
			if card.Items == nil {
				card.Items = []model.Item{}
			}
			if card.ID > maxID {
				maxID = card.ID
			}
		}
	}

	// ids are never reused, even when the stored counter lags behind
	if b.NextCardID <= maxID {
		b.NextCardID = maxID + 1
	}
	if b.NextCardID < 1 {
		b.NextCardID = 1
	}

	// cards that lost their id, or share one, get a fresh id
	seen := make(map[int]bool)
	for i := range b.Columns {
		for j := range b.Columns[i].Cards {
			card := &b.Columns[i].Cards[j]
			if card.ID <= 0 || seen[card.ID] {
				card.ID = b.NextCardID
				b.NextCardID++
			}
			seen[card.ID] = true
		}
	}
	return b, true
}
