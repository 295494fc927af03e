package board

import "noteboard/internal/model"

// nextColumn returns the column a card should move to after its checklist
// changed, or -1 when it stays. Only one step is taken per evaluation.
func nextColumn(column int, card *model.Card) int {
	total := len(card.Items)
	if total == 0 {
		return -1
	}
	completed := card.CompletedCount()

	switch {
	case column == model.ColumnTodo && 2*completed > total:
		return model.ColumnInProgress
	case column == model.ColumnInProgress && completed == total:
		return model.ColumnDone
	}
	return -1
}
