package board

import "noteboard/internal/model"

// Creation-time caps. Promotion moves ignore them.
const (
	MaxTodoCards       = 3
	MaxInProgressCards = 5
	MaxItemsPerCard    = 5
)

// canAddCard reports whether a column of the given size admits a new card.
func canAddCard(column, size int, ignoreCapWhileFiltering bool) bool {
	if ignoreCapWhileFiltering {
		return true
	}
	switch column {
	case model.ColumnTodo:
		return size < MaxTodoCards
	case model.ColumnInProgress:
		return size < MaxInProgressCards
	default:
		return true
	}
}

// canToggle reports whether checklist items of a card in column are
// interactive. Once the second column is full, only its own cards stay
// editable.
func canToggle(column, inProgressCount int) bool {
	return column == model.ColumnInProgress || inProgressCount < MaxInProgressCards
}
