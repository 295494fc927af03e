package model

// Column indexes in their fixed board order.
const (
	ColumnTodo = iota
	ColumnInProgress
	ColumnDone

	ColumnCount
)

// ColumnTitles are the fixed column names, in order.
var ColumnTitles = [ColumnCount]string{"Column 1", "Column 2", "Column 3"}

// Board is the whole note board snapshot as it is stored and restored.
type Board struct {
	Columns    []Column `json:"columns"`
	NextCardID int      `json:"nextCardId"`
}

// NewBoard returns the default board: three empty columns and counter 1.
func NewBoard() *Board {
	b := &Board{
		Columns:    make([]Column, ColumnCount),
		NextCardID: 1,
	}
	for i, title := range ColumnTitles {
		b.Columns[i] = Column{Title: title, Cards: []Card{}}
	}
	return b
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{
		Columns:    make([]Column, len(b.Columns)),
		NextCardID: b.NextCardID,
	}
	for i, col := range b.Columns {
		out.Columns[i] = col.Clone()
	}
	return out
}
