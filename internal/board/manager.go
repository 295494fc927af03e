package board

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"noteboard/internal/model"
)

const (
	defaultCardColor = "#f9f9f9"
	defaultItemCount = 3
)

// Options toggles the optional board features.
type Options struct {
	// AllowColor enables per-card colour changes.
	AllowColor bool
	// AllowRemove enables card removal.
	AllowRemove bool
	// IgnoreCapWhileFiltering makes column admission report true while a
	// search query is active.
	IgnoreCapWhileFiltering bool
	// Clock stamps completed cards. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultOptions enables every optional feature.
func DefaultOptions() Options {
	return Options{
		AllowColor:              true,
		AllowRemove:             true,
		IgnoreCapWhileFiltering: true,
	}
}

// Manager owns the board state and mirrors it into a Store after every
// mutation.
//
// Mutations that cannot apply (unknown card, blank text, caps reached) are
// silent: they return a nil card and a nil error. A non-nil error means the
// mutation was applied in memory but could not be saved; it wraps
// ErrSaveFailed.
type Manager struct {
	mu     sync.Mutex
	board  *model.Board
	store  Store
	opts   Options
	logger *log.Logger
}

func NewManager(store Store, opts Options, logger *log.Logger) *Manager {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		board:  model.NewBoard(),
		store:  store,
		opts:   opts,
		logger: logger,
	}
}

// Load replaces the in-memory board with the stored snapshot. An absent or
// unusable snapshot yields the default board; Load itself never fails.
func (m *Manager) Load(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.store.Load(ctx)
	switch {
	case err != nil:
		m.logger.Warn("failed to load board, starting empty", "err", err)
		m.board = model.NewBoard()
	case stored == nil:
		m.logger.Info("no stored board, starting empty")
		m.board = model.NewBoard()
	default:
		b, ok := restore(stored)
		if !ok {
			m.logger.Warn("stored board is incomplete, starting empty", "columns", len(stored.Columns))
			b = model.NewBoard()
		}
		m.board = b
	}
}

// Options returns the feature set the manager was built with.
func (m *Manager) Options() Options {
	return m.opts
}

// Snapshot returns a deep copy of the current board.
func (m *Manager) Snapshot() *model.Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.Clone()
}

// AddCard appends a new card with the default checklist to column. It does
// nothing when the column is at its creation cap.
func (m *Manager) AddCard(ctx context.Context, column int) (*model.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if column < 0 || column >= len(m.board.Columns) {
		return nil, nil
	}
	col := &m.board.Columns[column]
	if !canAddCard(column, len(col.Cards), false) {
		return nil, nil
	}

	card := model.Card{
		ID:    m.board.NextCardID,
		Color: defaultCardColor,
		Items: make([]model.Item, 0, MaxItemsPerCard),
	}
	m.board.NextCardID++
	card.Title = fmt.Sprintf("Карточка %d", m.board.NextCardID)
	for i := 1; i <= defaultItemCount; i++ {
		card.Items = append(card.Items, model.Item{Text: fmt.Sprintf("Пункт %d", i)})
	}
	col.Cards = append(col.Cards, card)

	out := card.Clone()
	return &out, m.save(ctx)
}

// RemoveCard deletes the first card with id, scanning columns in order. It
// reports whether a card was removed.
func (m *Manager) RemoveCard(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.opts.AllowRemove {
		return false, nil
	}
	column, idx, ok := m.locate(id)
	if !ok {
		return false, nil
	}
	col := &m.board.Columns[column]
	col.Cards = append(col.Cards[:idx], col.Cards[idx+1:]...)
	return true, m.save(ctx)
}

// AddItem appends an unchecked item to the card. Blank text and full cards
// are ignored.
func (m *Manager) AddItem(ctx context.Context, cardID int, text string) (*model.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	card := m.card(cardID)
	if card == nil || strings.TrimSpace(text) == "" || len(card.Items) >= MaxItemsPerCard {
		return nil, nil
	}
	card.Items = append(card.Items, model.Item{Text: text})
	return m.commit(ctx, cardID)
}

// ToggleItem flips the completed flag of the item at index.
func (m *Manager) ToggleItem(ctx context.Context, cardID, index int) (*model.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.item(cardID, index)
	if item == nil {
		return nil, nil
	}
	item.Completed = !item.Completed
	return m.commit(ctx, cardID)
}

// SetItemCompleted sets the completed flag of the item at index.
func (m *Manager) SetItemCompleted(ctx context.Context, cardID, index int, completed bool) (*model.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.item(cardID, index)
	if item == nil {
		return nil, nil
	}
	item.Completed = completed
	return m.commit(ctx, cardID)
}

// EditItem replaces the text of the item at index.
func (m *Manager) EditItem(ctx context.Context, cardID, index int, text string) (*model.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.item(cardID, index)
	if item == nil {
		return nil, nil
	}
	item.Text = text
	return m.commit(ctx, cardID)
}

func (m *Manager) EditCardTitle(ctx context.Context, cardID int, title string) (*model.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	card := m.card(cardID)
	if card == nil {
		return nil, nil
	}
	card.Title = title
	return m.commit(ctx, cardID)
}

// EditCardColor is a no-op unless colours are enabled.
func (m *Manager) EditCardColor(ctx context.Context, cardID int, color string) (*model.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	card := m.card(cardID)
	if card == nil || !m.opts.AllowColor {
		return nil, nil
	}
	card.Color = color
	return m.commit(ctx, cardID)
}

// CardUpdate holds the card fields to change; nil fields are left alone.
type CardUpdate struct {
	Title *string
	Color *string
}

// UpdateCard applies the title and colour of u in one step, with a single
// promotion check and save. A colour change is dropped unless colours are
// enabled; when nothing is left to apply the call is a no-op.
func (m *Manager) UpdateCard(ctx context.Context, cardID int, u CardUpdate) (*model.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	card := m.card(cardID)
	if card == nil {
		return nil, nil
	}
	applied := false
	if u.Title != nil {
		card.Title = *u.Title
		applied = true
	}
	if u.Color != nil && m.opts.AllowColor {
		card.Color = *u.Color
		applied = true
	}
	if !applied {
		return nil, nil
	}
	return m.commit(ctx, cardID)
}

// ItemUpdate holds the item fields to change; nil fields are left alone.
type ItemUpdate struct {
	Text      *string
	Completed *bool
}

// UpdateItem applies the text and completed flag of u to the item at index
// in one step, with a single promotion check and save.
func (m *Manager) UpdateItem(ctx context.Context, cardID, index int, u ItemUpdate) (*model.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.item(cardID, index)
	if item == nil || (u.Text == nil && u.Completed == nil) {
		return nil, nil
	}
	if u.Text != nil {
		item.Text = *u.Text
	}
	if u.Completed != nil {
		item.Completed = *u.Completed
	}
	return m.commit(ctx, cardID)
}

// CountInColumn returns the number of cards in column.
func (m *Manager) CountInColumn(column int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count(column)
}

// ColumnOf returns the column currently holding the card.
func (m *Manager) ColumnOf(cardID int) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	column, _, ok := m.locate(cardID)
	return column, ok
}

// CanAddCard reports whether column admits a new card.
func (m *Manager) CanAddCard(column int, ignoreCapWhileFiltering bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if column < 0 || column >= len(m.board.Columns) {
		return false
	}
	return canAddCard(column, len(m.board.Columns[column].Cards), ignoreCapWhileFiltering)
}

// CanToggle reports whether the card's items should be interactive. It is a
// display hint only; ToggleItem does not consult it.
func (m *Manager) CanToggle(cardID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	column, _, ok := m.locate(cardID)
	if !ok {
		return false
	}
	return canToggle(column, m.count(model.ColumnInProgress))
}

// FilterColumn returns copies of the cards in column matching query.
func (m *Manager) FilterColumn(column int, query string) []model.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	if column < 0 || column >= len(m.board.Columns) {
		return nil
	}
	return Filter(m.board.Columns[column].Clone().Cards, query)
}

// commit runs the promotion rule for the card, saves the board and returns
// a copy of the card as it ended up.
func (m *Manager) commit(ctx context.Context, cardID int) (*model.Card, error) {
	m.promote(cardID)

	card := m.card(cardID)
	out := card.Clone()
	return &out, m.save(ctx)
}

func (m *Manager) promote(cardID int) {
	column, idx, ok := m.locate(cardID)
	if !ok {
		return
	}
	card := m.board.Columns[column].Cards[idx]
	target := nextColumn(column, &card)
	if target < 0 {
		return
	}

	if target == model.ColumnDone && card.CompletedDate == nil {
		card.CompletedDate = model.NewTimestamp(m.opts.Clock())
	}
	src := &m.board.Columns[column]
	src.Cards = append(src.Cards[:idx], src.Cards[idx+1:]...)
	dst := &m.board.Columns[target]
	dst.Cards = append(dst.Cards, card)

	m.logger.Debug("card promoted", "card", cardID, "from", column, "to", target)
}

func (m *Manager) save(ctx context.Context) error {
	if err := m.store.Save(ctx, m.board.Clone()); err != nil {
		m.logger.Warn("failed to save board", "err", err)
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

func (m *Manager) locate(cardID int) (column, index int, ok bool) {
	for c, col := range m.board.Columns {
		for i, card := range col.Cards {
			if card.ID == cardID {
				return c, i, true
			}
		}
	}
	return 0, 0, false
}

func (m *Manager) card(cardID int) *model.Card {
	column, idx, ok := m.locate(cardID)
	if !ok {
		return nil
	}
	return &m.board.Columns[column].Cards[idx]
}

func (m *Manager) item(cardID, index int) *model.Item {
	card := m.card(cardID)
	if card == nil || index < 0 || index >= len(card.Items) {
		return nil
	}
	return &card.Items[index]
}

func (m *Manager) count(column int) int {
	if column < 0 || column >= len(m.board.Columns) {
		return 0
	}
	return len(m.board.Columns[column].Cards)
}
