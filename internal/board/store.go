package board

import (
	"context"
	"errors"

	"noteboard/internal/model"
)

// DefaultStorageKey is the key the board snapshot is stored under.
const DefaultStorageKey = "cards"

// ErrSaveFailed wraps any persistence failure reported by a mutation. The
// in-memory board keeps the mutation when it is returned.
var ErrSaveFailed = errors.New("board snapshot was not saved")

// Store is the persistence gateway for board snapshots. Load returns
// (nil, nil) when nothing has been stored yet.
type Store interface {
	Load(ctx context.Context) (*model.Board, error)
	Save(ctx context.Context, b *model.Board) error
}
