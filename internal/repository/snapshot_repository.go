package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"noteboard/internal/board"
	"noteboard/internal/model"
)

// SnapshotRepository stores the board as one JSONB row per storage key.
type SnapshotRepository struct {
	db  *gorm.DB
	key string
}

var _ board.Store = (*SnapshotRepository)(nil)

func NewSnapshotRepository(db *gorm.DB, key string) (*SnapshotRepository, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &SnapshotRepository{db: db, key: key}, nil
}

// Migrate creates the snapshots table if needed.
func (r *SnapshotRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&model.Snapshot{})
}

// Load returns the stored board, or nil when the key has no row yet.
func (r *SnapshotRepository) Load(ctx context.Context) (*model.Board, error) {
	var snap model.Snapshot
	if err := r.db.WithContext(ctx).Where("key = ?", r.key).Take(&snap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeBoard(snap.Data)
}

// Save overwrites the row for the key with the full board.
func (r *SnapshotRepository) Save(ctx context.Context, b *model.Board) error {
	data, err := encodeBoard(b)
	if err != nil {
		return err
	}

	snap := &model.Snapshot{
		ID:   uuid.New(),
		Key:  r.key,
		Data: datatypes.JSON(data),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(snap).Error
}
