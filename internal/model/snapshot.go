package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Snapshot is one stored board, addressed by a fixed storage key.
type Snapshot struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Key       string         `gorm:"uniqueIndex;not null"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}
