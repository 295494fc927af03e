package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"noteboard/internal/board"
	"noteboard/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// SQLiteStore keeps the snapshot in a local SQLite file, the closest thing to
// browser local storage on a single machine.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

var _ board.Store = (*SQLiteStore)(nil)

// OpenSQLiteStore opens (or creates) the database at path.
func OpenSQLiteStore(path, key string) (*SQLiteStore, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &SQLiteStore{db: db, key: key}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*model.Board, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return decodeBoard([]byte(data))
}

func (s *SQLiteStore) Save(ctx context.Context, b *model.Board) error {
	data, err := encodeBoard(b)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.key, string(data), time.Now().UTC(),
	)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
