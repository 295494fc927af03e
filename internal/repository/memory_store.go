package repository

import (
	"context"
	"sync"

	"noteboard/internal/board"
	"noteboard/internal/model"
)

// MemoryStore keeps encoded snapshots in a map. Snapshots go through the
// same JSON codec as the durable stores.
type MemoryStore struct {
	mu   sync.Mutex
	key  string
	data map[string][]byte
}

var _ board.Store = (*MemoryStore)(nil)

func NewMemoryStore(key string) *MemoryStore {
	return &MemoryStore{key: key, data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context) (*model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[s.key]
	if !ok {
		return nil, nil
	}
	return decodeBoard(data)
}

func (s *MemoryStore) Save(ctx context.Context, b *model.Board) error {
	data, err := encodeBoard(b)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[s.key] = data
	return nil
}

// Put stores raw bytes under the store key.
func (s *MemoryStore) Put(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[s.key] = append([]byte(nil), data...)
}
