package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/model"
	"noteboard/internal/repository"
)

func openSQLite(t *testing.T) *repository.SQLiteStore {
	t.Helper()
	store, err := repository.OpenSQLiteStore(filepath.Join(t.TempDir(), "board.db"), "cards")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	store := openSQLite(t)

	b, err := store.Load(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, b)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)

	first := model.NewBoard()
	first.Columns[0].Cards = append(first.Columns[0].Cards, model.Card{ID: 1, Title: "one", Items: []model.Item{}})
	first.NextCardID = 2
	require.NoError(t, store.Save(ctx, first))

	stamp := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	second := model.NewBoard()
	second.Columns[2].Cards = append(second.Columns[2].Cards, model.Card{
		ID:            1,
		Title:         "one",
		Items:         []model.Item{{Text: "a", Completed: true}},
		CompletedDate: model.NewTimestamp(stamp),
	})
	second.NextCardID = 2
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Columns[0].Cards)
	require.Len(t, loaded.Columns[2].Cards, 1)
	assert.True(t, stamp.Equal(loaded.Columns[2].Cards[0].CompletedDate.Time))
	assert.Equal(t, 2, loaded.NextCardID)
}

func TestOpenSQLiteStore_EmptyKey(t *testing.T) {
	_, err := repository.OpenSQLiteStore(filepath.Join(t.TempDir(), "board.db"), "")
	assert.ErrorIs(t, err, repository.ErrEmptyKey)
}
