package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/model"
	"noteboard/internal/repository"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore("cards")

	b, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, b)

	saved := model.NewBoard()
	saved.Columns[1].Cards = append(saved.Columns[1].Cards, model.Card{ID: 3, Title: "x", Items: []model.Item{{Text: "a"}}})
	saved.NextCardID = 4
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestMemoryStore_Malformed(t *testing.T) {
	store := repository.NewMemoryStore("cards")
	store.Put([]byte(`{"columns": 5}`))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrMalformedSnapshot)
}
