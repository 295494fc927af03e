package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"noteboard/internal/model"
	"noteboard/internal/repository"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

const storedBoard = `{"columns":[{"title":"Column 1","cards":[{"id":1,"title":"Карточка 2","color":"#f9f9f9","items":[{"text":"Пункт 1","completed":true}],"completedDate":null}]},{"title":"Column 2","cards":[]},{"title":"Column 3","cards":[]}],"nextCardId":2}`

func TestNewSnapshotRepository_EmptyKey(t *testing.T) {
	gormDB, _ := setupMockDB(t)

	repo, err := repository.NewSnapshotRepository(gormDB, "")

	assert.ErrorIs(t, err, repository.ErrEmptyKey)
	assert.Nil(t, repo)
}

func TestSnapshotRepository_Load_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo, err := repository.NewSnapshotRepository(gormDB, "cards")
	require.NoError(t, err)

	// Ожидаем запрос снимка по ключу
	mock.ExpectQuery(`SELECT .* FROM "snapshots" WHERE key = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "data", "updated_at"}).
			AddRow(uuid.New().String(), "cards", storedBoard, time.Now()))

	// Act
	b, err := repo.Load(context.Background())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 2, b.NextCardID)
	require.Len(t, b.Columns, 3)
	require.Len(t, b.Columns[0].Cards, 1)
	assert.Equal(t, "Карточка 2", b.Columns[0].Cards[0].Title)
	assert.True(t, b.Columns[0].Cards[0].Items[0].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Load_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo, err := repository.NewSnapshotRepository(gormDB, "cards")
	require.NoError(t, err)

	// Строки нет - снимок ещё не сохранялся
	mock.ExpectQuery(`SELECT .* FROM "snapshots" WHERE key = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "data", "updated_at"}))

	// Act
	b, err := repo.Load(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Load_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo, err := repository.NewSnapshotRepository(gormDB, "cards")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "snapshots" WHERE key = .*`).
		WillReturnError(assert.AnError)

	// Act
	b, err := repo.Load(context.Background())

	// Assert
	assert.Error(t, err)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Save(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo, err := repository.NewSnapshotRepository(gormDB, "cards")
	require.NoError(t, err)

	// Ожидаем upsert снимка по ключу
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "snapshots" .* ON CONFLICT \("key"\) DO UPDATE SET`).
		WithArgs(sqlmock.AnyArg(), "cards", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err = repo.Save(context.Background(), model.NewBoard())

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Save_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo, err := repository.NewSnapshotRepository(gormDB, "cards")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "snapshots"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// Act
	err = repo.Save(context.Background(), model.NewBoard())

	// Assert
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
