package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/dailyledger/backend/internal/domain/shared"
)

// newMockCategoryRepository creates a GormCategoryRepository with a mocked SQL connection
func newMockCategoryRepository(t *testing.T) (*GormCategoryRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCategoryRepository(gormDB), mock, mockDB
}

func TestGormCategoryRepository_FindActive(t *testing.T) {
	repo, mock, mockDB := newMockCategoryRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "is_agent", "deleted"}).
		AddRow(int64(1), "fish", false, false).
		AddRow(int64(2), "shrimp", true, false)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE deleted = \$1 ORDER BY id ASC`).
		WithArgs(false).
		WillReturnRows(rows)

	categories, err := repo.FindActive(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "fish", categories[0].Name)
	assert.True(t, categories[1].IsAgent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCategoryRepository_FindAll_IncludesDeleted(t *testing.T) {
	repo, mock, mockDB := newMockCategoryRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "is_agent", "deleted"}).
		AddRow(int64(1), "fish", false, false).
		AddRow(int64(2), "retired", false, true)

	mock.ExpectQuery(`SELECT \* FROM "categories" ORDER BY id ASC`).
		WillReturnRows(rows)

	categories, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.True(t, categories[1].Deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCategoryRepository_FindByID(t *testing.T) {
	t.Run("finds existing category", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "is_agent", "deleted"}).
			AddRow(int64(7), "fish", false, false)

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnRows(rows)

		category, err := repo.FindByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), category.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(9), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), 9)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCategoryRepository_SaveAll(t *testing.T) {
	t.Run("no-op for empty slice", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		require.NoError(t, repo.SaveAll(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts rows", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO "categories"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		err := repo.SaveAll(context.Background(), []ledger.Category{{Name: "fish"}})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
