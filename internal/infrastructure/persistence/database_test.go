package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungpos/backend/internal/domain/shared"
)

func TestTimeoutTranslation(t *testing.T) {
	t.Run("statement timeout surfaces as a persistence error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		require.NoError(t, registerTimeoutTranslation(gormDB))
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "orders"`).
			WillReturnError(errors.New("ERROR: canceling statement due to statement timeout (SQLSTATE 57014)"))

		_, err := repo.FindByID(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodePersistence))
	})

	t.Run("expired context surfaces as a persistence error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		require.NoError(t, registerTimeoutTranslation(gormDB))
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "orders"`).
			WillReturnError(context.DeadlineExceeded)

		_, err := repo.FindByID(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodePersistence))
	})

	t.Run("leaves not found untouched", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		require.NoError(t, registerTimeoutTranslation(gormDB))
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByID(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeNotFound))
	})
}
