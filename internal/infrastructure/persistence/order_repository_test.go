package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/warungpos/backend/internal/domain/order"
	"github.com/warungpos/backend/internal/domain/shared"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
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

	return gormDB, mock, mockDB
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("finds existing order with items", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		orderID := uuid.New()
		orderRows := sqlmock.NewRows([]string{"id", "order_number", "status", "order_type", "total_amount", "version"}).
			AddRow(orderID, "ORD-20260115-a1b2c3d4", "waiting", "dine_in", decimal.NewFromInt(15000), 1)
		itemRows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "line_no", "quantity", "price"}).
			AddRow(uuid.New(), orderID, uuid.New(), 1, 2, decimal.NewFromInt(5000)).
			AddRow(uuid.New(), orderID, uuid.New(), 2, 1, decimal.NewFromInt(5000))

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnRows(orderRows)
		mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1 ORDER BY line_no ASC`).
			WithArgs(orderID).
			WillReturnRows(itemRows)

		o, err := repo.FindByID(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, o.ID)
		assert.Equal(t, "ORD-20260115-a1b2c3d4", o.OrderNumber)
		assert.Equal(t, order.StatusWaiting, o.Status)
		require.Len(t, o.Items, 2)
		assert.Equal(t, 1, o.Items[0].LineNo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		orderID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "orders"`).
			WithArgs(orderID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByID(context.Background(), orderID)

		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_ExistsByOrderNumber(t *testing.T) {
	t.Run("returns true when taken", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE order_number = \$1`).
			WithArgs("ORD-20260115-a1b2c3d4").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByOrderNumber(context.Background(), "ORD-20260115-a1b2c3d4")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when free", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
			WithArgs("ORD-20260115-ffffffff").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByOrderNumber(context.Background(), "ORD-20260115-ffffffff")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormOrderRepository_SaveWithLock(t *testing.T) {
	t.Run("bumps the version on success", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		o, err := order.NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.NewFromInt(15000))
		require.NoError(t, err)
		require.Equal(t, 1, o.Version)

		mock.ExpectExec(`UPDATE "orders" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SaveWithLock(context.Background(), o))
		assert.Equal(t, 2, o.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version yields a conflict and leaves the version alone", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		o, err := order.NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.NewFromInt(15000))
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "orders" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.SaveWithLock(context.Background(), o)

		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeConflict))
		assert.Equal(t, 1, o.Version)
	})
}
