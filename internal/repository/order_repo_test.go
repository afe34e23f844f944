package repository

import (
	"context"
	"testing"
	"time"

	"companion_rental/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_FindByUser(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders WHERE user_id").
		WithArgs("buyer").
		WillReturnRows(pgxmock.NewRows([]string{"id", "package_id", "user_id", "total_price", "status", "created_at"}).
			AddRow("o1", "p1", "buyer", int64(150000), model.OrderStatusConfirmed, created))

	orders, err := repo.FindByUser(context.Background(), "buyer")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusConfirmed, orders[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Update_ScopedToBuyer(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)

	mock.ExpectExec("UPDATE orders SET (.+) WHERE id = \\$4 AND user_id = \\$5").
		WithArgs("p1", int64(99000), model.OrderStatusCancelled, "o1", "intruder").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &model.Order{ID: "o1", PackageID: "p1", UserID: "intruder", TotalPrice: 99000, Status: model.OrderStatusCancelled})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)

	mock.ExpectQuery("FROM orders WHERE id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "package_id", "user_id", "total_price", "status", "created_at"}))

	order, err := repo.FindByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderRepository_FindVisibleTo(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders\\s+WHERE user_id = \\$1 OR package_id IN \\(SELECT id FROM user_package WHERE user_id = \\$1\\)").
		WithArgs("companion").
		WillReturnRows(pgxmock.NewRows([]string{"id", "package_id", "user_id", "total_price", "status", "created_at"}).
			AddRow("o1", "p-companion", "buyer", int64(150000), model.OrderStatusPending, created))

	orders, err := repo.FindVisibleTo(context.Background(), "companion")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "buyer", orders[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
