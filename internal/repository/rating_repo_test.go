package repository

import (
	"context"
	"testing"

	"companion_rental/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestRatingRepository_Create_Duplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewRatingRepository(mock)

	mock.ExpectQuery("INSERT INTO rating").
		WithArgs("r1", "c1", "u1", 5, "great").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "rating_gf_bf_id_user_id_key"})

	err := repo.Create(context.Background(), &model.Rating{ID: "r1", CompanionID: "c1", UserID: "u1", Rate: 5, Review: "great"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_Totals(t *testing.T) {
	mock := newMock(t)
	repo := NewRatingRepository(mock)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(rate\\), 0\\), COUNT\\(rate\\) FROM rating").
		WithArgs("c1").
		WillReturnRows(pgxmock.NewRows([]string{"sum", "count"}).AddRow(int64(14), int64(3)))

	total, count, err := repo.Totals(context.Background(), "c1")
	assert.NoError(t, err)
	assert.Equal(t, int64(14), total)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_Update_ScopedToAuthor(t *testing.T) {
	mock := newMock(t)
	repo := NewRatingRepository(mock)

	mock.ExpectExec("UPDATE rating SET rate = \\$1, review = \\$2 WHERE id = \\$3 AND user_id = \\$4").
		WithArgs(4, "better now", "r1", "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &model.Rating{ID: "r1", UserID: "u1", Rate: 4, Review: "better now"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
