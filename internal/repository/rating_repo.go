package repository

import (
	"context"
	"errors"
	"fmt"

	"companion_rental/internal/model"

	"github.com/jackc/pgx/v5"
)

const ratingColumns = `id, gf_bf_id, user_id, rate, review, created_at`

// RatingRepository defines operations for rating data
type RatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) error
	FindByID(ctx context.Context, id string) (*model.Rating, error)
	FindAll(ctx context.Context) ([]model.Rating, error)
	FindByCompanion(ctx context.Context, companionID string) ([]model.Rating, error)
	Update(ctx context.Context, rating *model.Rating) error
	Delete(ctx context.Context, id string) error
	DeleteOwned(ctx context.Context, id, authorID string) error
	Totals(ctx context.Context, companionID string) (total int64, count int64, err error)
}

type ratingRepository struct {
	db DB
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db DB) RatingRepository {
	return &ratingRepository{db: db}
}

func scanRating(row pgx.Row) (*model.Rating, error) {
	rt := &model.Rating{}
	if err := row.Scan(&rt.ID, &rt.CompanionID, &rt.UserID, &rt.Rate, &rt.Review, &rt.CreatedAt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *ratingRepository) queryRatings(ctx context.Context, sql string, args ...any) ([]model.Rating, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	ratings := []model.Rating{}
	for rows.Next() {
		rt, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		ratings = append(ratings, *rt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating rows: %w", err)
	}
	return ratings, nil
}

// Create inserts a rating; a second rating of the same companion by the same user is ErrDuplicate
func (r *ratingRepository) Create(ctx context.Context, rt *model.Rating) error {
	sql := `INSERT INTO rating (id, gf_bf_id, user_id, rate, review)
            VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, rt.ID, rt.CompanionID, rt.UserID, rt.Rate, rt.Review).Scan(&rt.CreatedAt)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// FindByID retrieves a rating by its ID, nil if absent
func (r *ratingRepository) FindByID(ctx context.Context, id string) (*model.Rating, error) {
	rt, err := scanRating(r.db.QueryRow(ctx, `SELECT `+ratingColumns+` FROM rating WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rating by ID: %w", err)
	}
	return rt, nil
}

func (r *ratingRepository) FindAll(ctx context.Context) ([]model.Rating, error) {
	return r.queryRatings(ctx, `SELECT `+ratingColumns+` FROM rating ORDER BY created_at DESC`)
}

func (r *ratingRepository) FindByCompanion(ctx context.Context, companionID string) ([]model.Rating, error) {
	return r.queryRatings(ctx, `SELECT `+ratingColumns+` FROM rating WHERE gf_bf_id = $1 ORDER BY created_at DESC`, companionID)
}

// Update changes rate and review of a rating owned by rt.UserID
func (r *ratingRepository) Update(ctx context.Context, rt *model.Rating) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE rating SET rate = $1, review = $2 WHERE id = $3 AND user_id = $4`,
		rt.Rate, rt.Review, rt.ID, rt.UserID)
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rating WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ratingRepository) DeleteOwned(ctx context.Context, id, authorID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rating WHERE id = $1 AND user_id = $2`, id, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Totals returns the sum and number of rates for a companion
func (r *ratingRepository) Totals(ctx context.Context, companionID string) (int64, int64, error) {
	var total, count int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(rate), 0), COUNT(rate) FROM rating WHERE gf_bf_id = $1`, companionID,
	).Scan(&total, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum ratings: %w", err)
	}
	return total, count, nil
}
