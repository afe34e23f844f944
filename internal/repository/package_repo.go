package repository

import (
	"context"
	"errors"
	"fmt"

	"companion_rental/internal/model"

	"github.com/jackc/pgx/v5"
)

const packageColumns = `id, user_id, price, duration_minutes, available, created_at`

// PackageRepository defines operations for package data
type PackageRepository interface {
	Create(ctx context.Context, pkg *model.Package) error
	FindByID(ctx context.Context, id string) (*model.Package, error)
	FindAll(ctx context.Context) ([]model.Package, error)
	FindByUser(ctx context.Context, userID string) ([]model.Package, error)
	Update(ctx context.Context, pkg *model.Package) error
	Delete(ctx context.Context, id string) error
	DeleteOwned(ctx context.Context, id, ownerID string) error
}

type packageRepository struct {
	db DB
}

// NewPackageRepository creates a new PackageRepository
func NewPackageRepository(db DB) PackageRepository {
	return &packageRepository{db: db}
}

func scanPackage(row pgx.Row) (*model.Package, error) {
	p := &model.Package{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Price, &p.DurationMinutes, &p.Available, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *packageRepository) queryPackages(ctx context.Context, sql string, args ...any) ([]model.Package, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer rows.Close()

	packages := []model.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package row: %w", err)
		}
		packages = append(packages, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating package rows: %w", err)
	}
	return packages, nil
}

// Create inserts a new package
func (r *packageRepository) Create(ctx context.Context, p *model.Package) error {
	sql := `INSERT INTO user_package (id, user_id, price, duration_minutes, available)
            VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, p.ID, p.UserID, p.Price, p.DurationMinutes, p.Available).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

// FindByID retrieves a package by its ID, nil if absent
func (r *packageRepository) FindByID(ctx context.Context, id string) (*model.Package, error) {
	p, err := scanPackage(r.db.QueryRow(ctx, `SELECT `+packageColumns+` FROM user_package WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find package by ID: %w", err)
	}
	return p, nil
}

// FindAll lists every package, newest first
func (r *packageRepository) FindAll(ctx context.Context) ([]model.Package, error) {
	return r.queryPackages(ctx, `SELECT `+packageColumns+` FROM user_package ORDER BY created_at DESC`)
}

// FindByUser lists the packages published by one user
func (r *packageRepository) FindByUser(ctx context.Context, userID string) ([]model.Package, error) {
	return r.queryPackages(ctx, `SELECT `+packageColumns+` FROM user_package WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// Update replaces price, duration and availability; ownership is part of the WHERE clause
func (r *packageRepository) Update(ctx context.Context, p *model.Package) error {
	sql := `UPDATE user_package SET price = $1, duration_minutes = $2, available = $3
            WHERE id = $4 AND user_id = $5`
	cmdTag, err := r.db.Exec(ctx, sql, p.Price, p.DurationMinutes, p.Available, p.ID, p.UserID)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a package and its orders regardless of owner
func (r *packageRepository) Delete(ctx context.Context, id string) error {
	return r.deletePackage(ctx, `DELETE FROM user_package WHERE id = $1`, id)
}

// DeleteOwned removes a package and its orders only if ownerID owns it.
// Orders of a package the caller does not own are left untouched.
func (r *packageRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	return r.deletePackage(ctx, `DELETE FROM user_package WHERE id = $1 AND user_id = $2`, id, ownerID)
}

func (r *packageRepository) deletePackage(ctx context.Context, deleteSQL string, args ...any) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE package_id = $1`, args[0]); err != nil {
			return fmt.Errorf("failed to delete orders of package: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, deleteSQL, args...)
		if err != nil {
			return fmt.Errorf("failed to delete package: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
