package repository

import (
	"context"
	"errors"
	"fmt"

	"companion_rental/internal/model"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, package_id, user_id, total_price, status, created_at`

// OrderRepository defines operations for order data
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindVisibleTo(ctx context.Context, userID string) ([]model.Order, error)
	FindByPackage(ctx context.Context, packageID string) ([]model.Order, error)
	FindByUser(ctx context.Context, userID string) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id string) error
	DeleteOwned(ctx context.Context, id, buyerID string) error
}

type orderRepository struct {
	db DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB) OrderRepository {
	return &orderRepository{db: db}
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	o := &model.Order{}
	if err := row.Scan(&o.ID, &o.PackageID, &o.UserID, &o.TotalPrice, &o.Status, &o.CreatedAt); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]model.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, *o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	sql := `INSERT INTO orders (id, package_id, user_id, total_price, status)
            VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, o.ID, o.PackageID, o.UserID, o.TotalPrice, o.Status).Scan(&o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindByID retrieves an order by its ID, nil if absent
func (r *orderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}
	return o, nil
}

// FindVisibleTo lists orders the user bought or that were placed on the user's packages
func (r *orderRepository) FindVisibleTo(ctx context.Context, userID string) ([]model.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders
		WHERE user_id = $1 OR package_id IN (SELECT id FROM user_package WHERE user_id = $1)
		ORDER BY created_at DESC`, userID)
}

func (r *orderRepository) FindByPackage(ctx context.Context, packageID string) ([]model.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders WHERE package_id = $1 ORDER BY created_at DESC`, packageID)
}

func (r *orderRepository) FindByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// Update rewrites an order owned by o.UserID
func (r *orderRepository) Update(ctx context.Context, o *model.Order) error {
	sql := `UPDATE orders SET package_id = $1, total_price = $2, status = $3 WHERE id = $4 AND user_id = $5`
	cmdTag, err := r.db.Exec(ctx, sql, o.PackageID, o.TotalPrice, o.Status, o.ID, o.UserID)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteOwned(ctx context.Context, id, buyerID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1 AND user_id = $2`, id, buyerID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
