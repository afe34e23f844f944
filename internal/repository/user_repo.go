package repository

import (
	"context"
	"errors"
	"fmt"

	"companion_rental/internal/model"

	"github.com/jackc/pgx/v5"
)

var (
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
)

const userColumns = `id, username, email, age, height, mobile_phone, password, profile_picture, gender, role, created_at`

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	FindConflicting(ctx context.Context, id, username, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateProfilePicture(ctx context.Context, id, path string) error
	DeleteCascade(ctx context.Context, id string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Age, &user.Height, &user.Phone,
		&user.PasswordHash, &user.ProfilePicture, &user.Gender, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func mapUserWriteError(err error) error {
	if constraint, ok := isUniqueViolation(err); ok {
		if constraint == "users_email_key" {
			return ErrDuplicateEmail
		}
		return ErrDuplicateUsername
	}
	return err
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (id, username, email, age, height, mobile_phone, password, profile_picture, gender, role)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql,
		user.ID, user.Username, user.Email, user.Age, user.Height, user.Phone,
		user.PasswordHash, user.ProfilePicture, user.Gender, user.Role,
	).Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", mapUserWriteError(err))
	}
	return nil
}

// FindByID retrieves a user by their ID, nil if absent
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindByUsername retrieves a user by username, nil if absent
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindByUsernameOrEmail returns the first user holding either value, nil if none.
// A username match is preferred so callers can report the right conflict.
func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2
            ORDER BY (username = $1) DESC LIMIT 1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, username, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by username or email: %w", err)
	}
	return user, nil
}

// FindConflicting is FindByUsernameOrEmail excluding the user being edited
func (r *userRepository) FindConflicting(ctx context.Context, id, username, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE (username = $2 OR email = $3) AND id <> $1
            ORDER BY (username = $2) DESC LIMIT 1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, id, username, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find conflicting user: %w", err)
	}
	return user, nil
}

// UpdateProfile overwrites the editable profile fields
func (r *userRepository) UpdateProfile(ctx context.Context, user *model.User) error {
	sql := `UPDATE users SET username = $1, email = $2, age = $3, height = $4, mobile_phone = $5 WHERE id = $6`
	cmdTag, err := r.db.Exec(ctx, sql, user.Username, user.Email, user.Age, user.Height, user.Phone, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", mapUserWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword stores a new password hash
func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET password = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfilePicture stores the relative path of the uploaded picture
func (r *userRepository) UpdateProfilePicture(ctx context.Context, id, path string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET profile_picture = $1 WHERE id = $2`, path, id)
	if err != nil {
		return fmt.Errorf("failed to update profile picture: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// cascadeUserDeletes lists, in order, every statement that removes a user's dependents.
var cascadeUserDeletes = []string{
	`DELETE FROM orders WHERE user_id = $1 OR package_id IN (SELECT id FROM user_package WHERE user_id = $1)`,
	`DELETE FROM user_package WHERE user_id = $1`,
	`DELETE FROM messages WHERE sender_id = $1 OR recipient_id = $1`,
	`DELETE FROM rating WHERE user_id = $1 OR gf_bf_id = $1`,
}

// DeleteCascade removes a user and every dependent row in one transaction.
// Nothing is committed if the user does not exist.
func (r *userRepository) DeleteCascade(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, sql := range cascadeUserDeletes {
			if _, err := tx.Exec(ctx, sql, id); err != nil {
				return fmt.Errorf("failed to delete dependents of user: %w", err)
			}
		}
		cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
