package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables.
// DATABASE_URL wins over the individual DB_* variables.
func LoadDBConfig() (*DBConfig, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return &DBConfig{DSN: url}, nil
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection pool to PostgreSQL, retrying a few times
func ConnectDB(ctx context.Context, cfg *DBConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(ctx, cfg.DSN)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				log.Info().Msg("connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max", maxRetries).Dur("retry_in", retryInterval).
			Msg("failed to connect to database")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// Schema creates every table if it does not exist.
// Dependent tables reference users without ON DELETE CASCADE; the admin delete removes them explicitly.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username VARCHAR(50) UNIQUE NOT NULL,
	email VARCHAR(255) UNIQUE NOT NULL,
	age INTEGER NOT NULL,
	height INTEGER NOT NULL,
	mobile_phone VARCHAR(32) NOT NULL,
	password TEXT NOT NULL,
	profile_picture TEXT,
	gender VARCHAR(16) NOT NULL,
	role SMALLINT NOT NULL DEFAULT 0 CHECK (role IN (0, 1)),
	created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_package (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	price BIGINT NOT NULL CHECK (price > 0),
	duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
	available BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS rating (
	id TEXT PRIMARY KEY,
	gf_bf_id TEXT NOT NULL REFERENCES users(id),
	user_id TEXT NOT NULL REFERENCES users(id),
	rate SMALLINT NOT NULL CHECK (rate BETWEEN 1 AND 5),
	review TEXT NOT NULL,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (gf_bf_id, user_id)
);

CREATE TABLE IF NOT EXISTS orders (
	id TEXT PRIMARY KEY,
	package_id TEXT NOT NULL REFERENCES user_package(id),
	user_id TEXT NOT NULL REFERENCES users(id),
	total_price BIGINT NOT NULL CHECK (total_price > 0),
	status VARCHAR(16) NOT NULL CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled')),
	created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	sender_id TEXT NOT NULL REFERENCES users(id),
	recipient_id TEXT NOT NULL REFERENCES users(id),
	message TEXT NOT NULL,
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_user_package_user_id ON user_package(user_id);
CREATE INDEX IF NOT EXISTS idx_rating_gf_bf_id ON rating(gf_bf_id);
CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_orders_package_id ON orders(package_id);
CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages(sender_id, recipient_id);
`

// Execer is the subset of pgxpool.Pool that AutoMigrate needs.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}
