package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// PostgresKV backs the store with a single app_state table, each blob one
// row. An alternative to Redis for deployments that already run Postgres.
type PostgresKV struct {
	db *sql.DB
}

// NewPostgresKV wraps an open database handle and creates the app_state
// table if it does not exist.
func NewPostgresKV(db *sql.DB) (*PostgresKV, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return nil, err
	}
	return &PostgresKV{db: db}, nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := p.db.QueryRowContext(ctx,
		"SELECT value FROM app_state WHERE key = $1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (p *PostgresKV) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	return err
}

func (p *PostgresKV) Del(ctx context.Context, keys ...string) error {
	_, err := p.db.ExecContext(ctx,
		"DELETE FROM app_state WHERE key = ANY($1)", pq.Array(keys))
	return err
}
