package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// kvRepo implements KVRepo on the kv table.
type kvRepo struct {
	db            *sqlx.DB
	maxValueBytes int
}

type kvRow struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt int64  `db:"updated_at"`
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, error) {
	var row kvRow
	err := r.db.GetContext(ctx, &row, `SELECT key, value, updated_at FROM kv WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return row.Value, nil
}

func (r *kvRepo) Put(ctx context.Context, key, value string) error {
	if r.maxValueBytes > 0 && len(value) > r.maxValueBytes {
		return fmt.Errorf("put %q (%d bytes): %w", key, len(value), ErrQuotaExceeded)
	}

	row := kvRow{Key: key, Value: value, UpdatedAt: time.Now().UnixMilli()}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (:key, :value, :updated_at)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, row)
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.SelectContext(ctx, &keys, `SELECT key FROM kv ORDER BY key`); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}
