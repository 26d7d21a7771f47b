package settingsrepo

import (
	"context"
	"errors"

	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository is a string key-value store for runtime overrides.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Get reports the stored value and whether the key is set.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		zap.L().Error("can't read setting", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return value, true, nil
}

func (r *Repository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		zap.L().Error("failed to save setting", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM settings WHERE key = $1`, key); err != nil {
		zap.L().Error("failed to delete setting", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
