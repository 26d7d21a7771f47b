package snapshotrepo

import (
	"context"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, userID int, balance int64) error {
	query := `INSERT INTO balance_snapshots (user_id, balance) VALUES ($1, $2)`
	if _, err := r.db.Exec(ctx, query, userID, balance); err != nil {
		zap.L().Error("failed to save balance snapshot", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// CreateForAll records the current balance of every user in one statement.
func (r *Repository) CreateForAll(ctx context.Context) (int64, error) {
	query := `
		INSERT INTO balance_snapshots (user_id, balance)
		SELECT id, coin_balance FROM users
	`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("failed to snapshot balances", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// History returns snapshots taken at or after since, oldest first.
func (r *Repository) History(ctx context.Context, since time.Time) ([]domain.SnapshotView, error) {
	query := `
		SELECT u.username, b.balance, b.taken_at
		FROM balance_snapshots b
		JOIN users u ON u.id = b.user_id
		WHERE b.taken_at >= $1
		ORDER BY b.taken_at ASC, b.id ASC
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		zap.L().Error("can't load balance history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.SnapshotView
	for rows.Next() {
		var s domain.SnapshotView
		if err := rows.Scan(&s.Username, &s.Balance, &s.TakenAt); err != nil {
			zap.L().Error("can't scan snapshot row", zap.Error(err))
			return nil, err
		}
		history = append(history, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate snapshot rows", zap.Error(err))
		return nil, err
	}
	return history, nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM balance_snapshots WHERE taken_at < $1`, cutoff)
	if err != nil {
		zap.L().Error("failed to prune balance snapshots", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM balance_snapshots`)
	if err != nil {
		zap.L().Error("failed to clear balance snapshots", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
