package sessionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create stores s. A second row for the same username yields
// domain.ErrSessionConflict.
func (r *Repository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (id, username, created_at, last_activity)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.Username, s.CreatedAt, s.LastActivity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrSessionConflict
		}
		zap.L().Error("failed to save session", zap.String("username", s.Username), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.QueryRow(ctx, query, arg).Scan(&s.ID, &s.Username, &s.CreatedAt, &s.LastActivity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id::text, username, created_at, last_activity
		FROM sessions
		WHERE id = $1
	`
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.Session, error) {
	query := `
		SELECT id::text, username, created_at, last_activity
		FROM sessions
		WHERE username = $1
	`
	return r.findOne(ctx, query, username)
}

// Touch moves last_activity forward. A missing row yields
// domain.ErrSessionExpired.
func (r *Repository) Touch(ctx context.Context, id string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE sessions SET last_activity = $1 WHERE id = $2`, at, id)
	if err != nil {
		zap.L().Error("failed to touch session", zap.String("session_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionExpired
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		zap.L().Error("failed to delete session", zap.String("session_id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteIdleBefore removes sessions idle since cutoff, except those owned by
// keep.
func (r *Repository) DeleteIdleBefore(ctx context.Context, cutoff time.Time, keep string) (int64, error) {
	query := `DELETE FROM sessions WHERE last_activity < $1 AND username <> $2`
	tag, err := r.db.Exec(ctx, query, cutoff, keep)
	if err != nil {
		zap.L().Error("failed to purge sessions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteAll removes every session, the privileged account's included.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions`)
	if err != nil {
		zap.L().Error("failed to clear sessions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
