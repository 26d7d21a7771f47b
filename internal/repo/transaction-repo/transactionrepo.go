package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/jackc/pgx/v5"
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

// Create records tx and fills its ID and CreatedAt.
func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (sender_id, recipient_id, amount, kind, status, note, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tx.SenderID, tx.RecipientID, tx.Amount, string(tx.Kind), string(tx.Status), tx.Note, tx.ResolvedAt,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("failed to save transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// FindPendingForUpdate locks a pending transaction. It returns nil when no
// pending transaction has that id.
func (r *Repository) FindPendingForUpdate(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
		SELECT id, sender_id, recipient_id, amount, kind, status, note, created_at, resolved_at
		FROM transactions
		WHERE id = $1 AND status = 'pending'
		FOR UPDATE
	`
	var (
		tx     domain.Transaction
		kind   string
		status string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tx.ID, &tx.SenderID, &tx.RecipientID, &tx.Amount, &kind, &status, &tx.Note, &tx.CreatedAt, &tx.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find pending transaction", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	tx.Kind = domain.TransactionKind(kind)
	tx.Status = domain.TransactionStatus(status)
	return &tx, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.TransactionStatus, resolvedAt time.Time) error {
	query := `UPDATE transactions SET status = $1, resolved_at = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, query, string(status), resolvedAt, id)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

const viewColumns = `
	SELECT t.id, s.username, r.username, t.amount, t.kind, t.status, t.note, t.created_at
	FROM transactions t
	JOIN users s ON s.id = t.sender_id
	JOIN users r ON r.id = t.recipient_id
`

func collectViews(rows pgx.Rows) ([]domain.TransactionView, error) {
	defer rows.Close()

	var views []domain.TransactionView
	for rows.Next() {
		var (
			v      domain.TransactionView
			kind   string
			status string
		)
		if err := rows.Scan(&v.ID, &v.Sender, &v.Recipient, &v.Amount, &kind, &status, &v.Note, &v.CreatedAt); err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		v.Kind = domain.TransactionKind(kind)
		v.Status = domain.TransactionStatus(status)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate transaction rows", zap.Error(err))
		return nil, err
	}
	return views, nil
}

// History returns transactions newest first. An empty username lists every
// user's transactions.
func (r *Repository) History(ctx context.Context, username string, limit, offset int) ([]domain.TransactionView, error) {
	query := viewColumns + `
		WHERE $1 = '' OR s.username = $1 OR r.username = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, username, limit, offset)
	if err != nil {
		zap.L().Error("can't load transaction history", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return collectViews(rows)
}

func (r *Repository) PendingForRecipient(ctx context.Context, recipientID int) ([]domain.TransactionView, error) {
	query := viewColumns + `
		WHERE t.recipient_id = $1 AND t.status = 'pending'
		ORDER BY t.created_at ASC, t.id ASC
	`
	rows, err := r.db.Query(ctx, query, recipientID)
	if err != nil {
		zap.L().Error("can't load pending offers", zap.Int("recipient_id", recipientID), zap.Error(err))
		return nil, err
	}
	return collectViews(rows)
}

func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions`)
	if err != nil {
		zap.L().Error("failed to clear transactions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Stats counts approved transactions and their total volume.
func (r *Repository) Stats(ctx context.Context) (*domain.TransactionStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE status = 'approved'
	`
	var stats domain.TransactionStats
	if err := r.db.QueryRow(ctx, query).Scan(&stats.Count, &stats.Volume); err != nil {
		zap.L().Error("can't read transaction stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
