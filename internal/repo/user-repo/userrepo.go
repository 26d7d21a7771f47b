package userrepo

import (
	"context"
	"errors"

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

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Balance, &user.IsPerformer, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, coin_balance, is_performer, created_at
		FROM users
		WHERE username = $1
	`
	return repo.findOne(ctx, query, username)
}

// FindByUsernameForUpdate locks the row until the surrounding transaction ends.
func (repo *Repository) FindByUsernameForUpdate(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, coin_balance, is_performer, created_at
		FROM users
		WHERE username = $1
		FOR UPDATE
	`
	return repo.findOne(ctx, query, username)
}

func (repo *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, username, coin_balance, is_performer, created_at
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	return repo.findOne(ctx, query, id)
}

// Create inserts the user and fills ID and CreatedAt. A taken username
// yields domain.ErrDuplicateUser.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, coin_balance, is_performer)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Username, user.Balance, user.IsPerformer).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateUser
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AddBalance applies delta and returns the new balance.
func (repo *Repository) AddBalance(ctx context.Context, id int, delta int64) (int64, error) {
	query := `
		UPDATE users
		SET coin_balance = coin_balance + $1
		WHERE id = $2
		RETURNING coin_balance
	`
	var balance int64
	err := repo.db.QueryRow(ctx, query, delta, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("failed to update user balance", zap.Int("user_id", id), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// ResetBalances sets every balance to amount except the named account, which
// is set to exceptBalance. It returns the number of users touched.
func (repo *Repository) ResetBalances(ctx context.Context, amount int64, except string, exceptBalance int64) (int64, error) {
	query := `
		UPDATE users
		SET coin_balance = CASE WHEN username = $2 THEN $3 ELSE $1 END
	`
	tag, err := repo.db.Exec(ctx, query, amount, except, exceptBalance)
	if err != nil {
		zap.L().Error("failed to reset balances", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (repo *Repository) SetPerformer(ctx context.Context, username string, isPerformer bool) error {
	tag, err := repo.db.Exec(ctx, `UPDATE users SET is_performer = $1 WHERE username = $2`, isPerformer, username)
	if err != nil {
		zap.L().Error("failed to set performer status", zap.String("username", username), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (repo *Repository) collect(rows pgx.Rows) ([]domain.User, error) {
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate user rows", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// ListByBalance returns users richest first; limit <= 0 means all of them.
func (repo *Repository) ListByBalance(ctx context.Context, limit int) ([]domain.User, error) {
	query := `
		SELECT id, username, coin_balance, is_performer, created_at
		FROM users
		ORDER BY coin_balance DESC, id ASC
	`
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = repo.db.Query(ctx, query+` LIMIT $1`, limit)
	} else {
		rows, err = repo.db.Query(ctx, query)
	}
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	return repo.collect(rows)
}

// ListByRole returns performers or audience members ordered by id, leaving
// out the excluded username.
func (repo *Repository) ListByRole(ctx context.Context, isPerformer bool, exclude string) ([]domain.User, error) {
	query := `
		SELECT id, username, coin_balance, is_performer, created_at
		FROM users
		WHERE is_performer = $1 AND username <> $2
		ORDER BY id ASC
	`
	rows, err := repo.db.Query(ctx, query, isPerformer, exclude)
	if err != nil {
		zap.L().Error("can't list users by role", zap.Bool("is_performer", isPerformer), zap.Error(err))
		return nil, err
	}
	return repo.collect(rows)
}

// ListAll returns every user ordered by username.
func (repo *Repository) ListAll(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, username, coin_balance, is_performer, created_at
		FROM users
		ORDER BY username ASC
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list all users", zap.Error(err))
		return nil, err
	}
	return repo.collect(rows)
}

func (repo *Repository) Stats(ctx context.Context) (*domain.UserStats, error) {
	query := `
		SELECT COALESCE(SUM(coin_balance), 0), COUNT(*),
			COUNT(*) FILTER (WHERE is_performer),
			COUNT(*) FILTER (WHERE NOT is_performer)
		FROM users
	`
	var stats domain.UserStats
	err := repo.db.QueryRow(ctx, query).Scan(&stats.TotalCoins, &stats.TotalUsers, &stats.Performers, &stats.Audience)
	if err != nil {
		zap.L().Error("can't read user stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
