package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (TXManager, *DB, pgxmock.PgxPoolIface) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	return NewTXManager(mockPool), New(mockPool), mockPool
}

func TestTXManager_Begin(t *testing.T) {
	debit := `UPDATE users SET coin_balance = coin_balance - $1 WHERE id = $2`
	credit := `UPDATE users SET coin_balance = coin_balance + $1 WHERE id = $2`

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(db *DB) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commits when every statement succeeds",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(debit)).WithArgs(int64(100), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(regexp.QuoteMeta(credit)).WithArgs(int64(100), 2).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					if _, err := db.Exec(ctx, debit, int64(100), 1); err != nil {
						return err
					}
					_, err := db.Exec(ctx, credit, int64(100), 2)
					return err
				}
			},
			expectErr: false,
		},
		{
			name: "Rolls back when a statement fails midway",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(debit)).WithArgs(int64(100), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(regexp.QuoteMeta(credit)).WithArgs(int64(100), 2).
					WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					if _, err := db.Exec(ctx, debit, int64(100), 1); err != nil {
						return err
					}
					_, err := db.Exec(ctx, credit, int64(100), 2)
					return err
				}
			},
			expectErr: true,
		},
		{
			name: "Begin failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error { return nil }
			},
			expectErr: true,
		},
		{
			name: "Commit failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error { return nil }
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager, db, mock := NewMock(t)
			tt.mockSetup(mock)

			err := txManager.Begin(context.Background(), tt.fn(db))

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTXManager_NestedBeginJoinsOuter(t *testing.T) {
	txManager, db, mock := NewMock(t)
	query := `DELETE FROM sessions WHERE id = $1`

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("abc").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	err := txManager.Begin(context.Background(), func(ctx context.Context) error {
		return txManager.Begin(ctx, func(ctx context.Context) error {
			_, err := db.Exec(ctx, query, "abc")
			return err
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_OutsideTransactionUsesPool(t *testing.T) {
	_, db, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT coin_balance FROM users WHERE username = $1`)).
		WithArgs("ALICE").
		WillReturnRows(pgxmock.NewRows([]string{"coin_balance"}).AddRow(int64(5000)))

	var balance int64
	err := db.QueryRow(context.Background(), `SELECT coin_balance FROM users WHERE username = $1`, "ALICE").Scan(&balance)

	assert.NoError(t, err)
	assert.Equal(t, int64(5000), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
