package snapshotrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO balance_snapshots (user_id, balance) VALUES ($1, $2)")

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Snapshot saved",
			prepareMock: func() {
				mock.ExpectExec(query).WithArgs(1, int64(8000)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			prepareMock: func() {
				mock.ExpectExec(query).WithArgs(1, int64(8000)).WillReturnError(errors.New("fk violation"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := repo.Create(context.Background(), 1, 8000)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateForAll(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO balance_snapshots (user_id, balance) SELECT id, coin_balance FROM users")).
		WillReturnResult(pgxmock.NewResult("INSERT", 3))

	n, err := repo.CreateForAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_History(t *testing.T) {
	repo, mock := NewMock(t)
	since := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"username", "balance", "taken_at"}).
		AddRow("ALICE", int64(10000), since).
		AddRow("ALICE", int64(8000), since.Add(10*time.Second))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.taken_at >= $1 ORDER BY b.taken_at ASC, b.id ASC")).
		WithArgs(since).
		WillReturnRows(rows)

	history, err := repo.History(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, []domain.SnapshotView{
		{Username: "ALICE", Balance: 10000, TakenAt: since},
		{Username: "ALICE", Balance: 8000, TakenAt: since.Add(10 * time.Second)},
	}, history)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteOlderThan(t *testing.T) {
	repo, mock := NewMock(t)
	cutoff := time.Now().Add(-6 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM balance_snapshots WHERE taken_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 42))
	n, err := repo.DeleteOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM balance_snapshots")).
		WillReturnError(errors.New("boom"))
	_, err = repo.DeleteAll(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
