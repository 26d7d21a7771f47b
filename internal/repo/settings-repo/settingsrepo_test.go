package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
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

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT value FROM settings WHERE key = $1")

	tests := []struct {
		name        string
		prepareMock func()
		value       string
		found       bool
		expectErr   bool
	}{
		{
			name: "Stored value",
			prepareMock: func() {
				mock.ExpectQuery(query).WithArgs("market_override").
					WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("CLOSED"))
			},
			value: "CLOSED",
			found: true,
		},
		{
			name: "Missing key",
			prepareMock: func() {
				mock.ExpectQuery(query).WithArgs("market_override").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			prepareMock: func() {
				mock.ExpectQuery(query).WithArgs("market_override").WillReturnError(errors.New("boom"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			value, found, err := repo.Get(context.Background(), "market_override")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.found, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetAndDelete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value")).
		WithArgs("redistribution_amount", "10").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.Set(context.Background(), "redistribution_amount", "10"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM settings WHERE key = $1")).
		WithArgs("market_override").
		WillReturnError(errors.New("boom"))
	assert.Error(t, repo.Delete(context.Background(), "market_override"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
