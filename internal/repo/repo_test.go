package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessionrepo "github.com/alexrkaufman/strawcoin/internal/repo/session-repo"
	settingsrepo "github.com/alexrkaufman/strawcoin/internal/repo/settings-repo"
	snapshotrepo "github.com/alexrkaufman/strawcoin/internal/repo/snapshot-repo"
	transactionrepo "github.com/alexrkaufman/strawcoin/internal/repo/transaction-repo"
	userrepo "github.com/alexrkaufman/strawcoin/internal/repo/user-repo"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &snapshotrepo.Repository{}, repo.SnapshotRepo)
	assert.IsType(t, &sessionrepo.Repository{}, repo.SessionRepo)
	assert.IsType(t, &settingsrepo.Repository{}, repo.SettingsRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
