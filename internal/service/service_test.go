package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/alexrkaufman/strawcoin/internal/config"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/alexrkaufman/strawcoin/internal/repo"
	"github.com/alexrkaufman/strawcoin/internal/service/ledgerservice"
	"github.com/alexrkaufman/strawcoin/internal/service/marketservice"
	"github.com/alexrkaufman/strawcoin/internal/service/sessionservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettings := marketservice.NewMockRepo(ctrl)
	repos := &repo.Repositories{
		UserRepo:        ledgerservice.NewMockUserRepo(ctrl),
		TransactionRepo: ledgerservice.NewMockTransactionRepo(ctrl),
		SnapshotRepo:    ledgerservice.NewMockSnapshotRepo(ctrl),
		SessionRepo:     sessionservice.NewMockRepo(ctrl),
		SettingsRepo:    mockSettings,
	}
	cfg := &config.Config{
		SecretKey:            "secret",
		SessionTimeout:       time.Minute,
		PrivilegedUsername:   "CHANCELLOR",
		PrivilegedEnabled:    true,
		InitialBalance:       10000,
		RedistributionAmount: 5,
		MarketOpen:           false,
	}

	services := New(cfg, repos, pg.NewMockTXManager(ctrl))

	require.NotNil(t, services.Ledger)
	require.NotNil(t, services.Sessions)
	require.NotNil(t, services.Market)

	assert.Equal(t, "CHANCELLOR", services.Ledger.PrivilegedUsername())
	assert.True(t, services.Sessions.HasPrivilegedAccess("CHANCELLOR"))
	assert.False(t, services.Sessions.HasPrivilegedAccess("ALICE"))

	mockSettings.EXPECT().Get(gomock.Any(), marketservice.OverrideKey).Return("", false, nil)
	open, err := services.Market.IsOpen(context.Background())
	require.NoError(t, err)
	assert.False(t, open)
}
