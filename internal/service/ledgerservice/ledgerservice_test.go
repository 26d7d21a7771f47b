package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	users        *MockUserRepo
	transactions *MockTransactionRepo
	snapshots    *MockSnapshotRepo
	txManager    *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		users:        NewMockUserRepo(ctrl),
		transactions: NewMockTransactionRepo(ctrl),
		snapshots:    NewMockSnapshotRepo(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	service := New(m.users, m.transactions, m.snapshots, m.txManager, Options{InitialBalance: 10000, PrivilegedUsername: "CHANCELLOR"})
	return service, m
}

func passThrough(m mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) },
	)
}

func TestCreateUser(t *testing.T) {
	service, m := NewMock(t)
	now := time.Now()

	tests := []struct {
		name        string
		username    string
		prepareMock func()
		expectedErr error
		expected    *domain.User
	}{
		{
			name:     "New user gets starting balance and snapshot",
			username: "carl",
			prepareMock: func() {
				passThrough(m)
				m.users.EXPECT().Create(gomock.Any(), &domain.User{Username: "CARL", Balance: 10000}).
					Return(&domain.User{ID: 3, Username: "CARL", Balance: 10000, CreatedAt: now}, nil)
				m.snapshots.EXPECT().Create(gomock.Any(), 3, int64(10000)).Return(nil)
			},
			expected: &domain.User{ID: 3, Username: "CARL", Balance: 10000, CreatedAt: now},
		},
		{
			name:     "Duplicate username",
			username: "CARL",
			prepareMock: func() {
				passThrough(m)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateUser)
			},
			expectedErr: domain.ErrDuplicateUser,
		},
		{
			name:     "Snapshot failure rolls back as operation failure",
			username: "CARL",
			prepareMock: func() {
				passThrough(m)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 3, Username: "CARL", Balance: 10000}, nil)
				m.snapshots.EXPECT().Create(gomock.Any(), 3, int64(10000)).Return(errors.New("disk full"))
			},
			expectedErr: domain.ErrOperationFailed,
		},
		{
			name:        "Username too short",
			username:    " c ",
			prepareMock: func() {},
			expectedErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.CreateUser(context.Background(), tt.username, false)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, user)
		})
	}
}

func TestGetBalance(t *testing.T) {
	service, m := NewMock(t)

	m.users.EXPECT().FindByUsername(gomock.Any(), "ALICE").Return(&domain.User{ID: 1, Username: "ALICE", Balance: 4000}, nil)
	balance, err := service.GetBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), balance)

	m.users.EXPECT().FindByUsername(gomock.Any(), "GHOST").Return(nil, nil)
	_, err = service.GetBalance(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestTransfer_AliceAndBob(t *testing.T) {
	store := newMemStore()
	store.seed("ALICE", 5000, false)
	store.seed("BOB", 3000, false)
	service := store.service(10000)

	result, err := service.Transfer(context.Background(), TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), result.SenderBalance)
	assert.Equal(t, int64(4000), result.RecipientBalance)
	assert.Equal(t, domain.StatusApproved, result.Transaction.Status)
	assert.Equal(t, domain.KindTransfer, result.Transaction.Kind)

	_, err = service.Transfer(context.Background(), TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 10000})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(4000), store.balance("ALICE"))
	assert.Equal(t, int64(4000), store.balance("BOB"))
	assert.Len(t, store.txs, 1)
	assert.Len(t, store.snapshots, 2)
}

func TestTransfer_Conservation(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
	}{
		{name: "Single coin", amount: 1},
		{name: "Typical amount", amount: 2500},
		{name: "Whole balance", amount: 7000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.seed("ALICE", 7000, false)
			store.seed("BOB", 1000, true)
			store.seed("DORA", 500, false)
			service := store.service(10000)
			before := store.balance("ALICE") + store.balance("BOB")

			_, err := service.Transfer(context.Background(), TransferRequest{Sender: "alice", Recipient: "bob", Amount: tt.amount})
			require.NoError(t, err)

			assert.Equal(t, before, store.balance("ALICE")+store.balance("BOB"))
			assert.Equal(t, int64(500), store.balance("DORA"))
			assert.GreaterOrEqual(t, store.balance("ALICE"), int64(0))
		})
	}
}

func TestTransfer_FailuresLeaveNoTrace(t *testing.T) {
	tests := []struct {
		name        string
		req         TransferRequest
		failOn      string
		expectedErr error
	}{
		{name: "Zero amount", req: TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 0}, expectedErr: domain.ErrInvalidAmount},
		{name: "Negative amount", req: TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: -3}, expectedErr: domain.ErrInvalidAmount},
		{name: "Unknown recipient", req: TransferRequest{Sender: "ALICE", Recipient: "ZED", Amount: 10}, expectedErr: domain.ErrUserNotFound},
		{name: "Unknown sender", req: TransferRequest{Sender: "ZED", Recipient: "BOB", Amount: 10}, expectedErr: domain.ErrUserNotFound},
		{name: "Overdraft", req: TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 5001}, expectedErr: domain.ErrInsufficientFunds},
		{name: "Unsupported kind", req: TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 5, Kind: domain.KindRedistribution}, expectedErr: domain.ErrValidation},
		{name: "Paying the privileged account", req: TransferRequest{Sender: "ALICE", Recipient: "chancellor", Amount: 5}, expectedErr: domain.ErrPrivilegedRecipient},
		{name: "Privileged account paying itself", req: TransferRequest{Sender: "CHANCELLOR", Recipient: "CHANCELLOR", Amount: 5}, expectedErr: domain.ErrSameParty},
		{name: "Store fails while recording", req: TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 100}, failOn: "transactions.Create", expectedErr: domain.ErrOperationFailed},
		{name: "Store fails while snapshotting", req: TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 100}, failOn: "snapshots.Create", expectedErr: domain.ErrOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.seed("ALICE", 5000, false)
			store.seed("BOB", 3000, false)
			store.seed("CHANCELLOR", 0, false)
			if tt.failOn != "" {
				store.failOn[tt.failOn] = errInjected
			}
			service := store.service(10000)

			result, err := service.Transfer(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, result)
			assert.Equal(t, int64(5000), store.balance("ALICE"))
			assert.Equal(t, int64(3000), store.balance("BOB"))
			assert.Equal(t, int64(0), store.balance("CHANCELLOR"))
			assert.Empty(t, store.txs)
			assert.Empty(t, store.snapshots)
		})
	}
}

func TestTransfer_SelfDealingIsPenalized(t *testing.T) {
	store := newMemStore()
	store.seed("ALICE", 5000, false)
	store.seed("CHANCELLOR", 0, false)
	service := store.service(10000)

	result, err := service.Transfer(context.Background(), TransferRequest{Sender: "alice", Recipient: "ALICE", Amount: 300})
	require.NoError(t, err)
	assert.True(t, result.Penalized)
	assert.Equal(t, "CHANCELLOR", result.Recipient)
	assert.Equal(t, domain.KindPenalty, result.Transaction.Kind)
	assert.Equal(t, int64(4700), store.balance("ALICE"))
	assert.Equal(t, int64(300), store.balance("CHANCELLOR"))

	_, err = service.Transfer(context.Background(), TransferRequest{Sender: "ALICE", Recipient: "ALICE", Amount: 99999})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(4700), store.balance("ALICE"))
}

func TestOffers(t *testing.T) {
	ctx := context.Background()

	t.Run("Offer moves nothing until approved", func(t *testing.T) {
		store := newMemStore()
		store.seed("ALICE", 5000, false)
		store.seed("BOB", 3000, false)
		service := store.service(10000)

		offer, err := service.Transfer(ctx, TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 700, Kind: domain.KindOffer, Note: "tip"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, offer.Transaction.Status)
		assert.Equal(t, int64(5000), store.balance("ALICE"))
		assert.Empty(t, store.snapshots)

		pending, err := service.PendingOffers(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "tip", pending[0].Note)

		resolved, err := service.ResolveOffer(ctx, offer.Transaction.ID, "BOB", true)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, resolved.Transaction.Status)
		assert.False(t, resolved.AutoDenied)
		assert.Equal(t, int64(4300), store.balance("ALICE"))
		assert.Equal(t, int64(3700), store.balance("BOB"))
		assert.Len(t, store.snapshots, 2)

		_, err = service.ResolveOffer(ctx, offer.Transaction.ID, "BOB", true)
		assert.ErrorIs(t, err, domain.ErrOfferNotFound)
	})

	t.Run("Denied offer has no balance effect", func(t *testing.T) {
		store := newMemStore()
		store.seed("ALICE", 5000, false)
		store.seed("BOB", 3000, false)
		service := store.service(10000)

		offer, err := service.Transfer(ctx, TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 700, Kind: domain.KindOffer})
		require.NoError(t, err)

		resolved, err := service.ResolveOffer(ctx, offer.Transaction.ID, "BOB", false)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDenied, resolved.Transaction.Status)
		assert.Equal(t, int64(5000), store.balance("ALICE"))
		assert.Equal(t, int64(3000), store.balance("BOB"))
	})

	t.Run("Approval re-checks the sender balance", func(t *testing.T) {
		store := newMemStore()
		store.seed("ALICE", 1000, false)
		store.seed("BOB", 3000, false)
		store.seed("DORA", 0, false)
		service := store.service(10000)

		offer, err := service.Transfer(ctx, TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 800, Kind: domain.KindOffer})
		require.NoError(t, err)
		_, err = service.Transfer(ctx, TransferRequest{Sender: "ALICE", Recipient: "DORA", Amount: 500})
		require.NoError(t, err)

		resolved, err := service.ResolveOffer(ctx, offer.Transaction.ID, "BOB", true)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		require.NotNil(t, resolved)
		assert.True(t, resolved.AutoDenied)
		assert.Equal(t, domain.StatusDenied, store.txs[0].Status)
		assert.Equal(t, int64(500), store.balance("ALICE"))
		assert.Equal(t, int64(3000), store.balance("BOB"))
	})

	t.Run("Only the recipient may resolve", func(t *testing.T) {
		store := newMemStore()
		store.seed("ALICE", 1000, false)
		store.seed("BOB", 3000, false)
		service := store.service(10000)

		offer, err := service.Transfer(ctx, TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 100, Kind: domain.KindOffer})
		require.NoError(t, err)

		_, err = service.ResolveOffer(ctx, offer.Transaction.ID, "ALICE", true)
		assert.ErrorIs(t, err, domain.ErrOfferNotFound)
		_, err = service.ResolveOffer(ctx, 404, "BOB", true)
		assert.ErrorIs(t, err, domain.ErrOfferNotFound)
		assert.Equal(t, domain.StatusPending, store.txs[0].Status)
	})
}

func TestRedistribute(t *testing.T) {
	ctx := context.Background()

	t.Run("Performer below threshold is skipped", func(t *testing.T) {
		store := newMemStore()
		store.seed("P", 100, true)
		store.seed("A1", 10, false)
		store.seed("A2", 20, false)
		service := store.service(10000)

		result, err := service.Redistribute(ctx, 60)
		require.NoError(t, err)
		assert.Equal(t, int64(120), result.RequiredPerPerformer)
		assert.Equal(t, 0, result.Eligible)
		assert.Equal(t, []string{"P"}, result.Skipped)
		assert.Equal(t, int64(0), result.TotalRedistributed)
		assert.Equal(t, int64(100), store.balance("P"))
		assert.Equal(t, int64(10), store.balance("A1"))
		assert.Equal(t, int64(20), store.balance("A2"))
		assert.Empty(t, store.txs)
	})

	t.Run("Debits equal credits and privileged account is left out", func(t *testing.T) {
		store := newMemStore()
		store.seed("RICH", 1000, true)
		store.seed("POOR", 5, true)
		store.seed("A1", 0, false)
		store.seed("A2", 0, false)
		store.seed("A3", 0, false)
		store.seed("CHANCELLOR", 0, false)
		service := store.service(10000)
		before := store.total()

		result, err := service.Redistribute(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, 2, result.PerformerCount)
		assert.Equal(t, 3, result.AudienceCount)
		assert.Equal(t, 1, result.Eligible)
		assert.Equal(t, []string{"POOR"}, result.Skipped)
		assert.Equal(t, int64(15), result.TotalRedistributed)
		assert.Equal(t, 3, result.Transactions)

		assert.Equal(t, int64(985), store.balance("RICH"))
		assert.Equal(t, int64(5), store.balance("POOR"))
		assert.Equal(t, int64(5), store.balance("A1"))
		assert.Equal(t, int64(5), store.balance("A3"))
		assert.Equal(t, int64(0), store.balance("CHANCELLOR"))
		assert.Equal(t, before, store.total())
		assert.Len(t, store.snapshots, 6)
		for _, tx := range store.txs {
			assert.Equal(t, domain.KindRedistribution, tx.Kind)
		}
	})

	t.Run("No participants", func(t *testing.T) {
		store := newMemStore()
		store.seed("A1", 0, false)
		service := store.service(10000)

		_, err := service.Redistribute(ctx, 5)
		assert.ErrorIs(t, err, domain.ErrNoParticipants)
	})

	t.Run("Store failure rolls back the whole cycle", func(t *testing.T) {
		store := newMemStore()
		store.seed("P", 1000, true)
		store.seed("A1", 0, false)
		store.failOn["snapshots.CreateForAll"] = errInjected
		service := store.service(10000)

		_, err := service.Redistribute(ctx, 5)
		assert.ErrorIs(t, err, domain.ErrOperationFailed)
		assert.ErrorIs(t, err, errInjected)
		assert.Equal(t, int64(1000), store.balance("P"))
		assert.Empty(t, store.txs)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := newMemStore().service(10000).Redistribute(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("Amount that would wrap the per-performer total is refused", func(t *testing.T) {
		store := newMemStore()
		store.seed("PERF", 10000, true)
		for _, name := range []string{"AAA", "BBB", "CCC", "DDD"} {
			store.seed(name, 0, false)
		}
		service := store.service(10000)

		result, err := service.Redistribute(ctx, 1<<62+1)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.NotErrorIs(t, err, domain.ErrOperationFailed)
		assert.Nil(t, result)
		assert.Equal(t, int64(10000), store.balance("PERF"))
		assert.Equal(t, int64(0), store.balance("AAA"))
		assert.Empty(t, store.txs)
	})
}

func TestCreateUser_Twice(t *testing.T) {
	store := newMemStore()
	service := store.service(10000)

	user, err := service.CreateUser(context.Background(), "CARL", false)
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, int64(10000), user.Balance)

	_, err = service.CreateUser(context.Background(), "carl", true)
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	assert.Len(t, store.users, 1)
	assert.Len(t, store.snapshots, 1)
}

func TestForceTransfer(t *testing.T) {
	store := newMemStore()
	store.seed("ALICE", 5000, false)
	store.seed("BOB", 3000, true)
	store.seed("CHANCELLOR", 0, false)
	service := store.service(10000)
	ctx := context.Background()

	result, err := service.ForceTransfer(ctx, "bob", "alice", 1000, "fine")
	require.NoError(t, err)
	assert.Equal(t, domain.KindForced, result.Transaction.Kind)
	assert.Equal(t, "BOB", result.Sender)
	assert.Equal(t, "ALICE", result.Recipient)
	assert.Equal(t, int64(2000), store.balance("BOB"))
	assert.Equal(t, int64(6000), store.balance("ALICE"))

	_, err = service.ForceTransfer(ctx, "ALICE", "CHANCELLOR", 10, "")
	assert.ErrorIs(t, err, domain.ErrSameParty)
	_, err = service.ForceTransfer(ctx, "ALICE", "ALICE", 10, "")
	assert.ErrorIs(t, err, domain.ErrSameParty)
	_, err = service.ForceTransfer(ctx, "BOB", "ALICE", 2001, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestEnsurePrivilegedAccount(t *testing.T) {
	store := newMemStore()
	service := store.service(10000)

	user, err := service.EnsurePrivilegedAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CHANCELLOR", user.Username)
	assert.Equal(t, int64(0), user.Balance)
	assert.False(t, user.IsPerformer)

	again, err := service.EnsurePrivilegedAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Len(t, store.users, 1)
}

func TestResetBalances(t *testing.T) {
	store := newMemStore()
	store.seed("ALICE", 5, false)
	store.seed("BOB", 19995, true)
	store.seed("CHANCELLOR", 700, false)
	service := store.service(10000)
	_, err := service.Transfer(context.Background(), TransferRequest{Sender: "BOB", Recipient: "ALICE", Amount: 5})
	require.NoError(t, err)

	n, err := service.ResetBalances(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, int64(10000), store.balance("ALICE"))
	assert.Equal(t, int64(10000), store.balance("BOB"))
	assert.Equal(t, int64(0), store.balance("CHANCELLOR"))
	assert.Empty(t, store.txs)
	assert.Len(t, store.snapshots, 3)
}

func TestSetPerformerStatus(t *testing.T) {
	service, m := NewMock(t)

	m.users.EXPECT().SetPerformer(gomock.Any(), "BOB", true).Return(nil)
	assert.NoError(t, service.SetPerformerStatus(context.Background(), "bob", true))

	m.users.EXPECT().SetPerformer(gomock.Any(), "GHOST", true).Return(domain.ErrUserNotFound)
	assert.ErrorIs(t, service.SetPerformerStatus(context.Background(), "ghost", true), domain.ErrUserNotFound)

	m.users.EXPECT().SetPerformer(gomock.Any(), "BOB", false).Return(errors.New("conn reset"))
	assert.ErrorIs(t, service.SetPerformerStatus(context.Background(), "BOB", false), domain.ErrOperationFailed)

	assert.ErrorIs(t, service.SetPerformerStatus(context.Background(), "CHANCELLOR", true), domain.ErrValidation)
}

func TestTransactionHistory(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		filter      HistoryFilter
		prepareMock func()
	}{
		{
			name:   "Defaults",
			filter: HistoryFilter{},
			prepareMock: func() {
				m.transactions.EXPECT().History(gomock.Any(), "", DefaultHistoryLimit, 0).Return(nil, nil)
			},
		},
		{
			name:   "Limit is capped and username normalized",
			filter: HistoryFilter{Username: "alice", Limit: 10000, Offset: -4},
			prepareMock: func() {
				m.transactions.EXPECT().History(gomock.Any(), "ALICE", MaxHistoryLimit, 0).Return(nil, nil)
			},
		},
		{
			name:   "Explicit page",
			filter: HistoryFilter{Limit: 20, Offset: 40},
			prepareMock: func() {
				m.transactions.EXPECT().History(gomock.Any(), "", 20, 40).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.TransactionHistory(context.Background(), tt.filter)
			assert.NoError(t, err)
		})
	}
}

func TestBalanceHistoryAndPruning(t *testing.T) {
	service, m := NewMock(t)
	now := time.Date(2024, 5, 1, 21, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	m.snapshots.EXPECT().History(gomock.Any(), now.Add(-DefaultHistoryWindow)).Return([]domain.SnapshotView{{Username: "ALICE"}}, nil)
	history, err := service.BalanceHistory(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	m.snapshots.EXPECT().DeleteOlderThan(gomock.Any(), now.Add(-6*time.Hour)).Return(int64(12), nil)
	pruned, err := service.PruneSnapshots(context.Background(), 6*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(12), pruned)

	m.snapshots.EXPECT().CreateForAll(gomock.Any()).Return(int64(0), errors.New("boom"))
	_, err = service.SnapshotAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrOperationFailed)
}

func TestMarketStats(t *testing.T) {
	store := newMemStore()
	store.seed("ALICE", 5000, false)
	store.seed("BOB", 3000, true)
	service := store.service(10000)
	_, err := service.Transfer(context.Background(), TransferRequest{Sender: "ALICE", Recipient: "BOB", Amount: 250})
	require.NoError(t, err)

	stats, err := service.MarketStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8000), stats.TotalCoins)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.Performers)
	assert.Equal(t, domain.TransactionStats{Count: 1, Volume: 250}, stats.Transactions)
	require.Len(t, stats.TopHolders, 2)
	assert.Equal(t, "ALICE", stats.TopHolders[0].Username)
	assert.Len(t, stats.Recent, 1)
}
