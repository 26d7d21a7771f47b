package ledgerservice

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/pg"
)

var errInjected = errors.New("injected store failure")

// memStore keeps users, transactions and snapshots in memory. Begin restores
// the previous state when fn fails, like a rolled back database transaction.
type memStore struct {
	users     []domain.User
	txs       []domain.Transaction
	snapshots []domain.BalanceSnapshot
	failOn    map[string]error
	now       time.Time
}

func newMemStore() *memStore {
	return &memStore{
		failOn: map[string]error{},
		now:    time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) fail(op string) error {
	return m.failOn[op]
}

func (m *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	users := append([]domain.User(nil), m.users...)
	txs := append([]domain.Transaction(nil), m.txs...)
	snapshots := append([]domain.BalanceSnapshot(nil), m.snapshots...)
	if err := fn(ctx); err != nil {
		m.users, m.txs, m.snapshots = users, txs, snapshots
		return err
	}
	return nil
}

func (m *memStore) service(initial int64) *Service {
	s := New(memUsers{m}, memTransactions{m}, memSnapshots{m}, m, Options{InitialBalance: initial, PrivilegedUsername: "CHANCELLOR"})
	s.now = func() time.Time { return m.now }
	return s
}

func (m *memStore) seed(username string, balance int64, isPerformer bool) domain.User {
	u := domain.User{ID: len(m.users) + 1, Username: username, Balance: balance, IsPerformer: isPerformer, CreatedAt: m.now}
	m.users = append(m.users, u)
	return u
}

func (m *memStore) balance(username string) int64 {
	for _, u := range m.users {
		if u.Username == username {
			return u.Balance
		}
	}
	return -1
}

func (m *memStore) total() int64 {
	var sum int64
	for _, u := range m.users {
		sum += u.Balance
	}
	return sum
}

func (m *memStore) userByID(id int) *domain.User {
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i]
		}
	}
	return nil
}

func (m *memStore) view(tx domain.Transaction) domain.TransactionView {
	return domain.TransactionView{
		ID:        tx.ID,
		Sender:    m.userByID(tx.SenderID).Username,
		Recipient: m.userByID(tx.RecipientID).Username,
		Amount:    tx.Amount,
		Kind:      tx.Kind,
		Status:    tx.Status,
		Note:      tx.Note,
		CreatedAt: tx.CreatedAt,
	}
}

type memUsers struct{ m *memStore }

func (r memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if err := r.m.fail("users.Create"); err != nil {
		return nil, err
	}
	for _, u := range r.m.users {
		if u.Username == user.Username {
			return nil, domain.ErrDuplicateUser
		}
	}
	created := r.m.seed(user.Username, user.Balance, user.IsPerformer)
	return &created, nil
}

func (r memUsers) find(username string) (*domain.User, error) {
	for _, u := range r.m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(username)
}

func (r memUsers) FindByUsernameForUpdate(_ context.Context, username string) (*domain.User, error) {
	if err := r.m.fail("users.FindByUsernameForUpdate"); err != nil {
		return nil, err
	}
	return r.find(username)
}

func (r memUsers) FindByIDForUpdate(_ context.Context, id int) (*domain.User, error) {
	if u := r.m.userByID(id); u != nil {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r memUsers) AddBalance(_ context.Context, id int, delta int64) (int64, error) {
	if err := r.m.fail("users.AddBalance"); err != nil {
		return 0, err
	}
	u := r.m.userByID(id)
	if u == nil {
		return 0, domain.ErrUserNotFound
	}
	u.Balance += delta
	return u.Balance, nil
}

func (r memUsers) SetPerformer(_ context.Context, username string, isPerformer bool) error {
	for i := range r.m.users {
		if r.m.users[i].Username == username {
			r.m.users[i].IsPerformer = isPerformer
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r memUsers) ListByBalance(_ context.Context, limit int) ([]domain.User, error) {
	users := append([]domain.User(nil), r.m.users...)
	sort.SliceStable(users, func(i, j int) bool { return users[i].Balance > users[j].Balance })
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r memUsers) ListByRole(_ context.Context, isPerformer bool, exclude string) ([]domain.User, error) {
	var users []domain.User
	for _, u := range r.m.users {
		if u.IsPerformer == isPerformer && u.Username != exclude {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r memUsers) ListAll(_ context.Context) ([]domain.User, error) {
	if err := r.m.fail("users.ListAll"); err != nil {
		return nil, err
	}
	users := append([]domain.User(nil), r.m.users...)
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (r memUsers) ResetBalances(_ context.Context, amount int64, except string, exceptBalance int64) (int64, error) {
	for i := range r.m.users {
		if r.m.users[i].Username == except {
			r.m.users[i].Balance = exceptBalance
		} else {
			r.m.users[i].Balance = amount
		}
	}
	return int64(len(r.m.users)), nil
}

func (r memUsers) Stats(_ context.Context) (*domain.UserStats, error) {
	stats := &domain.UserStats{TotalUsers: len(r.m.users)}
	for _, u := range r.m.users {
		stats.TotalCoins += u.Balance
		if u.IsPerformer {
			stats.Performers++
		} else {
			stats.Audience++
		}
	}
	return stats, nil
}

type memTransactions struct{ m *memStore }

func (r memTransactions) Create(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if err := r.m.fail("transactions.Create"); err != nil {
		return nil, err
	}
	tx.ID = len(r.m.txs) + 1
	tx.CreatedAt = r.m.now
	r.m.txs = append(r.m.txs, *tx)
	return tx, nil
}

func (r memTransactions) FindPendingForUpdate(_ context.Context, id int) (*domain.Transaction, error) {
	for _, tx := range r.m.txs {
		if tx.ID == id && tx.Status == domain.StatusPending {
			tx := tx
			return &tx, nil
		}
	}
	return nil, nil
}

func (r memTransactions) UpdateStatus(_ context.Context, id int, status domain.TransactionStatus, resolvedAt time.Time) error {
	for i := range r.m.txs {
		if r.m.txs[i].ID == id {
			r.m.txs[i].Status = status
			r.m.txs[i].ResolvedAt = &resolvedAt
			return nil
		}
	}
	return domain.ErrOfferNotFound
}

func (r memTransactions) History(_ context.Context, username string, limit, offset int) ([]domain.TransactionView, error) {
	var views []domain.TransactionView
	for i := len(r.m.txs) - 1; i >= 0; i-- {
		v := r.m.view(r.m.txs[i])
		if username == "" || strings.EqualFold(v.Sender, username) || strings.EqualFold(v.Recipient, username) {
			views = append(views, v)
		}
	}
	if offset >= len(views) {
		return nil, nil
	}
	views = views[offset:]
	if len(views) > limit {
		views = views[:limit]
	}
	return views, nil
}

func (r memTransactions) PendingForRecipient(_ context.Context, recipientID int) ([]domain.TransactionView, error) {
	var views []domain.TransactionView
	for _, tx := range r.m.txs {
		if tx.RecipientID == recipientID && tx.Status == domain.StatusPending {
			views = append(views, r.m.view(tx))
		}
	}
	return views, nil
}

func (r memTransactions) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.m.txs))
	r.m.txs = nil
	return n, nil
}

func (r memTransactions) Stats(_ context.Context) (*domain.TransactionStats, error) {
	stats := &domain.TransactionStats{}
	for _, tx := range r.m.txs {
		if tx.Status == domain.StatusApproved {
			stats.Count++
			stats.Volume += tx.Amount
		}
	}
	return stats, nil
}

type memSnapshots struct{ m *memStore }

func (r memSnapshots) Create(_ context.Context, userID int, balance int64) error {
	if err := r.m.fail("snapshots.Create"); err != nil {
		return err
	}
	r.m.snapshots = append(r.m.snapshots, domain.BalanceSnapshot{ID: len(r.m.snapshots) + 1, UserID: userID, Balance: balance, TakenAt: r.m.now})
	return nil
}

func (r memSnapshots) CreateForAll(ctx context.Context) (int64, error) {
	if err := r.m.fail("snapshots.CreateForAll"); err != nil {
		return 0, err
	}
	for _, u := range r.m.users {
		r.m.snapshots = append(r.m.snapshots, domain.BalanceSnapshot{ID: len(r.m.snapshots) + 1, UserID: u.ID, Balance: u.Balance, TakenAt: r.m.now})
	}
	return int64(len(r.m.users)), nil
}

func (r memSnapshots) History(_ context.Context, since time.Time) ([]domain.SnapshotView, error) {
	var views []domain.SnapshotView
	for _, s := range r.m.snapshots {
		if !s.TakenAt.Before(since) {
			views = append(views, domain.SnapshotView{Username: r.m.userByID(s.UserID).Username, Balance: s.Balance, TakenAt: s.TakenAt})
		}
	}
	return views, nil
}

func (r memSnapshots) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []domain.BalanceSnapshot
	for _, s := range r.m.snapshots {
		if !s.TakenAt.Before(cutoff) {
			kept = append(kept, s)
		}
	}
	n := int64(len(r.m.snapshots) - len(kept))
	r.m.snapshots = kept
	return n, nil
}

func (r memSnapshots) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.m.snapshots))
	r.m.snapshots = nil
	return n, nil
}
