package ledgerservice

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/alexrkaufman/strawcoin/pkg/validate"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit  = 50
	MaxHistoryLimit      = 500
	DefaultHistoryWindow = 30 * time.Minute

	statsTopHolders = 10
	statsRecent     = 10
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByUsernameForUpdate(ctx context.Context, username string) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	AddBalance(ctx context.Context, id int, delta int64) (int64, error)
	SetPerformer(ctx context.Context, username string, isPerformer bool) error
	ListByBalance(ctx context.Context, limit int) ([]domain.User, error)
	ListByRole(ctx context.Context, isPerformer bool, exclude string) ([]domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	ResetBalances(ctx context.Context, amount int64, except string, exceptBalance int64) (int64, error)
	Stats(ctx context.Context) (*domain.UserStats, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindPendingForUpdate(ctx context.Context, id int) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id int, status domain.TransactionStatus, resolvedAt time.Time) error
	History(ctx context.Context, username string, limit, offset int) ([]domain.TransactionView, error)
	PendingForRecipient(ctx context.Context, recipientID int) ([]domain.TransactionView, error)
	DeleteAll(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*domain.TransactionStats, error)
}

type SnapshotRepo interface {
	Create(ctx context.Context, userID int, balance int64) error
	CreateForAll(ctx context.Context) (int64, error)
	History(ctx context.Context, since time.Time) ([]domain.SnapshotView, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type Options struct {
	InitialBalance     int64
	PrivilegedUsername string
}

type Service struct {
	users        UserRepo
	transactions TransactionRepo
	snapshots    SnapshotRepo
	txManager    pg.TXManager
	opts         Options
	now          func() time.Time
}

func New(users UserRepo, transactions TransactionRepo, snapshots SnapshotRepo, txManager pg.TXManager, opts Options) *Service {
	return &Service{
		users:        users,
		transactions: transactions,
		snapshots:    snapshots,
		txManager:    txManager,
		opts:         opts,
		now:          time.Now,
	}
}

type TransferRequest struct {
	Sender    string
	Recipient string
	Amount    int64
	Kind      domain.TransactionKind
	Note      string
}

// TransferResult describes a completed transfer. For offers the transaction
// is pending and no balance has moved.
type TransferResult struct {
	Transaction      *domain.Transaction
	Sender           string
	Recipient        string
	SenderBalance    int64
	RecipientBalance int64
	Penalized        bool
}

type ResolveResult struct {
	Transaction *domain.Transaction
	AutoDenied  bool
}

type HistoryFilter struct {
	Username string
	Limit    int
	Offset   int
}

func (s *Service) PrivilegedUsername() string {
	return s.opts.PrivilegedUsername
}

func (s *Service) CreateUser(ctx context.Context, username string, isPerformer bool) (*domain.User, error) {
	name, err := validate.Username(username)
	if err != nil {
		return nil, err
	}
	return s.createUser(ctx, &domain.User{Username: name, Balance: s.opts.InitialBalance, IsPerformer: isPerformer})
}

func (s *Service) createUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var created *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		u, err := s.users.Create(ctx, user)
		if err != nil {
			return err
		}
		created = u
		return s.snapshots.Create(ctx, u.ID, u.Balance)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			zap.L().Info("user already exists", zap.String("username", user.Username))
			return nil, err
		}
		zap.L().Error("can't create user", zap.String("username", user.Username), zap.Error(err))
		return nil, domain.OperationFailed(err)
	}
	zap.L().Info("user created", zap.String("username", created.Username), zap.Bool("is_performer", created.IsPerformer))
	return created, nil
}

// EnsurePrivilegedAccount creates the privileged account with an empty
// balance unless it already exists.
func (s *Service) EnsurePrivilegedAccount(ctx context.Context) (*domain.User, error) {
	existing, err := s.users.FindByUsername(ctx, s.opts.PrivilegedUsername)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	user, err := s.createUser(ctx, &domain.User{Username: s.opts.PrivilegedUsername})
	if errors.Is(err, domain.ErrDuplicateUser) {
		return s.users.FindByUsername(ctx, s.opts.PrivilegedUsername)
	}
	return user, err
}

func (s *Service) GetUser(ctx context.Context, username string) (*domain.User, error) {
	name, err := validate.Username(username)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByUsername(ctx, name)
	if err != nil {
		zap.L().Error("failed to get user", zap.String("username", name), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetBalance(ctx context.Context, username string) (int64, error) {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return 0, err
	}
	return user.Balance, nil
}

// Transfer moves coins between two users, or records a pending offer when
// req.Kind is an offer. A user paying themselves is charged the same amount
// as a penalty paid to the privileged account.
func (s *Service) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	if err := validate.Amount(req.Amount); err != nil {
		return nil, err
	}
	sender, err := validate.Username(req.Sender)
	if err != nil {
		return nil, err
	}
	recipient, err := validate.Username(req.Recipient)
	if err != nil {
		return nil, err
	}

	kind := req.Kind
	switch kind {
	case "":
		kind = domain.KindTransfer
	case domain.KindTransfer, domain.KindOffer:
	default:
		return nil, domain.Validation("unsupported transfer kind")
	}

	privileged := s.opts.PrivilegedUsername
	penalized := false
	switch {
	case sender == recipient && sender == privileged:
		return nil, domain.ErrSameParty
	case sender == recipient:
		recipient = privileged
		kind = domain.KindPenalty
		penalized = true
	case recipient == privileged:
		return nil, domain.ErrPrivilegedRecipient
	}

	var result *TransferResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		from, to, err := s.lockPair(ctx, sender, recipient)
		if err != nil {
			return err
		}
		if from.Balance < req.Amount {
			return domain.ErrInsufficientFunds
		}
		if kind == domain.KindOffer {
			tx, err := s.transactions.Create(ctx, &domain.Transaction{
				SenderID:    from.ID,
				RecipientID: to.ID,
				Amount:      req.Amount,
				Kind:        domain.KindOffer,
				Status:      domain.StatusPending,
				Note:        req.Note,
			})
			if err != nil {
				return err
			}
			result = &TransferResult{Transaction: tx, Sender: from.Username, Recipient: to.Username, SenderBalance: from.Balance, RecipientBalance: to.Balance}
			return nil
		}
		result, err = s.apply(ctx, from, to, req.Amount, kind, req.Note)
		return err
	})
	if err != nil {
		return nil, s.transferFailed(sender, recipient, req.Amount, err)
	}
	result.Penalized = penalized

	zap.L().Info("transfer completed",
		zap.String("sender", sender),
		zap.String("recipient", recipient),
		zap.Int64("amount", req.Amount),
		zap.String("kind", string(kind)),
		zap.String("status", string(result.Transaction.Status)),
	)
	return result, nil
}

// ForceTransfer moves coins between two ordinary users on behalf of the
// privileged account.
func (s *Service) ForceTransfer(ctx context.Context, sender, recipient string, amount int64, note string) (*TransferResult, error) {
	if err := validate.Amount(amount); err != nil {
		return nil, err
	}
	from, err := validate.Username(sender)
	if err != nil {
		return nil, err
	}
	to, err := validate.Username(recipient)
	if err != nil {
		return nil, err
	}
	if from == to || from == s.opts.PrivilegedUsername || to == s.opts.PrivilegedUsername {
		return nil, domain.ErrSameParty
	}

	var result *TransferResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		fromUser, toUser, err := s.lockPair(ctx, from, to)
		if err != nil {
			return err
		}
		if fromUser.Balance < amount {
			return domain.ErrInsufficientFunds
		}
		result, err = s.apply(ctx, fromUser, toUser, amount, domain.KindForced, note)
		return err
	})
	if err != nil {
		return nil, s.transferFailed(from, to, amount, err)
	}
	zap.L().Info("forced transfer completed", zap.String("sender", from), zap.String("recipient", to), zap.Int64("amount", amount))
	return result, nil
}

func (s *Service) transferFailed(sender, recipient string, amount int64, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		zap.L().Info("transfer rejected",
			zap.String("sender", sender),
			zap.String("recipient", recipient),
			zap.Int64("amount", amount),
			zap.String("code", string(derr.Code)),
		)
		return err
	}
	zap.L().Error("transfer failed", zap.String("sender", sender), zap.String("recipient", recipient), zap.Error(err))
	return domain.OperationFailed(err)
}

// lockPair locks both rows in username order so that two opposite transfers
// cannot deadlock each other.
func (s *Service) lockPair(ctx context.Context, sender, recipient string) (*domain.User, *domain.User, error) {
	first, second := sender, recipient
	if second < first {
		first, second = second, first
	}
	a, err := s.users.FindByUsernameForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.users.FindByUsernameForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}
	if a == nil || b == nil {
		return nil, nil, domain.ErrUserNotFound
	}
	if first == sender {
		return a, b, nil
	}
	return b, a, nil
}

// apply debits from, credits to and records an approved transaction with a
// snapshot for both parties. Callers run it inside a transaction.
func (s *Service) apply(ctx context.Context, from, to *domain.User, amount int64, kind domain.TransactionKind, note string) (*TransferResult, error) {
	senderBalance, err := s.users.AddBalance(ctx, from.ID, -amount)
	if err != nil {
		return nil, err
	}
	recipientBalance, err := s.users.AddBalance(ctx, to.ID, amount)
	if err != nil {
		return nil, err
	}
	now := s.now()
	tx, err := s.transactions.Create(ctx, &domain.Transaction{
		SenderID:    from.ID,
		RecipientID: to.ID,
		Amount:      amount,
		Kind:        kind,
		Status:      domain.StatusApproved,
		Note:        note,
		ResolvedAt:  &now,
	})
	if err != nil {
		return nil, err
	}
	if err := s.snapshots.Create(ctx, from.ID, senderBalance); err != nil {
		return nil, err
	}
	if err := s.snapshots.Create(ctx, to.ID, recipientBalance); err != nil {
		return nil, err
	}
	return &TransferResult{
		Transaction:      tx,
		Sender:           from.Username,
		Recipient:        to.Username,
		SenderBalance:    senderBalance,
		RecipientBalance: recipientBalance,
	}, nil
}

// ResolveOffer approves or denies a pending offer addressed to recipient.
// Approval re-reads the sender's balance under lock; if it no longer covers
// the amount the offer is denied and ErrInsufficientFunds is returned along
// with the result.
func (s *Service) ResolveOffer(ctx context.Context, id int, recipient string, approve bool) (*ResolveResult, error) {
	name, err := validate.Username(recipient)
	if err != nil {
		return nil, err
	}

	var result *ResolveResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		offer, err := s.transactions.FindPendingForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if offer == nil {
			return domain.ErrOfferNotFound
		}
		to, err := s.users.FindByIDForUpdate(ctx, offer.RecipientID)
		if err != nil {
			return err
		}
		if to == nil || to.Username != name {
			return domain.ErrOfferNotFound
		}

		now := s.now()
		if !approve {
			return s.deny(ctx, offer, now, &result, false)
		}

		from, err := s.users.FindByIDForUpdate(ctx, offer.SenderID)
		if err != nil {
			return err
		}
		if from == nil {
			return domain.ErrUserNotFound
		}
		if from.Balance < offer.Amount {
			return s.deny(ctx, offer, now, &result, true)
		}

		senderBalance, err := s.users.AddBalance(ctx, from.ID, -offer.Amount)
		if err != nil {
			return err
		}
		recipientBalance, err := s.users.AddBalance(ctx, to.ID, offer.Amount)
		if err != nil {
			return err
		}
		if err := s.transactions.UpdateStatus(ctx, offer.ID, domain.StatusApproved, now); err != nil {
			return err
		}
		if err := s.snapshots.Create(ctx, from.ID, senderBalance); err != nil {
			return err
		}
		if err := s.snapshots.Create(ctx, to.ID, recipientBalance); err != nil {
			return err
		}
		offer.Status = domain.StatusApproved
		offer.ResolvedAt = &now
		result = &ResolveResult{Transaction: offer}
		return nil
	})
	if err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) {
			zap.L().Info("offer not resolved", zap.Int("offer_id", id), zap.String("code", string(derr.Code)))
			return nil, err
		}
		zap.L().Error("failed to resolve offer", zap.Int("offer_id", id), zap.Error(err))
		return nil, domain.OperationFailed(err)
	}

	zap.L().Info("offer resolved",
		zap.Int("offer_id", id),
		zap.String("status", string(result.Transaction.Status)),
		zap.Bool("auto_denied", result.AutoDenied),
	)
	if result.AutoDenied {
		return result, domain.ErrInsufficientFunds
	}
	return result, nil
}

func (s *Service) deny(ctx context.Context, offer *domain.Transaction, now time.Time, result **ResolveResult, auto bool) error {
	if err := s.transactions.UpdateStatus(ctx, offer.ID, domain.StatusDenied, now); err != nil {
		return err
	}
	offer.Status = domain.StatusDenied
	offer.ResolvedAt = &now
	*result = &ResolveResult{Transaction: offer, AutoDenied: auto}
	return nil
}

func (s *Service) PendingOffers(ctx context.Context, recipient string) ([]domain.TransactionView, error) {
	user, err := s.GetUser(ctx, recipient)
	if err != nil {
		return nil, err
	}
	offers, err := s.transactions.PendingForRecipient(ctx, user.ID)
	if err != nil {
		zap.L().Error("failed to list pending offers", zap.String("username", user.Username), zap.Error(err))
		return nil, err
	}
	return offers, nil
}

// Redistribute charges every performer amountPerAudience for each audience
// member and pays it out to them. Performers who cannot cover the full
// amount are skipped untouched. The privileged account takes part on
// neither side.
func (s *Service) Redistribute(ctx context.Context, amountPerAudience int64) (*domain.RedistributionResult, error) {
	if err := validate.Amount(amountPerAudience); err != nil {
		return nil, err
	}

	var result *domain.RedistributionResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		performers, err := s.users.ListByRole(ctx, true, s.opts.PrivilegedUsername)
		if err != nil {
			return err
		}
		audience, err := s.users.ListByRole(ctx, false, s.opts.PrivilegedUsername)
		if err != nil {
			return err
		}
		if len(performers) == 0 || len(audience) == 0 {
			return domain.ErrNoParticipants
		}

		required, err := validate.Total(amountPerAudience, len(audience))
		if err != nil {
			return err
		}
		res := &domain.RedistributionResult{
			PerformerCount:       len(performers),
			AudienceCount:        len(audience),
			AmountPerAudience:    amountPerAudience,
			RequiredPerPerformer: required,
		}
		now := s.now()
		for _, p := range performers {
			performer, err := s.users.FindByIDForUpdate(ctx, p.ID)
			if err != nil {
				return err
			}
			if performer == nil || performer.Balance < required {
				res.Skipped = append(res.Skipped, p.Username)
				continue
			}
			if err := s.payEach(ctx, performer, audience, amountPerAudience, required, domain.KindRedistribution, "", now); err != nil {
				return err
			}
			res.Transactions += len(audience)
			res.Eligible++
			res.TotalRedistributed += required
		}
		if _, err := s.snapshots.CreateForAll(ctx); err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoParticipants) {
			zap.L().Info("redistribution skipped: no performers or audience")
			return nil, err
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			zap.L().Warn("redistribution refused", zap.Int64("amount_per_audience", amountPerAudience), zap.Error(err))
			return nil, err
		}
		zap.L().Error("redistribution failed", zap.Error(err))
		return nil, domain.OperationFailed(err)
	}

	zap.L().Info("redistribution completed",
		zap.Int("performers", result.PerformerCount),
		zap.Int("eligible", result.Eligible),
		zap.Int("audience", result.AudienceCount),
		zap.Int64("total", result.TotalRedistributed),
	)
	return result, nil
}

// payEach debits sender total and pays amount to every recipient, recording
// one approved transaction per payment. Callers run it inside a transaction
// with the sender's row locked.
func (s *Service) payEach(ctx context.Context, sender *domain.User, recipients []domain.User, amount, total int64, kind domain.TransactionKind, note string, now time.Time) error {
	if _, err := s.users.AddBalance(ctx, sender.ID, -total); err != nil {
		return err
	}
	for _, r := range recipients {
		if _, err := s.users.AddBalance(ctx, r.ID, amount); err != nil {
			return err
		}
		_, err := s.transactions.Create(ctx, &domain.Transaction{
			SenderID:    sender.ID,
			RecipientID: r.ID,
			Amount:      amount,
			Kind:        kind,
			Status:      domain.StatusApproved,
			Note:        note,
			ResolvedAt:  &now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ResetBalances restores every balance to the starting amount, leaves the
// privileged account empty and wipes the transaction and snapshot history.
func (s *Service) ResetBalances(ctx context.Context) (int64, error) {
	var reset int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		n, err := s.users.ResetBalances(ctx, s.opts.InitialBalance, s.opts.PrivilegedUsername, 0)
		if err != nil {
			return err
		}
		if _, err := s.transactions.DeleteAll(ctx); err != nil {
			return err
		}
		if _, err := s.snapshots.DeleteAll(ctx); err != nil {
			return err
		}
		if _, err := s.snapshots.CreateForAll(ctx); err != nil {
			return err
		}
		reset = n
		return nil
	})
	if err != nil {
		zap.L().Error("failed to reset balances", zap.Error(err))
		return 0, domain.OperationFailed(err)
	}
	zap.L().Info("balances reset", zap.Int64("users", reset), zap.Int64("initial_balance", s.opts.InitialBalance))
	return reset, nil
}

func (s *Service) SetPerformerStatus(ctx context.Context, username string, isPerformer bool) error {
	name, err := validate.Username(username)
	if err != nil {
		return err
	}
	if name == s.opts.PrivilegedUsername && isPerformer {
		return domain.Validation("the privileged account cannot perform")
	}
	if err := s.users.SetPerformer(ctx, name, isPerformer); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return domain.OperationFailed(err)
	}
	zap.L().Info("performer status changed", zap.String("username", name), zap.Bool("is_performer", isPerformer))
	return nil
}

func (s *Service) ListPerformers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, true, s.opts.PrivilegedUsername)
}

func (s *Service) ListAudience(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, false, s.opts.PrivilegedUsername)
}

// Leaderboard lists users richest first. limit <= 0 lists everyone.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	users, err := s.users.ListByBalance(ctx, limit)
	if err != nil {
		zap.L().Error("failed to load leaderboard", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) TransactionHistory(ctx context.Context, filter HistoryFilter) ([]domain.TransactionView, error) {
	username := ""
	if filter.Username != "" {
		name, err := validate.Username(filter.Username)
		if err != nil {
			return nil, err
		}
		username = name
	}
	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	return s.transactions.History(ctx, username, limit, offset)
}

// BalanceHistory returns snapshots from the last window, oldest first.
func (s *Service) BalanceHistory(ctx context.Context, window time.Duration) ([]domain.SnapshotView, error) {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return s.snapshots.History(ctx, s.now().Add(-window))
}

func (s *Service) SnapshotAll(ctx context.Context) (int64, error) {
	n, err := s.snapshots.CreateForAll(ctx)
	if err != nil {
		return 0, domain.OperationFailed(err)
	}
	return n, nil
}

func (s *Service) PruneSnapshots(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := s.snapshots.DeleteOlderThan(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, domain.OperationFailed(err)
	}
	return n, nil
}

func (s *Service) MarketStats(ctx context.Context) (*domain.MarketStats, error) {
	users, err := s.users.Stats(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.Stats(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.users.ListByBalance(ctx, statsTopHolders)
	if err != nil {
		return nil, err
	}
	recent, err := s.transactions.History(ctx, "", statsRecent, 0)
	if err != nil {
		return nil, err
	}
	return &domain.MarketStats{
		UserStats:    *users,
		Transactions: *transactions,
		TopHolders:   top,
		Recent:       recent,
	}, nil
}
