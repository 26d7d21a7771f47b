package domain

import "time"

type User struct {
	ID          int       `db:"id"`
	Username    string    `db:"username"`
	Balance     int64     `db:"coin_balance"`
	IsPerformer bool      `db:"is_performer"`
	CreatedAt   time.Time `db:"created_at"`
}

// TransactionKind tells how a ledger entry came to be.
type TransactionKind string

const (
	KindTransfer       TransactionKind = "transfer"
	KindOffer          TransactionKind = "offer"
	KindRedistribution TransactionKind = "redistribution"
	KindPenalty        TransactionKind = "penalty"
	KindForced         TransactionKind = "forced"
)

// TransactionStatus is approved for every entry that moved coins. Only offers
// start out pending.
type TransactionStatus string

const (
	StatusApproved TransactionStatus = "approved"
	StatusPending  TransactionStatus = "pending"
	StatusDenied   TransactionStatus = "denied"
)

type Transaction struct {
	ID          int               `db:"id"`
	SenderID    int               `db:"sender_id"`
	RecipientID int               `db:"recipient_id"`
	Amount      int64             `db:"amount"`
	Kind        TransactionKind   `db:"kind"`
	Status      TransactionStatus `db:"status"`
	Note        string            `db:"note"`
	CreatedAt   time.Time         `db:"created_at"`
	ResolvedAt  *time.Time        `db:"resolved_at"`
}

// TransactionView is a transaction joined with both usernames.
type TransactionView struct {
	ID        int
	Sender    string
	Recipient string
	Amount    int64
	Kind      TransactionKind
	Status    TransactionStatus
	Note      string
	CreatedAt time.Time
}

type BalanceSnapshot struct {
	ID      int       `db:"id"`
	UserID  int       `db:"user_id"`
	Balance int64     `db:"balance"`
	TakenAt time.Time `db:"taken_at"`
}

// SnapshotView is a snapshot joined with its owner's username.
type SnapshotView struct {
	Username string
	Balance  int64
	TakenAt  time.Time
}

type Session struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	CreatedAt    time.Time `db:"created_at"`
	LastActivity time.Time `db:"last_activity"`
}

// HourWindow is an inclusive hour-of-day range. Start > End wraps midnight.
type HourWindow struct {
	Start int
	End   int
}

// Contains reports whether hour falls inside the window.
func (w HourWindow) Contains(hour int) bool {
	if w.Start <= w.End {
		return w.Start <= hour && hour <= w.End
	}
	return hour >= w.Start || hour <= w.End
}

type MarketStatus struct {
	Open     bool
	Override *bool
	Hours    *HourWindow
}

type RedistributionResult struct {
	PerformerCount       int
	AudienceCount        int
	Eligible             int
	Skipped              []string
	AmountPerAudience    int64
	RequiredPerPerformer int64
	TotalRedistributed   int64
	Transactions         int
}

type UserStats struct {
	TotalCoins int64
	TotalUsers int
	Performers int
	Audience   int
}

type TransactionStats struct {
	Count  int
	Volume int64
}

type MarketStats struct {
	UserStats
	Transactions TransactionStats
	TopHolders   []User
	Recent       []TransactionView
}

// Group names a whole role as one side of a bulk transfer. The privileged
// account never belongs to a group.
type Group string

const (
	GroupPerformers Group = "All Performers"
	GroupAudience   Group = "All Audience"
)

type TransferLeg struct {
	Sender    string
	Recipient string
	Amount    int64
}

// FailedTransfer is a sender left out of a bulk transfer because its
// balance did not cover every payment.
type FailedTransfer struct {
	Sender   string
	Balance  int64
	Required int64
}

type BulkTransferResult struct {
	Transfers         []TransferLeg
	Failed            []FailedTransfer
	AmountPerTransfer int64
	TotalTransferred  int64
}

// MaxRedistributionAmount bounds the per-audience payout of a redistribution
// cycle.
const MaxRedistributionAmount int64 = 1_000_000
