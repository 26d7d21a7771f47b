package dto

import (
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
)

type UserDTO struct {
	Username    string `json:"username" example:"ALICE"`
	Balance     int64  `json:"balance" example:"10000"`
	IsPerformer bool   `json:"is_performer" example:"false"`
}

func FromUser(u domain.User) UserDTO {
	return UserDTO{Username: u.Username, Balance: u.Balance, IsPerformer: u.IsPerformer}
}

func FromUsers(users []domain.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = FromUser(u)
	}
	return out
}

type TransactionDTO struct {
	ID        int       `json:"id" example:"42"`
	Sender    string    `json:"sender" example:"ALICE"`
	Recipient string    `json:"recipient" example:"BOB"`
	Amount    int64     `json:"amount" example:"100"`
	Kind      string    `json:"kind" example:"transfer"`
	Status    string    `json:"status" example:"approved"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-14T19:04:05Z"`
}

func FromTransactionViews(views []domain.TransactionView) []TransactionDTO {
	out := make([]TransactionDTO, len(views))
	for i, v := range views {
		out[i] = TransactionDTO{
			ID:        v.ID,
			Sender:    v.Sender,
			Recipient: v.Recipient,
			Amount:    v.Amount,
			Kind:      string(v.Kind),
			Status:    string(v.Status),
			Note:      v.Note,
			CreatedAt: v.CreatedAt,
		}
	}
	return out
}

type BalanceResponseDTO struct {
	Status   string `json:"status" example:"success"`
	Username string `json:"username" example:"ALICE"`
	Balance  int64  `json:"balance" example:"10000"`
}

type TransferRequestDTO struct {
	Recipient string `json:"recipient" example:"BOB"`
	Amount    int64  `json:"amount" example:"100"`
	Kind      string `json:"kind,omitempty" example:"transfer" enums:"transfer,offer"`
	Note      string `json:"note,omitempty" example:"for the encore"`
}

type TransferResponseDTO struct {
	Status            string `json:"status" example:"success"`
	Message           string `json:"message" example:"Transferred 100 coins from ALICE to BOB"`
	TransactionID     int    `json:"transaction_id" example:"42"`
	Kind              string `json:"kind" example:"transfer"`
	TransactionStatus string `json:"transaction_status" example:"approved"`
	Sender            string `json:"sender" example:"ALICE"`
	Recipient         string `json:"recipient" example:"BOB"`
	Amount            int64  `json:"amount" example:"100"`
	SenderBalance     int64  `json:"sender_balance" example:"9900"`
}

type OffersResponseDTO struct {
	Status string           `json:"status" example:"success"`
	Offers []TransactionDTO `json:"offers"`
}

type ResolveOfferResponseDTO struct {
	Status        string `json:"status" example:"success"`
	Message       string `json:"message" example:"Offer 42 approved"`
	TransactionID int    `json:"transaction_id" example:"42"`
	OfferStatus   string `json:"offer_status" example:"approved"`
}

type LeaderboardResponseDTO struct {
	Status      string    `json:"status" example:"success"`
	Leaderboard []UserDTO `json:"leaderboard"`
	TotalUsers  int       `json:"total_users" example:"12"`
}

type TransactionsResponseDTO struct {
	Status       string           `json:"status" example:"success"`
	Transactions []TransactionDTO `json:"transactions"`
	Filter       string           `json:"filter" example:"all_users"`
	Limit        int              `json:"limit" example:"50"`
	Offset       int              `json:"offset" example:"0"`
}

type BalancePointDTO struct {
	Balance int64     `json:"balance" example:"10000"`
	TakenAt time.Time `json:"taken_at" example:"2025-06-14T19:04:05Z"`
}

type LeaderboardHistoryResponseDTO struct {
	Status string                       `json:"status" example:"success"`
	Hours  float64                      `json:"hours" example:"0.5"`
	Series map[string][]BalancePointDTO `json:"series"`
}

// SeriesFromSnapshots groups snapshots per user, keeping their order.
func SeriesFromSnapshots(snapshots []domain.SnapshotView) map[string][]BalancePointDTO {
	series := make(map[string][]BalancePointDTO)
	for _, s := range snapshots {
		series[s.Username] = append(series[s.Username], BalancePointDTO{Balance: s.Balance, TakenAt: s.TakenAt})
	}
	return series
}

type PerformersResponseDTO struct {
	Status         string    `json:"status" example:"success"`
	Performers     []UserDTO `json:"performers"`
	PerformerCount int       `json:"performer_count" example:"3"`
	AudienceCount  int       `json:"audience_count" example:"9"`
}
