package dto

import (
	"fmt"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
)

type PerformerStatusRequestDTO struct {
	IsPerformer *bool `json:"is_performer" example:"true"`
}

type PerformerStatusResponseDTO struct {
	Status      string `json:"status" example:"success"`
	Username    string `json:"username" example:"BOB"`
	IsPerformer bool   `json:"is_performer" example:"true"`
}

type ForceTransferRequestDTO struct {
	Sender    string `json:"sender" example:"ALICE"`
	Recipient string `json:"recipient" example:"BOB"`
	Amount    int64  `json:"amount" example:"500"`
	Reason    string `json:"reason,omitempty" example:"market correction"`
}

type ForceRedistributionRequestDTO struct {
	Multiplier int    `json:"multiplier" example:"1" minimum:"1" maximum:"10"`
	Reason     string `json:"reason,omitempty"`
}

type RedistributionDTO struct {
	PerformerCount       int      `json:"performer_count" example:"2"`
	AudienceCount        int      `json:"audience_count" example:"8"`
	Eligible             int      `json:"eligible_performers" example:"2"`
	Skipped              []string `json:"skipped_performers"`
	AmountPerAudience    int64    `json:"amount_per_audience" example:"5"`
	RequiredPerPerformer int64    `json:"required_per_performer" example:"40"`
	TotalRedistributed   int64    `json:"total_redistributed" example:"80"`
	Transactions         int      `json:"transactions" example:"16"`
}

func FromRedistribution(r *domain.RedistributionResult) RedistributionDTO {
	skipped := r.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	return RedistributionDTO{
		PerformerCount:       r.PerformerCount,
		AudienceCount:        r.AudienceCount,
		Eligible:             r.Eligible,
		Skipped:              skipped,
		AmountPerAudience:    r.AmountPerAudience,
		RequiredPerPerformer: r.RequiredPerPerformer,
		TotalRedistributed:   r.TotalRedistributed,
		Transactions:         r.Transactions,
	}
}

type ForceRedistributionResponseDTO struct {
	Status             string              `json:"status" example:"success"`
	Message            string              `json:"message" example:"Forced 2 redistribution cycles"`
	Multiplier         int                 `json:"multiplier" example:"2"`
	Cycles             int                 `json:"cycles" example:"2"`
	TotalRedistributed int64               `json:"total_redistributed" example:"160"`
	Reason             string              `json:"reason,omitempty"`
	Redistributions    []RedistributionDTO `json:"redistributions"`
}

type MarketOverrideRequestDTO struct {
	Open *bool `json:"open" example:"true"`
}

type RedistributionAmountDTO struct {
	Status string `json:"status,omitempty" example:"success"`
	Amount int64  `json:"amount" example:"5"`
}

type ResetBalancesResponseDTO struct {
	Status     string `json:"status" example:"success"`
	Message    string `json:"message" example:"All balances reset"`
	UsersReset int64  `json:"users_reset" example:"12"`
}

type MarketStatsResponseDTO struct {
	Status             string           `json:"status" example:"success"`
	MarketCap          int64            `json:"market_cap" example:"120000"`
	TotalUsers         int              `json:"total_users" example:"12"`
	Performers         int              `json:"performers" example:"3"`
	Audience           int              `json:"audience" example:"9"`
	TransactionCount   int              `json:"transaction_count" example:"57"`
	TotalVolume        int64            `json:"total_volume" example:"4310"`
	TopHolders         []UserDTO        `json:"top_holders"`
	RecentTransactions []TransactionDTO `json:"recent_transactions"`
}

func FromMarketStats(s *domain.MarketStats) MarketStatsResponseDTO {
	return MarketStatsResponseDTO{
		Status:             string(domain.CodeSuccess),
		MarketCap:          s.TotalCoins,
		TotalUsers:         s.TotalUsers,
		Performers:         s.Performers,
		Audience:           s.Audience,
		TransactionCount:   s.Transactions.Count,
		TotalVolume:        s.Transactions.Volume,
		TopHolders:         FromUsers(s.TopHolders),
		RecentTransactions: FromTransactionViews(s.Recent),
	}
}

type AccountDTO struct {
	Username    string    `json:"username" example:"ALICE"`
	Balance     int64     `json:"balance" example:"10000"`
	IsPerformer bool      `json:"is_performer" example:"false"`
	CreatedAt   time.Time `json:"created_at" example:"2025-06-14T19:04:05Z"`
}

type UsersResponseDTO struct {
	Status     string       `json:"status" example:"success"`
	TotalUsers int          `json:"total_users" example:"12"`
	Users      []AccountDTO `json:"users"`
}

func FromAccounts(users []domain.User) UsersResponseDTO {
	out := make([]AccountDTO, len(users))
	for i, u := range users {
		out[i] = AccountDTO{Username: u.Username, Balance: u.Balance, IsPerformer: u.IsPerformer, CreatedAt: u.CreatedAt}
	}
	return UsersResponseDTO{Status: string(domain.CodeSuccess), TotalUsers: len(users), Users: out}
}

const DefaultMassTransferAmount int64 = 100

type MassTransferRequestDTO struct {
	Amount *int64 `json:"amount,omitempty" example:"100"`
	Reason string `json:"reason,omitempty" example:"curtain call"`
}

type GroupTransferRequestDTO struct {
	Sender    string `json:"sender" example:"All Performers"`
	Recipient string `json:"recipient" example:"ALICE"`
	Amount    int64  `json:"amount" example:"50"`
	Reason    string `json:"reason,omitempty"`
}

type TransferLegDTO struct {
	Sender    string `json:"sender" example:"BOB"`
	Recipient string `json:"recipient" example:"ALICE"`
	Amount    int64  `json:"amount" example:"100"`
}

type FailedTransferDTO struct {
	Sender   string `json:"sender" example:"CAROL"`
	Balance  int64  `json:"balance" example:"40"`
	Required int64  `json:"required" example:"300"`
}

type BulkTransferResponseDTO struct {
	Status            string              `json:"status" example:"success"`
	Message           string              `json:"message" example:"Completed 6 transfers"`
	Sender            string              `json:"sender" example:"All Performers"`
	Recipient         string              `json:"recipient" example:"All Audience"`
	Reason            string              `json:"reason,omitempty"`
	AmountPerTransfer int64               `json:"amount_per_transfer" example:"100"`
	TotalTransferred  int64               `json:"total_transferred" example:"600"`
	Transfers         []TransferLegDTO    `json:"transfers"`
	FailedTransfers   []FailedTransferDTO `json:"failed_transfers"`
}

func FromBulkTransfer(r *domain.BulkTransferResult, sender, recipient, reason string) BulkTransferResponseDTO {
	legs := make([]TransferLegDTO, len(r.Transfers))
	for i, l := range r.Transfers {
		legs[i] = TransferLegDTO{Sender: l.Sender, Recipient: l.Recipient, Amount: l.Amount}
	}
	failed := make([]FailedTransferDTO, len(r.Failed))
	for i, f := range r.Failed {
		failed[i] = FailedTransferDTO{Sender: f.Sender, Balance: f.Balance, Required: f.Required}
	}
	return BulkTransferResponseDTO{
		Status:            string(domain.CodeSuccess),
		Message:           fmt.Sprintf("Completed %d transfers, %d senders short of funds", len(legs), len(failed)),
		Sender:            sender,
		Recipient:         recipient,
		Reason:            reason,
		AmountPerTransfer: r.AmountPerTransfer,
		TotalTransferred:  r.TotalTransferred,
		Transfers:         legs,
		FailedTransfers:   failed,
	}
}
