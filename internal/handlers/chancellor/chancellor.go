package chancellor

//go:generate mockgen -source=chancellor.go -destination=mock_chancellor.go -package=chancellor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/dto"
	"github.com/alexrkaufman/strawcoin/internal/service/ledgerservice"
	"github.com/alexrkaufman/strawcoin/pkg/utils"
	"github.com/alexrkaufman/strawcoin/pkg/validate"
)

const maxMultiplier = 10

type LedgerService interface {
	SetPerformerStatus(ctx context.Context, username string, isPerformer bool) error
	ForceTransfer(ctx context.Context, sender, recipient string, amount int64, note string) (*ledgerservice.TransferResult, error)
	Redistribute(ctx context.Context, amountPerAudience int64) (*domain.RedistributionResult, error)
	ResetBalances(ctx context.Context) (int64, error)
	MarketStats(ctx context.Context) (*domain.MarketStats, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	PerformersToAudience(ctx context.Context, amount int64, note string) (*domain.BulkTransferResult, error)
	AudienceToPerformers(ctx context.Context, amount int64, note string) (*domain.BulkTransferResult, error)
	GroupTransfer(ctx context.Context, from, to ledgerservice.Party, amount int64, note string) (*domain.BulkTransferResult, error)
}

type MarketService interface {
	Status(ctx context.Context) (*domain.MarketStatus, error)
	SetOverride(ctx context.Context, open bool) error
	ClearOverride(ctx context.Context) error
	Toggle(ctx context.Context) (bool, error)
	RedistributionAmount(ctx context.Context) (int64, error)
	SetRedistributionAmount(ctx context.Context, amount int64) error
}

// ChancellorHandler serves the operations reserved for the privileged
// account. Routes must sit behind auth.RequirePrivileged.
type ChancellorHandler struct {
	ledgerService LedgerService
	marketService MarketService
	now           func() time.Time
}

func New(ledgerService LedgerService, marketService MarketService) *ChancellorHandler {
	return &ChancellorHandler{
		ledgerService: ledgerService,
		marketService: marketService,
		now:           time.Now,
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, string(domain.CodeValidation), "Invalid request body")
		return false
	}
	return true
}

// SetPerformerStatus godoc
//
//	@Summary		Set performer status
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string							true	"Username"
//	@Param			request		body		dto.PerformerStatusRequestDTO	true	"New status"
//	@Success		200			{object}	dto.PerformerStatusResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		403			{object}	utils.Response	"Privileged access required"
//	@Failure		404			{object}	utils.Response	"User not found"
//	@Router			/api/chancellor/users/{username}/performer-status [put]
func (h *ChancellorHandler) SetPerformerStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.PerformerStatusRequestDTO
	if !decode(w, r, &req) {
		return
	}
	if req.IsPerformer == nil {
		utils.RespondWithDomainError(w, domain.Validation("is_performer is required"))
		return
	}

	username, err := validate.Username(chi.URLParam(r, "username"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if err := h.ledgerService.SetPerformerStatus(r.Context(), username, *req.IsPerformer); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PerformerStatusResponseDTO{
		Status:      string(domain.CodeSuccess),
		Username:    username,
		IsPerformer: *req.IsPerformer,
	})
}

// ForceTransfer godoc
//
//	@Summary		Force a transfer between two users
//	@Description	Moves coins without the sender's consent. Neither party may be the privileged account.
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ForceTransferRequestDTO	true	"Transfer"
//	@Success		200		{object}	dto.TransferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount, same party or insufficient funds"
//	@Failure		403		{object}	utils.Response	"Privileged access required"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/chancellor/force-transfer [post]
func (h *ChancellorHandler) ForceTransfer(w http.ResponseWriter, r *http.Request) {
	var req dto.ForceTransferRequestDTO
	if !decode(w, r, &req) {
		return
	}
	if req.Reason == "" {
		req.Reason = "Forced transfer by the chancellor"
	}

	result, err := h.ledgerService.ForceTransfer(r.Context(), req.Sender, req.Recipient, req.Amount, req.Reason)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	tx := result.Transaction
	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		Status:            string(domain.CodeSuccess),
		Message:           fmt.Sprintf("Forced transfer of %d coins to %s", tx.Amount, result.Recipient),
		TransactionID:     tx.ID,
		Kind:              string(tx.Kind),
		TransactionStatus: string(tx.Status),
		Sender:            result.Sender,
		Recipient:         result.Recipient,
		Amount:            tx.Amount,
		SenderBalance:     result.SenderBalance,
	})
}

// ForceRedistribution godoc
//
//	@Summary		Force redistribution cycles
//	@Description	Runs up to multiplier redistribution cycles right away, whether or not the market is open.
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ForceRedistributionRequestDTO	false	"Multiplier 1..10, default 1"
//	@Success		200		{object}	dto.ForceRedistributionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid multiplier"
//	@Failure		409		{object}	utils.Response	"No performers or audience"
//	@Router			/api/chancellor/force-redistribution [post]
func (h *ChancellorHandler) ForceRedistribution(w http.ResponseWriter, r *http.Request) {
	req := dto.ForceRedistributionRequestDTO{Multiplier: 1}
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	if req.Multiplier < 1 || req.Multiplier > maxMultiplier {
		utils.RespondWithDomainError(w, domain.Validation(fmt.Sprintf("multiplier must be between 1 and %d", maxMultiplier)))
		return
	}

	amount, err := h.marketService.RedistributionAmount(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, domain.OperationFailed(err))
		return
	}

	resp := dto.ForceRedistributionResponseDTO{
		Status:          string(domain.CodeSuccess),
		Multiplier:      req.Multiplier,
		Reason:          req.Reason,
		Redistributions: []dto.RedistributionDTO{},
	}
	for i := 0; i < req.Multiplier; i++ {
		result, err := h.ledgerService.Redistribute(r.Context(), amount)
		if err != nil {
			if resp.Cycles == 0 {
				utils.RespondWithDomainError(w, err)
				return
			}
			zap.L().Warn("forced redistribution stopped early", zap.Int("cycles", resp.Cycles), zap.Error(err))
			break
		}
		resp.Cycles++
		resp.TotalRedistributed += result.TotalRedistributed
		resp.Redistributions = append(resp.Redistributions, dto.FromRedistribution(result))
	}
	resp.Message = fmt.Sprintf("Forced %d redistribution cycles", resp.Cycles)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ChancellorHandler) respondMarketStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.marketService.Status(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, domain.OperationFailed(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromMarketStatus(status, h.now()))
}

// SetMarketOverride godoc
//
//	@Summary		Force the market open or closed
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MarketOverrideRequestDTO	true	"Override"
//	@Success		200		{object}	dto.MarketStatusResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Router			/api/chancellor/market-override [put]
func (h *ChancellorHandler) SetMarketOverride(w http.ResponseWriter, r *http.Request) {
	var req dto.MarketOverrideRequestDTO
	if !decode(w, r, &req) {
		return
	}
	if req.Open == nil {
		utils.RespondWithDomainError(w, domain.Validation("open is required"))
		return
	}
	if err := h.marketService.SetOverride(r.Context(), *req.Open); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	h.respondMarketStatus(w, r)
}

// ClearMarketOverride godoc
//
//	@Summary		Return the market to its schedule
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MarketStatusResponseDTO
//	@Router			/api/chancellor/market-override [delete]
func (h *ChancellorHandler) ClearMarketOverride(w http.ResponseWriter, r *http.Request) {
	if err := h.marketService.ClearOverride(r.Context()); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	h.respondMarketStatus(w, r)
}

// ToggleMarket godoc
//
//	@Summary		Flip the market state
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MarketStatusResponseDTO
//	@Router			/api/chancellor/market-toggle [post]
func (h *ChancellorHandler) ToggleMarket(w http.ResponseWriter, r *http.Request) {
	if _, err := h.marketService.Toggle(r.Context()); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	h.respondMarketStatus(w, r)
}

// GetRedistributionAmount godoc
//
//	@Summary		Current per-audience payout
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RedistributionAmountDTO
//	@Router			/api/chancellor/redistribution-amount [get]
func (h *ChancellorHandler) GetRedistributionAmount(w http.ResponseWriter, r *http.Request) {
	amount, err := h.marketService.RedistributionAmount(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, domain.OperationFailed(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedistributionAmountDTO{Status: string(domain.CodeSuccess), Amount: amount})
}

// SetRedistributionAmount godoc
//
//	@Summary		Change the per-audience payout
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedistributionAmountDTO	true	"New amount"
//	@Success		200		{object}	dto.RedistributionAmountDTO
//	@Failure		400		{object}	utils.Response	"Amount must be positive"
//	@Router			/api/chancellor/redistribution-amount [put]
func (h *ChancellorHandler) SetRedistributionAmount(w http.ResponseWriter, r *http.Request) {
	var req dto.RedistributionAmountDTO
	if !decode(w, r, &req) {
		return
	}
	if err := h.marketService.SetRedistributionAmount(r.Context(), req.Amount); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedistributionAmountDTO{Status: string(domain.CodeSuccess), Amount: req.Amount})
}

// ResetBalances godoc
//
//	@Summary		Reset the market
//	@Description	Every balance back to the starting amount, history wiped.
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ResetBalancesResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/chancellor/reset-balances [post]
func (h *ChancellorHandler) ResetBalances(w http.ResponseWriter, r *http.Request) {
	n, err := h.ledgerService.ResetBalances(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ResetBalancesResponseDTO{
		Status:     string(domain.CodeSuccess),
		Message:    "All balances reset",
		UsersReset: n,
	})
}

// MarketStats godoc
//
//	@Summary		Market statistics
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MarketStatsResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/chancellor/market-stats [get]
func (h *ChancellorHandler) MarketStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledgerService.MarketStats(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, domain.OperationFailed(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromMarketStats(stats))
}

// ListUsers godoc
//
//	@Summary		List every account
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UsersResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/chancellor/users [get]
func (h *ChancellorHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.ledgerService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, domain.OperationFailed(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAccounts(users))
}

func (h *ChancellorHandler) massTransfer(w http.ResponseWriter, r *http.Request, from, to domain.Group,
	run func(ctx context.Context, amount int64, note string) (*domain.BulkTransferResult, error)) {
	var req dto.MassTransferRequestDTO
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	amount := dto.DefaultMassTransferAmount
	if req.Amount != nil {
		amount = *req.Amount
	}
	if req.Reason == "" {
		req.Reason = fmt.Sprintf("Mass transfer from %s to %s", from, to)
	}

	result, err := run(r.Context(), amount, req.Reason)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromBulkTransfer(result, string(from), string(to), req.Reason))
}

// PerformersToAudience godoc
//
//	@Summary		Every performer pays every audience member
//	@Description	Performers that cannot cover all of their payments are listed in failed_transfers and left untouched.
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MassTransferRequestDTO	false	"Amount per payment, default 100"
//	@Success		200		{object}	dto.BulkTransferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		409		{object}	utils.Response	"No performers or audience"
//	@Router			/api/chancellor/performers-to-audience [post]
func (h *ChancellorHandler) PerformersToAudience(w http.ResponseWriter, r *http.Request) {
	h.massTransfer(w, r, domain.GroupPerformers, domain.GroupAudience, h.ledgerService.PerformersToAudience)
}

// AudienceToPerformers godoc
//
//	@Summary		Every audience member pays every performer
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MassTransferRequestDTO	false	"Amount per payment, default 100"
//	@Success		200		{object}	dto.BulkTransferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		409		{object}	utils.Response	"No performers or audience"
//	@Router			/api/chancellor/audience-to-performers [post]
func (h *ChancellorHandler) AudienceToPerformers(w http.ResponseWriter, r *http.Request) {
	h.massTransfer(w, r, domain.GroupAudience, domain.GroupPerformers, h.ledgerService.AudienceToPerformers)
}

// GroupTransfer godoc
//
//	@Summary		Transfer between a group and one user
//	@Description	Either sender or recipient is "All Performers" or "All Audience", the other side is a username.
//	@Tags			Chancellor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GroupTransferRequestDTO	true	"Transfer"
//	@Success		200		{object}	dto.BulkTransferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid parties or amount"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Empty group"
//	@Router			/api/chancellor/group-transfer [post]
func (h *ChancellorHandler) GroupTransfer(w http.ResponseWriter, r *http.Request) {
	var req dto.GroupTransferRequestDTO
	if !decode(w, r, &req) {
		return
	}
	from := ledgerservice.ParseParty(req.Sender)
	to := ledgerservice.ParseParty(req.Recipient)
	if req.Reason == "" {
		req.Reason = fmt.Sprintf("Group transfer from %s to %s", from, to)
	}

	result, err := h.ledgerService.GroupTransfer(r.Context(), from, to, req.Amount, req.Reason)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromBulkTransfer(result, from.String(), to.String(), req.Reason))
}
