package ledger

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/dto"
	"github.com/alexrkaufman/strawcoin/internal/service/ledgerservice"
	"github.com/alexrkaufman/strawcoin/pkg/auth"
	"github.com/alexrkaufman/strawcoin/pkg/utils"
	"github.com/alexrkaufman/strawcoin/pkg/validate"
)

const maxHistoryHours = 6.0

type Service interface {
	GetBalance(ctx context.Context, username string) (int64, error)
	Transfer(ctx context.Context, req ledgerservice.TransferRequest) (*ledgerservice.TransferResult, error)
	ResolveOffer(ctx context.Context, id int, recipient string, approve bool) (*ledgerservice.ResolveResult, error)
	PendingOffers(ctx context.Context, recipient string) ([]domain.TransactionView, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.User, error)
	TransactionHistory(ctx context.Context, filter ledgerservice.HistoryFilter) ([]domain.TransactionView, error)
	BalanceHistory(ctx context.Context, window time.Duration) ([]domain.SnapshotView, error)
	ListPerformers(ctx context.Context) ([]domain.User, error)
	ListAudience(ctx context.Context) ([]domain.User, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// currentUser returns the session owner, replying 401 when there is none.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		utils.RespondWithDomainError(w, domain.ErrSessionExpired)
		return "", false
	}
	return session.Username, true
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Validation(name + " must be an integer")
	}
	return n, nil
}

// GetBalance godoc
//
//	@Summary		Get user balance
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path		string	true	"Username"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		401			{object}	utils.Response	"Session expired"
//	@Failure		404			{object}	utils.Response	"User not found"
//	@Router			/api/users/{username}/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	username, err := validate.Username(chi.URLParam(r, "username"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	balance, err := h.ledgerService.GetBalance(r.Context(), username)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Status:   string(domain.CodeSuccess),
		Username: username,
		Balance:  balance,
	})
}

// Transfer godoc
//
//	@Summary		Send coins
//	@Description	Transfer coins from the logged-in user, or leave a pending offer when kind is "offer".
//	@Description	Paying yourself is treated as self-dealing: the amount is confiscated by the privileged account.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request payload"
//	@Success		200		{object}	dto.TransferResponseDTO	"Transfer completed"
//	@Success		202		{object}	dto.TransferResponseDTO	"Offer created"
//	@Failure		400		{object}	utils.Response			"Invalid amount or insufficient funds"
//	@Failure		401		{object}	utils.Response			"Session expired"
//	@Failure		403		{object}	dto.TransferResponseDTO	"Self-dealing penalty or payment to the privileged account"
//	@Failure		404		{object}	utils.Response			"User not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/transfer [post]
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, string(domain.CodeValidation), "Transfer requires recipient and integer amount")
		return
	}

	result, err := h.ledgerService.Transfer(r.Context(), ledgerservice.TransferRequest{
		Sender:    username,
		Recipient: req.Recipient,
		Amount:    req.Amount,
		Kind:      domain.TransactionKind(req.Kind),
		Note:      req.Note,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	tx := result.Transaction
	resp := dto.TransferResponseDTO{
		Status:            string(domain.CodeSuccess),
		Message:           fmt.Sprintf("Transferred %d coins from %s to %s", tx.Amount, username, result.Recipient),
		TransactionID:     tx.ID,
		Kind:              string(tx.Kind),
		TransactionStatus: string(tx.Status),
		Sender:            username,
		Recipient:         result.Recipient,
		Amount:            tx.Amount,
		SenderBalance:     result.SenderBalance,
	}
	code := http.StatusOK
	switch {
	case result.Penalized:
		resp.Status = string(domain.CodeSelfDealing)
		resp.Message = fmt.Sprintf("Self-dealing detected: %d coins confiscated by %s", tx.Amount, result.Recipient)
		code = utils.HTTPStatus(domain.CodeSelfDealing)
	case tx.Status == domain.StatusPending:
		resp.Status = string(domain.CodeOfferCreated)
		resp.Message = fmt.Sprintf("Offered %d coins to %s", tx.Amount, result.Recipient)
		code = http.StatusAccepted
	}
	utils.RespondWithJSON(w, code, resp)
}

// PendingOffers godoc
//
//	@Summary		List offers awaiting my decision
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OffersResponseDTO
//	@Failure		401	{object}	utils.Response	"Session expired"
//	@Router			/api/offers [get]
func (h *LedgerHandler) PendingOffers(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUser(w, r)
	if !ok {
		return
	}

	offers, err := h.ledgerService.PendingOffers(r.Context(), username)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OffersResponseDTO{
		Status: string(domain.CodeSuccess),
		Offers: dto.FromTransactionViews(offers),
	})
}

// ApproveOffer godoc
//
//	@Summary		Approve a pending offer
//	@Description	Moves the coins if the sender can still cover the offer, otherwise the offer is denied.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Offer id"
//	@Success		200	{object}	dto.ResolveOfferResponseDTO
//	@Failure		400	{object}	dto.ResolveOfferResponseDTO	"Offer auto-denied, sender has insufficient funds"
//	@Failure		404	{object}	utils.Response				"No matching pending offer"
//	@Router			/api/offers/{id}/approve [post]
func (h *LedgerHandler) ApproveOffer(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, true)
}

// DenyOffer godoc
//
//	@Summary		Deny a pending offer
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Offer id"
//	@Success		200	{object}	dto.ResolveOfferResponseDTO
//	@Failure		404	{object}	utils.Response	"No matching pending offer"
//	@Router			/api/offers/{id}/deny [post]
func (h *LedgerHandler) DenyOffer(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, false)
}

func (h *LedgerHandler) resolve(w http.ResponseWriter, r *http.Request, approve bool) {
	username, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithDomainError(w, domain.Validation("offer id must be a positive integer"))
		return
	}

	result, err := h.ledgerService.ResolveOffer(r.Context(), id, username, approve)
	if result != nil && result.AutoDenied {
		utils.RespondWithJSON(w, utils.HTTPStatus(domain.CodeOf(err)), dto.ResolveOfferResponseDTO{
			Status:        string(domain.CodeOfferDenied),
			Message:       fmt.Sprintf("Offer %d denied: sender has insufficient funds", id),
			TransactionID: id,
			OfferStatus:   string(result.Transaction.Status),
		})
		return
	}
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	resp := dto.ResolveOfferResponseDTO{
		Status:        string(domain.CodeSuccess),
		Message:       fmt.Sprintf("Offer %d approved", id),
		TransactionID: id,
		OfferStatus:   string(result.Transaction.Status),
	}
	if !approve {
		resp.Status = string(domain.CodeOfferDenied)
		resp.Message = fmt.Sprintf("Offer %d denied", id)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Leaderboard godoc
//
//	@Summary		Leaderboard
//	@Description	Users ordered by balance, richest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum rows, all when omitted"
//	@Success		200		{object}	dto.LeaderboardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Router			/api/leaderboard [get]
func (h *LedgerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	users, err := h.ledgerService.Leaderboard(r.Context(), limit)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LeaderboardResponseDTO{
		Status:      string(domain.CodeSuccess),
		Leaderboard: dto.FromUsers(users),
		TotalUsers:  len(users),
	})
}

// Transactions godoc
//
//	@Summary		Transaction history
//	@Description	Newest first. Filter by a username to see only transactions it took part in.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	query		string	false	"Username filter"
//	@Param			limit		query		int		false	"Page size (default 50, max 500)"
//	@Param			offset		query		int		false	"Rows to skip"
//	@Success		200			{object}	dto.TransactionsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Router			/api/transactions [get]
func (h *LedgerHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	filter := ledgerservice.HistoryFilter{
		Username: r.URL.Query().Get("username"),
		Limit:    limit,
		Offset:   offset,
	}

	history, err := h.ledgerService.TransactionHistory(r.Context(), filter)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	resp := dto.TransactionsResponseDTO{
		Status:       string(domain.CodeSuccess),
		Transactions: dto.FromTransactionViews(history),
		Filter:       filter.Username,
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	}
	if resp.Filter == "" {
		resp.Filter = "all_users"
	}
	if resp.Limit <= 0 {
		resp.Limit = ledgerservice.DefaultHistoryLimit
	}
	if resp.Limit > ledgerservice.MaxHistoryLimit {
		resp.Limit = ledgerservice.MaxHistoryLimit
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// LeaderboardHistory godoc
//
//	@Summary		Balance history
//	@Description	Balance snapshots per user over the last hours, oldest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			hours	query		number	false	"Window in hours (default 0.5, max 6)"
//	@Success		200		{object}	dto.LeaderboardHistoryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid window"
//	@Router			/api/leaderboard-history [get]
func (h *LedgerHandler) LeaderboardHistory(w http.ResponseWriter, r *http.Request) {
	hours := ledgerservice.DefaultHistoryWindow.Hours()
	if raw := r.URL.Query().Get("hours"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			utils.RespondWithDomainError(w, domain.Validation("hours must be a positive number"))
			return
		}
		hours = min(parsed, maxHistoryHours)
	}

	snapshots, err := h.ledgerService.BalanceHistory(r.Context(), time.Duration(hours*float64(time.Hour)))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LeaderboardHistoryResponseDTO{
		Status: string(domain.CodeSuccess),
		Hours:  hours,
		Series: dto.SeriesFromSnapshots(snapshots),
	})
}

// Performers godoc
//
//	@Summary		List performers
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PerformersResponseDTO
//	@Router			/api/performers [get]
func (h *LedgerHandler) Performers(w http.ResponseWriter, r *http.Request) {
	performers, err := h.ledgerService.ListPerformers(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	audience, err := h.ledgerService.ListAudience(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PerformersResponseDTO{
		Status:         string(domain.CodeSuccess),
		Performers:     dto.FromUsers(performers),
		PerformerCount: len(performers),
		AudienceCount:  len(audience),
	})
}
