package market

//go:generate mockgen -source=market.go -destination=mock_market.go -package=market

import (
	"context"
	"net/http"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/dto"
	"github.com/alexrkaufman/strawcoin/pkg/utils"
)

type Service interface {
	Status(ctx context.Context) (*domain.MarketStatus, error)
}

type MarketHandler struct {
	marketService Service
	now           func() time.Time
}

func New(marketService Service) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
		now:           time.Now,
	}
}

// MarketStatus godoc
//
//	@Summary		Market status
//	@Description	Whether the market is open, and why: a chancellor override or the trading hours.
//	@Tags			Market
//	@Produce		json
//	@Success		200	{object}	dto.MarketStatusResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/market-status [get]
func (h *MarketHandler) MarketStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.marketService.Status(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, domain.OperationFailed(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromMarketStatus(status, h.now()))
}
