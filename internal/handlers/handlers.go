package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/alexrkaufman/strawcoin/docs"
	authhandlers "github.com/alexrkaufman/strawcoin/internal/handlers/auth"
	chancellorhandlers "github.com/alexrkaufman/strawcoin/internal/handlers/chancellor"
	ledgerhandlers "github.com/alexrkaufman/strawcoin/internal/handlers/ledger"
	markethandlers "github.com/alexrkaufman/strawcoin/internal/handlers/market"
	"github.com/alexrkaufman/strawcoin/internal/service"
	"github.com/alexrkaufman/strawcoin/pkg/auth"
	"github.com/alexrkaufman/strawcoin/pkg/logger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	SessionStatus(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	PendingOffers(w http.ResponseWriter, r *http.Request)
	ApproveOffer(w http.ResponseWriter, r *http.Request)
	DenyOffer(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
	LeaderboardHistory(w http.ResponseWriter, r *http.Request)
	Performers(w http.ResponseWriter, r *http.Request)
}

type ChancellorHandler interface {
	SetPerformerStatus(w http.ResponseWriter, r *http.Request)
	ForceTransfer(w http.ResponseWriter, r *http.Request)
	ForceRedistribution(w http.ResponseWriter, r *http.Request)
	SetMarketOverride(w http.ResponseWriter, r *http.Request)
	ClearMarketOverride(w http.ResponseWriter, r *http.Request)
	ToggleMarket(w http.ResponseWriter, r *http.Request)
	GetRedistributionAmount(w http.ResponseWriter, r *http.Request)
	SetRedistributionAmount(w http.ResponseWriter, r *http.Request)
	ResetBalances(w http.ResponseWriter, r *http.Request)
	MarketStats(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	PerformersToAudience(w http.ResponseWriter, r *http.Request)
	AudienceToPerformers(w http.ResponseWriter, r *http.Request)
	GroupTransfer(w http.ResponseWriter, r *http.Request)
}

type MarketHandler interface {
	MarketStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	LedgerHandler     LedgerHandler
	ChancellorHandler ChancellorHandler
	MarketHandler     MarketHandler
	Sessions          auth.SessionAuthenticator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.Sessions),
		LedgerHandler:     ledgerhandlers.New(s.Ledger),
		ChancellorHandler: chancellorhandlers.New(s.Ledger, s.Market),
		MarketHandler:     markethandlers.New(s.Market),
		Sessions:          s.Sessions,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		logger.RequestLogger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)
		r.Get("/market-status", h.MarketHandler.MarketStatus)

		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware(h.Sessions))

			r.Post("/logout", h.AuthHandler.Logout)
			r.Get("/session-status", h.AuthHandler.SessionStatus)

			r.Get("/users/{username}/balance", h.LedgerHandler.GetBalance)
			r.Post("/transfer", h.LedgerHandler.Transfer)
			r.Route("/offers", func(r chi.Router) {
				r.Get("/", h.LedgerHandler.PendingOffers)
				r.Post("/{id}/approve", h.LedgerHandler.ApproveOffer)
				r.Post("/{id}/deny", h.LedgerHandler.DenyOffer)
			})
			r.Get("/leaderboard", h.LedgerHandler.Leaderboard)
			r.Get("/transactions", h.LedgerHandler.Transactions)
			r.Get("/leaderboard-history", h.LedgerHandler.LeaderboardHistory)
			r.Get("/performers", h.LedgerHandler.Performers)

			r.Route("/chancellor", func(r chi.Router) {
				r.Use(auth.RequirePrivileged(h.Sessions))

				r.Get("/users", h.ChancellorHandler.ListUsers)
				r.Put("/users/{username}/performer-status", h.ChancellorHandler.SetPerformerStatus)
				r.Post("/force-transfer", h.ChancellorHandler.ForceTransfer)
				r.Post("/performers-to-audience", h.ChancellorHandler.PerformersToAudience)
				r.Post("/audience-to-performers", h.ChancellorHandler.AudienceToPerformers)
				r.Post("/group-transfer", h.ChancellorHandler.GroupTransfer)
				r.Post("/force-redistribution", h.ChancellorHandler.ForceRedistribution)
				r.Put("/market-override", h.ChancellorHandler.SetMarketOverride)
				r.Delete("/market-override", h.ChancellorHandler.ClearMarketOverride)
				r.Post("/market-toggle", h.ChancellorHandler.ToggleMarket)
				r.Get("/redistribution-amount", h.ChancellorHandler.GetRedistributionAmount)
				r.Put("/redistribution-amount", h.ChancellorHandler.SetRedistributionAmount)
				r.Post("/reset-balances", h.ChancellorHandler.ResetBalances)
				r.Get("/market-stats", h.ChancellorHandler.MarketStats)
			})
		})
	})

	return r
}
