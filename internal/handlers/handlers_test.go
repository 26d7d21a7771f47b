package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/alexrkaufman/strawcoin/internal/config"
	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/alexrkaufman/strawcoin/internal/repo"
	"github.com/alexrkaufman/strawcoin/internal/service"
	"github.com/alexrkaufman/strawcoin/internal/service/ledgerservice"
	"github.com/alexrkaufman/strawcoin/internal/service/marketservice"
	"github.com/alexrkaufman/strawcoin/internal/service/sessionservice"
	"github.com/alexrkaufman/strawcoin/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		UserRepo:        ledgerservice.NewMockUserRepo(ctrl),
		TransactionRepo: ledgerservice.NewMockTransactionRepo(ctrl),
		SnapshotRepo:    ledgerservice.NewMockSnapshotRepo(ctrl),
		SessionRepo:     sessionservice.NewMockRepo(ctrl),
		SettingsRepo:    marketservice.NewMockRepo(ctrl),
	}
	services := service.New(&config.Config{SecretKey: "k", SessionTimeout: time.Minute}, repos, pg.NewMockTXManager(ctrl))

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.LedgerHandler)
	assert.NotNil(t, h.ChancellorHandler)
	assert.NotNil(t, h.MarketHandler)
	assert.Same(t, services.Sessions, h.Sessions)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockChancellorHandler := NewMockChancellorHandler(ctrl)
	mockMarketHandler := NewMockMarketHandler(ctrl)
	sessions := auth.NewMockSessionAuthenticator(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().SessionStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockMarketHandler.EXPECT().MarketStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Transfer(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().PendingOffers(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().ApproveOffer(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().DenyOffer(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Leaderboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Transactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().LeaderboardHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Performers(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().SetPerformerStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().ForceTransfer(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().ForceRedistribution(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().SetMarketOverride(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().ClearMarketOverride(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().ToggleMarket(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().GetRedistributionAmount(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().SetRedistributionAmount(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().ResetBalances(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().MarketStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().ListUsers(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().PerformersToAudience(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().AudienceToPerformers(gomock.Any(), gomock.Any()).AnyTimes()
	mockChancellorHandler.EXPECT().GroupTransfer(gomock.Any(), gomock.Any()).AnyTimes()

	sessions.EXPECT().Authenticate(gomock.Any(), "alice-token").
		Return(&domain.Session{ID: "s1", Username: "ALICE"}, nil).AnyTimes()
	sessions.EXPECT().Authenticate(gomock.Any(), "chancellor-token").
		Return(&domain.Session{ID: "s2", Username: "CHANCELLOR"}, nil).AnyTimes()
	sessions.EXPECT().Authenticate(gomock.Any(), "stale-token").
		Return(nil, domain.ErrSessionExpired).AnyTimes()
	sessions.EXPECT().HasPrivilegedAccess("ALICE").Return(false).AnyTimes()
	sessions.EXPECT().HasPrivilegedAccess("CHANCELLOR").Return(true).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		LedgerHandler:     mockLedgerHandler,
		ChancellorHandler: mockChancellorHandler,
		MarketHandler:     mockMarketHandler,
		Sessions:          sessions,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/login", "", http.StatusOK},
		{"GET", "/api/market-status", "", http.StatusOK},
		{"POST", "/api/logout", "", http.StatusUnauthorized},
		{"GET", "/api/session-status", "stale-token", http.StatusUnauthorized},
		{"GET", "/api/users/BOB/balance", "", http.StatusUnauthorized},
		{"POST", "/api/transfer", "", http.StatusUnauthorized},
		{"GET", "/api/leaderboard", "", http.StatusUnauthorized},
		{"POST", "/api/logout", "alice-token", http.StatusOK},
		{"GET", "/api/session-status", "alice-token", http.StatusOK},
		{"GET", "/api/users/BOB/balance", "alice-token", http.StatusOK},
		{"POST", "/api/transfer", "alice-token", http.StatusOK},
		{"GET", "/api/offers", "alice-token", http.StatusOK},
		{"POST", "/api/offers/3/approve", "alice-token", http.StatusOK},
		{"POST", "/api/offers/3/deny", "alice-token", http.StatusOK},
		{"GET", "/api/leaderboard", "alice-token", http.StatusOK},
		{"GET", "/api/transactions", "alice-token", http.StatusOK},
		{"GET", "/api/leaderboard-history", "alice-token", http.StatusOK},
		{"GET", "/api/performers", "alice-token", http.StatusOK},
		{"POST", "/api/chancellor/force-transfer", "", http.StatusUnauthorized},
		{"POST", "/api/chancellor/force-transfer", "alice-token", http.StatusForbidden},
		{"POST", "/api/chancellor/market-toggle", "alice-token", http.StatusForbidden},
		{"PUT", "/api/chancellor/users/BOB/performer-status", "chancellor-token", http.StatusOK},
		{"POST", "/api/chancellor/force-transfer", "chancellor-token", http.StatusOK},
		{"POST", "/api/chancellor/force-redistribution", "chancellor-token", http.StatusOK},
		{"PUT", "/api/chancellor/market-override", "chancellor-token", http.StatusOK},
		{"DELETE", "/api/chancellor/market-override", "chancellor-token", http.StatusOK},
		{"POST", "/api/chancellor/market-toggle", "chancellor-token", http.StatusOK},
		{"GET", "/api/chancellor/redistribution-amount", "chancellor-token", http.StatusOK},
		{"PUT", "/api/chancellor/redistribution-amount", "chancellor-token", http.StatusOK},
		{"POST", "/api/chancellor/reset-balances", "chancellor-token", http.StatusOK},
		{"GET", "/api/chancellor/market-stats", "chancellor-token", http.StatusOK},
		{"GET", "/api/chancellor/users", "chancellor-token", http.StatusOK},
		{"GET", "/api/chancellor/users", "alice-token", http.StatusForbidden},
		{"POST", "/api/chancellor/performers-to-audience", "chancellor-token", http.StatusOK},
		{"POST", "/api/chancellor/audience-to-performers", "chancellor-token", http.StatusOK},
		{"POST", "/api/chancellor/group-transfer", "chancellor-token", http.StatusOK},
		{"POST", "/api/chancellor/group-transfer", "alice-token", http.StatusForbidden},
		{"GET", "/swagger/doc.json", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestSessionCookieIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	sessions := auth.NewMockSessionAuthenticator(ctrl)

	mockLedgerHandler.EXPECT().Leaderboard(gomock.Any(), gomock.Any())
	sessions.EXPECT().Authenticate(gomock.Any(), "cookie-token").Return(&domain.Session{ID: "s1", Username: "ALICE"}, nil)

	h := &Handlers{
		AuthHandler:       NewMockAuthHandler(ctrl),
		LedgerHandler:     mockLedgerHandler,
		ChancellorHandler: NewMockChancellorHandler(ctrl),
		MarketHandler:     NewMockMarketHandler(ctrl),
		Sessions:          sessions,
	}
	router := chi.NewRouter()
	h.InitRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
