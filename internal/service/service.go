package service

import (
	"github.com/alexrkaufman/strawcoin/internal/config"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/alexrkaufman/strawcoin/internal/repo"
	"github.com/alexrkaufman/strawcoin/internal/service/ledgerservice"
	"github.com/alexrkaufman/strawcoin/internal/service/marketservice"
	"github.com/alexrkaufman/strawcoin/internal/service/sessionservice"
	"github.com/alexrkaufman/strawcoin/pkg/auth"
)

// Services are shared by the handlers, the session middleware and the
// scheduler, each of which depends on its own narrow interface.
type Services struct {
	Ledger   *ledgerservice.Service
	Sessions *sessionservice.Service
	Market   *marketservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.UserRepo, repo.TransactionRepo, repo.SnapshotRepo, txManager, ledgerservice.Options{
		InitialBalance:     cfg.InitialBalance,
		PrivilegedUsername: cfg.PrivilegedUsername,
	})

	sessionService := sessionservice.New(repo.SessionRepo, ledgerService, txManager,
		&auth.HashService{},
		auth.NewJWTService(cfg.SecretKey),
		sessionservice.Options{
			Timeout:                cfg.SessionTimeout,
			PrivilegedUsername:     cfg.PrivilegedUsername,
			PrivilegedEnabled:      cfg.PrivilegedEnabled,
			PrivilegedPasswordHash: cfg.PrivilegedPasswordHash,
		},
	)

	marketService := marketservice.New(repo.SettingsRepo, marketservice.Options{
		Open:                 cfg.MarketOpen,
		HoursEnabled:         cfg.MarketHoursEnabled,
		OpenHour:             cfg.MarketOpenHour,
		CloseHour:            cfg.MarketCloseHour,
		RedistributionAmount: cfg.RedistributionAmount,
	})

	return &Services{
		Ledger:   ledgerService,
		Sessions: sessionService,
		Market:   marketService,
	}
}
