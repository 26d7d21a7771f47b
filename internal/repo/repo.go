package repo

import (
	"github.com/alexrkaufman/strawcoin/internal/pg"
	sessionrepo "github.com/alexrkaufman/strawcoin/internal/repo/session-repo"
	settingsrepo "github.com/alexrkaufman/strawcoin/internal/repo/settings-repo"
	snapshotrepo "github.com/alexrkaufman/strawcoin/internal/repo/snapshot-repo"
	transactionrepo "github.com/alexrkaufman/strawcoin/internal/repo/transaction-repo"
	userrepo "github.com/alexrkaufman/strawcoin/internal/repo/user-repo"
	"github.com/alexrkaufman/strawcoin/internal/service/ledgerservice"
	"github.com/alexrkaufman/strawcoin/internal/service/marketservice"
	"github.com/alexrkaufman/strawcoin/internal/service/sessionservice"
)

type Repositories struct {
	UserRepo        ledgerservice.UserRepo
	TransactionRepo ledgerservice.TransactionRepo
	SnapshotRepo    ledgerservice.SnapshotRepo
	SessionRepo     sessionservice.Repo
	SettingsRepo    marketservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		SnapshotRepo:    snapshotrepo.New(conn),
		SessionRepo:     sessionrepo.New(conn),
		SettingsRepo:    settingsrepo.New(conn),
	}
}
